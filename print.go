// Copyright 2024 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package rbset

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	redNode   = color.New(color.Bold, color.BgRed)
	blackNode = color.New(color.Bold, color.BgBlack)
)

const printIndent = 8

// Print writes the tree to w sideways: the root on the left, larger items
// above smaller ones, red and black nodes highlighted in their colour.  When
// colour output is disabled (see color.NoColor) node colours are written as
// an R or B suffix.
//
// Print is used for testing/debugging purposes.
func (s *Set[T]) Print(w io.Writer) {
	fmt.Fprintf(w, "-------------- tree of %d items --------------\n\n", s.length)
	s.print(w, s.root, 0)
	fmt.Fprintf(w, "\n<-root%*s\n", 40, "leaf->")
	fmt.Fprintln(w, strings.Repeat("-", 46))
}

func (s *Set[T]) print(w io.Writer, n *node[T], level int) {
	if n == s.nil {
		return
	}
	s.print(w, s.rightOf(n), level+1)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", level*printIndent), s.label(n))
	s.print(w, n.left, level+1)
}

func (s *Set[T]) label(n *node[T]) string {
	c, tag := blackNode, "B"
	if n.color == red {
		c, tag = redNode, "R"
	}
	if color.NoColor {
		return fmt.Sprintf("%v%s", n.item, tag)
	}
	return c.Sprintf(" %v ", n.item)
}
