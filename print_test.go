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
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	noColor := color.NoColor
	color.NoColor = true
	defer func() { color.NoColor = noColor }()

	s := NewOrdered[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 10} {
		s.Insert(v)
	}

	var buf bytes.Buffer
	s.Print(&buf)
	lines := strings.Split(buf.String(), "\n")
	require.True(t, strings.HasPrefix(lines[0], "-------------- tree of 8 items"))

	var nodes []string
	for _, l := range lines[2:] {
		if l == "" {
			break
		}
		nodes = append(nodes, l)
	}
	assert.Equal(t, []string{
		"                        10R",
		"                9B",
		"        8R",
		"                7B",
		"5B",
		"                4R",
		"        3B",
		"                1R",
	}, nodes)
}

func TestPrintEmpty(t *testing.T) {
	var buf bytes.Buffer
	NewOrdered[string]().Print(&buf)
	assert.Contains(t, buf.String(), "tree of 0 items")
	assert.Contains(t, buf.String(), "<-root")
}
