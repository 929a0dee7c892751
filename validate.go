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
	"reflect"

	errors "gopkg.in/src-d/go-errors.v1"
)

// Violations reported by Verify.
var (
	ErrSentinelModified = errors.NewKind("rbset: sentinel modified: %s")
	ErrRootNotBlack     = errors.NewKind("rbset: root %v is red")
	ErrRedRed           = errors.NewKind("rbset: red node %v has a red child %v")
	ErrBlackHeight      = errors.NewKind("rbset: black height %d below %v, expected %d")
	ErrBadParent        = errors.NewKind("rbset: node %v links to parent %v, expected %v")
	ErrOrder            = errors.NewKind("rbset: items out of order: %v is not after %v")
	ErrLength           = errors.NewKind("rbset: counted %d nodes, length is %d")
)

// Verify checks s against every red-black property, the integrity of its
// sentinel, its parent links, the ordering of its items and its length.  It
// returns the first violation found, or nil.
//
// Verify is meant for tests and debugging; it visits every node.
func (s *Set[T]) Verify() error {
	if err := s.verifySentinel(); err != nil {
		return err
	}
	if s.root == s.nil {
		if s.length != 0 {
			return ErrLength.New(0, s.length)
		}
		return nil
	}
	if s.root.color != black {
		return ErrRootNotBlack.New(s.root.item)
	}
	if s.root.parent != s.nil {
		return ErrBadParent.New(s.root.item, s.describe(s.root.parent), "sentinel")
	}

	v := verifier[T]{s: s, height: -1}
	if err := v.walk(s.root, 0); err != nil {
		return err
	}
	if v.count != s.length {
		return ErrLength.New(v.count, s.length)
	}
	return nil
}

func (s *Set[T]) verifySentinel() error {
	n := s.nil
	switch {
	case n.color != black:
		return ErrSentinelModified.New("colored red")
	case n.parent != nil:
		return ErrSentinelModified.New("parent link set")
	case n.left != nil:
		return ErrSentinelModified.New("left link set")
	case n.right != nil:
		return ErrSentinelModified.New("right link set")
	case n.thread:
		return ErrSentinelModified.New("marked as threaded")
	case !reflect.ValueOf(&n.item).Elem().IsZero():
		return ErrSentinelModified.New("holds an item")
	}
	return nil
}

// describe names a node for an error message.
func (s *Set[T]) describe(n *node[T]) interface{} {
	switch n {
	case nil:
		return "<nil>"
	case s.nil:
		return "sentinel"
	}
	return n.item
}

type verifier[T any] struct {
	s      *Set[T]
	height int // black height of the first path walked, -1 until known
	count  int
	prev   *node[T]
}

// walk visits n in order, with blacks counting the black nodes above n.
func (v *verifier[T]) walk(n *node[T], blacks int) error {
	s := v.s
	if n == s.nil {
		if v.height == -1 {
			v.height = blacks
		} else if blacks != v.height {
			return ErrBlackHeight.New(blacks, "leaf", v.height)
		}
		return nil
	}

	left, right := n.left, s.rightOf(n)
	if n.color == red {
		if left.color == red {
			return ErrRedRed.New(n.item, left.item)
		}
		if right.color == red {
			return ErrRedRed.New(n.item, right.item)
		}
	} else {
		blacks++
	}
	for _, c := range []*node[T]{left, right} {
		if c != s.nil && c.parent != n {
			return ErrBadParent.New(c.item, s.describe(c.parent), n.item)
		}
	}

	if err := v.walk(left, blacks); err != nil {
		return err
	}
	if v.prev != nil && s.cmp(v.prev.item, n.item) >= 0 {
		return ErrOrder.New(n.item, v.prev.item)
	}
	v.prev = n
	v.count++
	return v.walk(right, blacks)
}
