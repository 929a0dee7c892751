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

// copyTree copies the subtree rooted at n (owned by s) node for node into
// dst, without comparing any items.  Colours and item references are kept.
func (s *Set[T]) copyTree(dst *Set[T], n, parent *node[T]) *node[T] {
	if n == s.nil {
		return dst.nil
	}
	c := dst.newNode(n.color, n.item, parent)
	c.left = s.copyTree(dst, n.left, c)
	c.right = s.copyTree(dst, s.rightOf(n), c)
	return c
}

// Clone returns a structural copy of s: same shape, same colours, same item
// references, new nodes.  The copy shares s's ordering, free list and logger.
func (s *Set[T]) Clone() *Set[T] {
	c := s.empty()
	c.root = s.copyTree(c, s.root, c.nil)
	c.length = s.length
	return c
}

// mergeInto inserts every item below n into dst, visiting right, left, then
// the node itself so that a sorted source does not feed dst in sorted order.
func (s *Set[T]) mergeInto(dst *Set[T], n *node[T]) {
	if n == s.nil {
		return
	}
	s.mergeInto(dst, s.rightOf(n))
	s.mergeInto(dst, n.left)
	dst.Insert(n.item)
}

// postorder calls fn for every item below n, children first.
func (s *Set[T]) postorder(n *node[T], fn func(T)) {
	if n == s.nil {
		return
	}
	s.postorder(n.left, fn)
	s.postorder(s.rightOf(n), fn)
	fn(n.item)
}

// Union returns a new set holding every item that is in a, b or both.  a and
// b must be ordered the same way.  When both hold equal items, the item of
// the larger set is kept (a's on a tie).
//
// The result holds the same item references as a and b.  Mutating an item in
// a way that changes its ordering corrupts every set that holds it.
func Union[T any](a, b *Set[T]) *Set[T] {
	if a.length < b.length {
		a, b = b, a
	}
	c := a.Clone()
	if a != b {
		b.mergeInto(c, b.root)
	}
	return c
}

// Intersection returns a new set holding the items that are in both a and b.
// The items kept are those of the smaller set.  a and b must be ordered the
// same way; the result uses a's ordering.
func Intersection[T any](a, b *Set[T]) *Set[T] {
	if a == b {
		return a.Clone()
	}
	c := a.empty()
	small, large := a, b
	if large.length < small.length {
		small, large = large, small
	}
	small.postorder(small.root, func(item T) {
		if large.Has(item) {
			c.Insert(item)
		}
	})
	return c
}

// Difference returns a new set holding the items of a that are not in b.  a
// and b must be ordered the same way; the result uses a's ordering.
func Difference[T any](a, b *Set[T]) *Set[T] {
	c := a.empty()
	if a == b {
		return c
	}
	a.postorder(a.root, func(item T) {
		if !b.Has(item) {
			c.Insert(item)
		}
	})
	return c
}
