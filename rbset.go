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

// Package rbset implements in-memory ordered sets on top of a red-black tree.
//
// rbset is an ordered data structure for use inside a single process.  It is
// not meant for persistent storage solutions.
//
// Each set owns a single black sentinel node which stands in for every absent
// child or parent link.  Rotations and rebalancing never special-case a
// missing child, and the sentinel itself is never written to.
//
// Items are ordered by a CompareFunc handed to New.  The comparison must be a
// total order and must stay consistent for the lifetime of the set; two items
// that compare equal are the same item as far as the set is concerned, and
// only the first one inserted is kept.
//
// In-order iteration uses Morris threading: rather than keeping a stack, the
// iterator temporarily points the empty right link of each in-order
// predecessor back at its successor, and removes the link again on the way
// back up.  Iteration therefore allocates nothing, but the set must not be
// modified while an iterator is open.  Insert and Delete panic if it is.
//
// Sets are not safe for concurrent use.
package rbset

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	DefaultFreeListSize = 32
)

type nodeColor bool

const (
	red   nodeColor = false
	black nodeColor = true
)

func (c nodeColor) String() string {
	if c == red {
		return "red"
	}
	return "black"
}

// node is a single tree node.  Links that would be nil point at the owning
// set's sentinel instead.
type node[T any] struct {
	color  nodeColor
	item   T
	parent *node[T]
	left   *node[T]
	right  *node[T]
	// thread is set while right is a temporary Morris link rather than a
	// child.
	thread bool
}

// FreeList represents a free list of set nodes.  By default each Set has its
// own FreeList, but multiple sets can share the same FreeList, in particular
// when they are derived from each other by Clone, Union, Intersection or
// Difference.  Two sets using the same free list are safe for concurrent write
// access.
type FreeList[T any] struct {
	mu       sync.Mutex
	freelist []*node[T]
}

// NewFreeList creates a new free list.
// size is the maximum size of the returned free list.
func NewFreeList[T any](size int) *FreeList[T] {
	return &FreeList[T]{freelist: make([]*node[T], 0, size)}
}

func (f *FreeList[T]) newNode() (n *node[T]) {
	f.mu.Lock()
	index := len(f.freelist) - 1
	if index < 0 {
		f.mu.Unlock()
		return new(node[T])
	}
	n = f.freelist[index]
	f.freelist[index] = nil
	f.freelist = f.freelist[:index]
	f.mu.Unlock()
	return
}

func (f *FreeList[T]) freeNode(n *node[T]) (out bool) {
	f.mu.Lock()
	if len(f.freelist) < cap(f.freelist) {
		f.freelist = append(f.freelist, n)
		out = true
	}
	f.mu.Unlock()
	return
}

// Len returns the number of nodes currently held by the free list.
func (f *FreeList[T]) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.freelist)
}

// CompareFunc determines how to order a type 'T'.  It returns a negative
// number when a sorts before b, zero when they are equal and a positive
// number when a sorts after b.
type CompareFunc[T any] func(a, b T) int

// ItemIterator allows callers of Ascend to iterate in-order over the set.
// When this function returns false, iteration will stop and Ascend will
// immediately return.
type ItemIterator[T any] func(item T) bool

// Set is an ordered set of items of type T.
//
// Write operations are not safe for concurrent mutation by multiple
// goroutines, and must not happen while an Iterator over the set is open.
type Set[T any] struct {
	root      *node[T]
	nil       *node[T]
	cmp       CompareFunc[T]
	length    int
	iterators int
	freelist  *FreeList[T]
	log       logrus.FieldLogger
}

// New creates a new, empty set ordered by cmp.
func New[T any](cmp CompareFunc[T], opts ...Option) *Set[T] {
	return NewWithFreeList(cmp, NewFreeList[T](DefaultFreeListSize), opts...)
}

// NewWithFreeList creates a new, empty set that uses the given node free list.
func NewWithFreeList[T any](cmp CompareFunc[T], f *FreeList[T], opts ...Option) *Set[T] {
	if cmp == nil {
		panic("rbset: nil CompareFunc")
	}
	o := newOptions(opts)
	return newSet(cmp, f, o.logger)
}

// NewOrdered creates a new set for ordered types, using the '<' and '>'
// operators.
func NewOrdered[T Ordered](opts ...Option) *Set[T] {
	return New[T](Compare[T](), opts...)
}

func newSet[T any](cmp CompareFunc[T], f *FreeList[T], log logrus.FieldLogger) *Set[T] {
	sentinel := &node[T]{color: black}
	return &Set[T]{
		root:     sentinel,
		nil:      sentinel,
		cmp:      cmp,
		freelist: f,
		log:      log,
	}
}

// empty returns a new set sharing s's ordering, free list and logger.
func (s *Set[T]) empty() *Set[T] {
	return newSet(s.cmp, s.freelist, s.log)
}

func (s *Set[T]) newNode(c nodeColor, item T, parent *node[T]) *node[T] {
	n := s.freelist.newNode()
	n.color = c
	n.item = item
	n.parent = parent
	n.left = s.nil
	n.right = s.nil
	n.thread = false
	return n
}

func (s *Set[T]) freeNode(n *node[T]) {
	var zero T
	n.item = zero // clear to allow GC
	n.parent, n.left, n.right = nil, nil, nil
	n.thread = false
	s.freelist.freeNode(n)
}

// mustNotIterate panics when an iterator is open over s.  op names the
// operation for the panic message.
func (s *Set[T]) mustNotIterate(op string) {
	if s.iterators != 0 {
		panic(errors.Wrapf(ErrIteratorActive, "%s with %d open iterator(s)", op, s.iterators))
	}
}

// rightOf returns n's right child, ignoring a temporary Morris thread.
func (s *Set[T]) rightOf(n *node[T]) *node[T] {
	if n.thread {
		return s.nil
	}
	return n.right
}

// Len returns the number of items currently in the set.
func (s *Set[T]) Len() int {
	return s.length
}

// rotateLeft rotates u counter-clockwise around its right child.
func (s *Set[T]) rotateLeft(u *node[T]) {
	v := u.right

	u.right = v.left
	if v.left != s.nil {
		v.left.parent = u
	}

	v.parent = u.parent
	if u.parent == s.nil {
		s.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}

	v.left = u
	u.parent = v
}

// rotateRight rotates u clockwise around its left child.
func (s *Set[T]) rotateRight(u *node[T]) {
	v := u.left

	u.left = v.right
	if v.right != s.nil {
		v.right.parent = u
	}

	v.parent = u.parent
	if u.parent == s.nil {
		s.root = v
	} else if u == u.parent.right {
		u.parent.right = v
	} else {
		u.parent.left = v
	}

	v.right = u
	u.parent = v
}

// Insert adds the given item to the set.  If an item in the set already
// equals the given one, the set is left unchanged and the existing item is
// returned along with true.  Otherwise (zeroValue, false) is returned.
//
// Insert panics if an iterator over the set is open.
func (s *Set[T]) Insert(item T) (_ T, _ bool) {
	s.mustNotIterate("insert")

	if s.root == s.nil {
		s.root = s.newNode(black, item, s.nil)
		s.length++
		return
	}

	curr := s.root
	var left bool
	for {
		c := s.cmp(item, curr.item)
		if c == 0 {
			return curr.item, true
		}
		if c > 0 {
			if curr.right == s.nil {
				break
			}
			curr = curr.right
		} else {
			if curr.left == s.nil {
				left = true
				break
			}
			curr = curr.left
		}
	}

	n := s.newNode(red, item, curr)
	if left {
		curr.left = n
	} else {
		curr.right = n
	}
	s.length++
	s.insertFixup(n)
	return
}

// insertFixup restores the red-black properties after n was attached as a red
// leaf.
func (s *Set[T]) insertFixup(n *node[T]) {
	for n.parent.color == red {
		p := n.parent
		g := p.parent // p is red, so it is not the root and g is real

		if p == g.left {
			if u := g.right; u.color == red {
				p.color, u.color = black, black
				if g != s.root {
					g.color = red
				}
				n = g
				continue
			}
			if n == p.right {
				s.rotateLeft(p)
				n, p = p, n
			}
			s.rotateRight(g)
		} else {
			if u := g.left; u.color == red {
				p.color, u.color = black, black
				if g != s.root {
					g.color = red
				}
				n = g
				continue
			}
			if n == p.left {
				s.rotateRight(p)
				n, p = p, n
			}
			s.rotateLeft(g)
		}
		p.color = black
		g.color = red
		break
	}
	s.root.color = black
}

// search returns the node holding an item equal to key, or the sentinel.
func (s *Set[T]) search(key T) *node[T] {
	curr := s.root
	for curr != s.nil {
		c := s.cmp(key, curr.item)
		switch {
		case c > 0:
			curr = s.rightOf(curr)
		case c < 0:
			curr = curr.left
		default:
			return curr
		}
	}
	return curr
}

// Get looks for the key item in the set, returning it.  It returns
// (zeroValue, false) if unable to find that item.
func (s *Set[T]) Get(key T) (_ T, _ bool) {
	n := s.search(key)
	if n == s.nil {
		return
	}
	return n.item, true
}

// Has returns true if the given key is in the set.
func (s *Set[T]) Has(key T) bool {
	return s.search(key) != s.nil
}

func (s *Set[T]) minNode(n *node[T]) *node[T] {
	for n.left != s.nil {
		n = n.left
	}
	return n
}

func (s *Set[T]) maxNode(n *node[T]) *node[T] {
	for r := s.rightOf(n); r != s.nil; r = s.rightOf(n) {
		n = r
	}
	return n
}

// Min returns the smallest item in the set, or (zeroValue, false) if the set
// is empty.
func (s *Set[T]) Min() (_ T, _ bool) {
	if s.root == s.nil {
		return
	}
	return s.minNode(s.root).item, true
}

// Max returns the largest item in the set, or (zeroValue, false) if the set
// is empty.
func (s *Set[T]) Max() (_ T, _ bool) {
	if s.root == s.nil {
		return
	}
	return s.maxNode(s.root).item, true
}

// Delete removes an item equal to the passed in item from the set, returning
// it.  If no such item exists, returns (zeroValue, false).
//
// Delete panics if an iterator over the set is open.
func (s *Set[T]) Delete(item T) (_ T, _ bool) {
	s.mustNotIterate("delete")
	n := s.search(item)
	if n == s.nil {
		return
	}
	return s.deleteNode(n), true
}

// DeleteMin removes the smallest item in the set and returns it.
// If no such item exists, returns (zeroValue, false).
func (s *Set[T]) DeleteMin() (_ T, _ bool) {
	s.mustNotIterate("delete")
	if s.root == s.nil {
		return
	}
	return s.deleteNode(s.minNode(s.root)), true
}

// DeleteMax removes the largest item in the set and returns it.
// If no such item exists, returns (zeroValue, false).
func (s *Set[T]) DeleteMax() (_ T, _ bool) {
	s.mustNotIterate("delete")
	if s.root == s.nil {
		return
	}
	return s.deleteNode(s.maxNode(s.root)), true
}

// transplant puts v in u's place under u's parent.  v's parent link is only
// updated when v is a real node.
func (s *Set[T]) transplant(u, v *node[T]) {
	if u.parent == s.nil {
		s.root = v
	} else if u == u.parent.left {
		u.parent.left = v
	} else {
		u.parent.right = v
	}
	if v != s.nil {
		v.parent = u.parent
	}
}

// deleteNode unlinks z, rebalances, recycles z and returns its item.
func (s *Set[T]) deleteNode(z *node[T]) T {
	var x, xParent *node[T]
	removed := z.color

	switch {
	case z.left == s.nil:
		x, xParent = z.right, z.parent
		s.transplant(z, z.right)
	case z.right == s.nil:
		x, xParent = z.left, z.parent
		s.transplant(z, z.left)
	default:
		// z has two children: its successor y takes its place.
		y := s.minNode(z.right)
		removed = y.color
		x = y.right
		if y.parent == z {
			xParent = y
		} else {
			xParent = y.parent
			s.transplant(y, y.right)
			y.right = z.right
			y.right.parent = y
		}
		s.transplant(z, y)
		y.left = z.left
		y.left.parent = y
		y.color = z.color
	}

	if removed == black {
		s.deleteFixup(x, xParent)
	}

	item := z.item
	s.length--
	s.freeNode(z)
	return item
}

// deleteFixup removes the extra black carried by x, whose parent is parent.
// x may be the sentinel, which is why its parent is passed separately.
func (s *Set[T]) deleteFixup(x, parent *node[T]) {
	for x != s.root && x.color == black {
		if x == parent.left {
			w := parent.right
			if w.color == red {
				w.color = black
				parent.color = red
				s.rotateLeft(parent)
				w = parent.right
			}
			if w.left.color == black && w.right.color == black {
				w.color = red
				x = parent
				parent = x.parent
				continue
			}
			if w.right.color == black {
				w.left.color = black
				w.color = red
				s.rotateRight(w)
				w = parent.right
			}
			w.color = parent.color
			parent.color = black
			w.right.color = black
			s.rotateLeft(parent)
			x = s.root
		} else {
			w := parent.left
			if w.color == red {
				w.color = black
				parent.color = red
				s.rotateRight(parent)
				w = parent.left
			}
			if w.right.color == black && w.left.color == black {
				w.color = red
				x = parent
				parent = x.parent
				continue
			}
			if w.left.color == black {
				w.right.color = black
				w.color = red
				s.rotateLeft(w)
				w = parent.left
			}
			w.color = parent.color
			parent.color = black
			w.left.color = black
			s.rotateRight(parent)
			x = s.root
		}
	}
	if x != s.nil {
		x.color = black
	}
}

// Destroy removes every item from the set, calling free (if non-nil) once per
// item.  Nodes are released bottom-up, and handed back to the free list until
// it is full.  The set is empty and usable afterwards.
//
// Destroy panics if an iterator over the set is open.
func (s *Set[T]) Destroy(free func(T)) {
	if s.iterators != 0 {
		s.log.WithField("iterators", s.iterators).
			Error("rbset: set destroyed with open iterators, an iterator was likely never closed")
	}
	s.mustNotIterate("destroy")
	s.destroy(s.root, free)
	s.root, s.length = s.nil, 0
}

func (s *Set[T]) destroy(n *node[T], free func(T)) {
	if n == s.nil {
		return
	}
	s.destroy(n.left, free)
	s.destroy(n.right, free)
	if free != nil {
		free(n.item)
	}
	s.freeNode(n)
}
