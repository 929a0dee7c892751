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

// Iterator walks a set in ascending order using Morris threading.  It holds no
// stack; instead it temporarily re-links the empty right pointer of each
// in-order predecessor, and undoes every such link before reporting
// exhaustion.  An Iterator must be closed with Close, even when it was
// abandoned part way, so that those links are removed.
//
// The set must not be modified while an iterator is open.
type Iterator[T any] struct {
	set    *Set[T]
	node   *node[T]
	closed bool
}

// Iter returns an iterator positioned before the smallest item of s.
//
// Opening a second iterator while another is still open is allowed but
// logged as a warning: the two would race over the same temporary links.
func (s *Set[T]) Iter() *Iterator[T] {
	if s.iterators != 0 {
		s.log.WithField("iterators", s.iterators).
			Warn("rbset: multiple open iterators over one set may corrupt iteration")
	}
	s.iterators++
	return &Iterator[T]{set: s, node: s.root}
}

// step advances the Morris walk and returns the next in-order node, or the
// sentinel once the walk is complete.
func (it *Iterator[T]) step() *node[T] {
	nil_ := it.set.nil
	if it.node == nil_ {
		return nil_
	}

	curr := it.node
	ret := nil_
	for ret == nil_ {
		if curr.left == nil_ {
			ret = curr
			curr = curr.right
			continue
		}

		// Predecessor: rightmost node of the left subtree, or the node
		// whose thread already points back at curr.
		pre := curr.left
		for pre.right != nil_ && pre.right != curr {
			pre = pre.right
		}

		if pre.right == nil_ {
			pre.right = curr
			pre.thread = true
			curr = curr.left
		} else {
			pre.right = nil_
			pre.thread = false
			ret = curr
			curr = curr.right
		}
	}

	it.node = curr
	return ret
}

// drain runs the walk to completion, clearing any temporary links.
func (it *Iterator[T]) drain() {
	for it.node != it.set.nil {
		it.step()
	}
}

// HasNext reports whether Next will return another item.
func (it *Iterator[T]) HasNext() bool {
	return !it.closed && it.node != it.set.nil
}

// Next returns the next item in ascending order.  It returns
// (zeroValue, false) once the set is exhausted or the iterator is closed.
func (it *Iterator[T]) Next() (_ T, _ bool) {
	if !it.HasNext() {
		return
	}
	return it.step().item, true
}

// Reset rewinds the iterator to the smallest item.  Any walk in progress is
// first completed so that no temporary link is left behind.
func (it *Iterator[T]) Reset() error {
	if it.closed {
		return ErrIteratorClosed
	}
	it.drain()
	it.node = it.set.root
	return nil
}

// Close completes any walk in progress and releases the iterator.  Closing an
// iterator twice returns ErrIteratorClosed.
func (it *Iterator[T]) Close() error {
	if it.closed {
		return ErrIteratorClosed
	}
	it.drain()
	it.closed = true
	it.set.iterators--
	return nil
}

// Ascend calls the iterator for every item in the set in ascending order,
// until iterator returns false.
func (s *Set[T]) Ascend(iterator ItemIterator[T]) {
	it := s.Iter()
	defer it.Close()
	for it.HasNext() {
		item, _ := it.Next()
		if !iterator(item) {
			return
		}
	}
}

// Items returns every item of the set in ascending order.
func (s *Set[T]) Items() []T {
	out := make([]T, 0, s.length)
	s.Ascend(func(item T) bool {
		out = append(out, item)
		return true
	})
	return out
}
