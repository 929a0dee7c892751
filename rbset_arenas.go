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

//go:build goexperiment.arenas

package rbset

import "arena"

// CloneWithArena is Clone with the copy's set header, sentinel and nodes all
// allocated in a.  Items are shared with s, not copied.  The copy gets a
// zero-capacity free list so that arena nodes never migrate into another set;
// it must not be used after a is freed.
func (s *Set[T]) CloneWithArena(a *arena.Arena) *Set[T] {
	c := arena.New[Set[T]](a)
	c.nil = arena.New[node[T]](a)
	c.nil.color = black
	c.cmp = s.cmp
	c.log = s.log
	c.freelist = NewFreeList[T](0)
	c.length = s.length
	c.root = s.copyTreeWithArena(a, c, s.root, c.nil)
	return c
}

func (s *Set[T]) copyTreeWithArena(a *arena.Arena, dst *Set[T], n, parent *node[T]) *node[T] {
	if n == s.nil {
		return dst.nil
	}
	c := arena.New[node[T]](a)
	c.color = n.color
	c.item = n.item
	c.parent = parent
	c.left = s.copyTreeWithArena(a, dst, n.left, c)
	c.right = s.copyTreeWithArena(a, dst, s.rightOf(n), c)
	return c
}
