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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompare(t *testing.T) {
	cmp := Compare[float64]()
	assert.Negative(t, cmp(1, 2))
	assert.Positive(t, cmp(2, 1))
	assert.Zero(t, cmp(2, 2))

	s := NewOrdered[string]()
	for _, w := range []string{"pear", "apple", "fig", "apple"} {
		s.Insert(w)
	}
	assert.Equal(t, []string{"apple", "fig", "pear"}, s.Items())
}

func TestCompareFold(t *testing.T) {
	s := New[string](CompareFold)
	s.Insert("Apple")
	got, ok := s.Insert("apple")
	require.True(t, ok)
	assert.Equal(t, "Apple", got)
	s.Insert("banana")
	s.Insert("BANANA")
	assert.Equal(t, []string{"Apple", "banana"}, s.Items())
}

func TestComparePointers(t *testing.T) {
	type obj struct{ name string }
	a, b := &obj{"a"}, &obj{"a"}

	s := New[*obj](ComparePointers[obj])
	s.Insert(a)
	_, dup := s.Insert(b)
	assert.False(t, dup, "distinct objects are distinct members")
	_, dup = s.Insert(a)
	assert.True(t, dup)
	assert.Equal(t, 2, s.Len())
	require.NoError(t, s.Verify())
}

func TestDeref(t *testing.T) {
	s := New(Deref(Compare[int]()))
	three := 3
	s.Insert(&three)
	other := 3
	got, ok := s.Get(&other)
	require.True(t, ok)
	assert.Same(t, &three, got)
}

type version struct{ major, minor int }

func (v version) Compare(o version) int {
	if v.major != o.major {
		return v.major - o.major
	}
	return v.minor - o.minor
}

func TestNewComparable(t *testing.T) {
	s := NewComparable[version]()
	for _, v := range []version{{1, 2}, {0, 9}, {1, 0}, {0, 9}} {
		s.Insert(v)
	}
	assert.Equal(t, []version{{0, 9}, {1, 0}, {1, 2}}, s.Items())
}
