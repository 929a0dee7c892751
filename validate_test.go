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
	errors "gopkg.in/src-d/go-errors.v1"
)

func verifiedSet(t *testing.T) *Set[int] {
	s := NewOrdered[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9, 10} {
		s.Insert(v)
	}
	require.NoError(t, s.Verify())
	return s
}

func TestVerifyDetectsCorruption(t *testing.T) {
	for _, tc := range []struct {
		name    string
		corrupt func(s *Set[int])
		kind    *errors.Kind
	}{
		{"sentinel red", func(s *Set[int]) { s.nil.color = red }, ErrSentinelModified},
		{"sentinel parent", func(s *Set[int]) { s.nil.parent = s.root }, ErrSentinelModified},
		{"sentinel item", func(s *Set[int]) { s.nil.item = 12 }, ErrSentinelModified},
		{"red root", func(s *Set[int]) { s.root.color = red }, ErrRootNotBlack},
		{"red red", func(s *Set[int]) {
			n := s.search(9)
			n.color = red
			n.parent.color = red
		}, ErrRedRed},
		{"black height", func(s *Set[int]) { s.search(10).color = black }, ErrBlackHeight},
		{"parent link", func(s *Set[int]) { s.search(1).parent = s.search(8) }, ErrBadParent},
		{"order", func(s *Set[int]) { s.search(1).item = 6 }, ErrOrder},
		{"length", func(s *Set[int]) { s.length++ }, ErrLength},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := verifiedSet(t)
			tc.corrupt(s)
			err := s.Verify()
			require.Error(t, err)
			assert.True(t, tc.kind.Is(err), "got %v", err)
		})
	}
}

func TestVerifyEmptyLength(t *testing.T) {
	s := NewOrdered[int]()
	require.NoError(t, s.Verify())
	s.length = 3
	assert.True(t, ErrLength.Is(s.Verify()))
}
