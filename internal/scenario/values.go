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

// Package scenario holds the randomized and structured checks that exercise
// rbset end to end: generated data, repeated insertion, lookups, iteration,
// deletion and set algebra, with the red-black invariants verified along the
// way.  Every scenario returns an error describing the first thing that went
// wrong.
package scenario

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/google/rbset"
)

// Generator maps the i-th generated value to an item.
type Generator func(i int) int

// Random returns a generator drawing from [0, 3(i+1)), which yields a steady
// share of duplicates.
func Random(r *rand.Rand) Generator {
	return func(i int) int { return r.Intn(3 * (i + 1)) }
}

// Sequence yields i.
func Sequence(i int) int { return i }

// Even yields the i-th even number.
func Even(i int) int { return 2 * i }

// Odd yields the i-th odd number.
func Odd(i int) int { return 2*i + 1 }

// Values is a set of generated items together with everything that was
// generated for it.  Items are pointers so that identity can be checked.
type Values struct {
	ID    string
	Set   *rbset.Set[*int]
	Elems []*int
	// Dup[i] is true when Elems[i] compared equal to an item already in Set
	// and was therefore not stored.
	Dup      []bool
	Inserted int
	Dups     int
}

// NewValues returns an empty Values whose set logs to log.
func NewValues(id string, log logrus.FieldLogger) *Values {
	return &Values{
		ID:  id,
		Set: rbset.New(rbset.Deref(rbset.Compare[int]()), rbset.WithLogger(log)),
	}
}

// Insert generates n more items with gen and inserts them, then checks the
// counts and the tree's invariants.
func (v *Values) Insert(n int, gen Generator) error {
	next := len(v.Elems)
	for i := next; i < next+n; i++ {
		elem := new(int)
		*elem = gen(i)
		v.Elems = append(v.Elems, elem)

		existing, dup := v.Set.Insert(elem)
		v.Dup = append(v.Dup, dup)
		if !dup {
			v.Inserted++
			continue
		}
		v.Dups++
		if existing == elem || *existing != *elem {
			return errors.Errorf("%s: insert of %d returned %d at %p", v.ID, *elem, *existing, existing)
		}
		if got, _ := v.Set.Get(elem); got != existing {
			return errors.Errorf("%s: get of duplicate %d does not return the stored item", v.ID, *elem)
		}
	}

	if v.Set.Len() != v.Inserted {
		return errors.Errorf("%s: length %d, inserted %d (%d generated, %d duplicates)",
			v.ID, v.Set.Len(), v.Inserted, len(v.Elems), v.Dups)
	}
	return errors.Wrapf(v.Set.Verify(), "%s: after %d inserts", v.ID, n)
}
