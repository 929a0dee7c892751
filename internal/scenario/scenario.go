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

package scenario

import (
	"fmt"
	"io"
	"math/rand"
	"sort"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/google/rbset"
)

// Config parameterizes a scenario run.
type Config struct {
	// Size is the number of items each scenario generates per set.
	Size int
	// Seed seeds the random generator.
	Seed int64
	Log  logrus.FieldLogger
}

// Func is a single scenario.
type Func func(cfg Config, r *rand.Rand) error

// Scenarios maps scenario names to their implementation.
var Scenarios = map[string]Func{
	"get":    Get,
	"iter":   Iter,
	"ops":    SetOps,
	"delete": Delete,
}

// Names returns the scenario names in a stable order.
func Names() []string {
	names := make([]string, 0, len(Scenarios))
	for name := range Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Run runs the named scenario with its own random source.
func Run(name string, cfg Config) error {
	fn, ok := Scenarios[name]
	if !ok {
		return errors.Errorf("unknown scenario %q", name)
	}
	if cfg.Log == nil {
		cfg.Log = logrus.StandardLogger()
	}
	r := rand.New(rand.NewSource(cfg.Seed))
	if err := fn(cfg, r); err != nil {
		return errors.Wrapf(err, "scenario %s", name)
	}
	cfg.Log.WithFields(logrus.Fields{"scenario": name, "size": cfg.Size}).Debug("ok")
	return nil
}

// Get inserts random items, then checks that every stored item is found by
// identity, every duplicate finds the item it collided with, and values that
// were never generated are absent.
func Get(cfg Config, r *rand.Rand) error {
	v := NewValues("get", cfg.Log)
	if err := v.Insert(cfg.Size, Random(r)); err != nil {
		return err
	}

	for i, elem := range v.Elems {
		got, ok := v.Set.Get(elem)
		if !ok {
			return errors.Errorf("%d not found", *elem)
		}
		if !v.Dup[i] && got != elem {
			return errors.Errorf("%d found at %p, inserted at %p", *elem, got, elem)
		}
	}

	// Random values are drawn from [0, 3*Size), so anything at or past that
	// bound was never inserted.
	for i := 0; i < cfg.Size; i++ {
		absent := 3*cfg.Size + r.Intn(cfg.Size+1)
		if v.Set.Has(&absent) {
			return errors.Errorf("never inserted %d, but found", absent)
		}
	}
	return nil
}

// Iter inserts in ten rounds, walking the whole set after each round and
// checking order, membership and count.
func Iter(cfg Config, r *rand.Rand) error {
	const rounds = 10
	if cfg.Size < rounds || cfg.Size%rounds != 0 {
		return errors.Errorf("size must be a positive multiple of %d, got %d", rounds, cfg.Size)
	}

	v := NewValues("iter", cfg.Log)
	gen := Random(r)
	for round := 0; round < rounds; round++ {
		if err := v.Insert(cfg.Size/rounds, gen); err != nil {
			return err
		}

		it := v.Set.Iter()
		var prev *int
		n := 0
		for it.HasNext() {
			elem, _ := it.Next()
			if got, _ := v.Set.Get(elem); got != elem {
				it.Close()
				return errors.Errorf("round %d: iterated %d is not the stored item", round, *elem)
			}
			if prev != nil && *elem <= *prev {
				it.Close()
				return errors.Errorf("round %d: %d iterated after %d", round, *elem, *prev)
			}
			prev = elem
			n++
		}
		if err := it.Close(); err != nil {
			return err
		}
		if n != v.Inserted {
			return errors.Errorf("round %d: iterated %d items, inserted %d", round, n, v.Inserted)
		}
	}
	return errors.Wrap(v.Set.Verify(), "after iterating")
}

// SetOps builds even and odd sets and checks union, intersection and
// difference against each other.
func SetOps(cfg Config, r *rand.Rand) error {
	n := cfg.Size
	a, aEq, b, bExp := NewValues("A", cfg.Log), NewValues("A_eq", cfg.Log),
		NewValues("B", cfg.Log), NewValues("B_exp", cfg.Log)
	for _, step := range []struct {
		v   *Values
		n   int
		gen Generator
	}{{a, n, Even}, {aEq, n, Even}, {b, n, Odd}, {bExp, 2 * n, Odd}} {
		if err := step.v.Insert(step.n, step.gen); err != nil {
			return err
		}
	}

	u := rbset.Union(a.Set, b.Set)
	if u.Len() != a.Set.Len()+b.Set.Len() {
		return errors.Errorf("union: length %d, want %d", u.Len(), a.Set.Len()+b.Set.Len())
	}
	if err := check(u, "union", func(e *int) bool { return a.Set.Has(e) || b.Set.Has(e) }); err != nil {
		return err
	}

	i := rbset.Intersection(b.Set, bExp.Set)
	if i.Len() != b.Set.Len() {
		return errors.Errorf("intersection: length %d, want %d", i.Len(), b.Set.Len())
	}
	if err := check(i, "intersection", func(e *int) bool { return b.Set.Has(e) && bExp.Set.Has(e) }); err != nil {
		return err
	}

	d := rbset.Difference(bExp.Set, b.Set)
	if err := check(d, "difference", func(e *int) bool { return bExp.Set.Has(e) && !b.Set.Has(e) }); err != nil {
		return err
	}
	if l := rbset.Difference(a.Set, aEq.Set).Len(); l != 0 {
		return errors.Errorf("difference of equal sets has %d items", l)
	}
	if l := rbset.Difference(d, d).Len(); l != 0 {
		return errors.Errorf("difference of a set with itself has %d items", l)
	}
	return nil
}

// check verifies s and walks it, requiring member to hold for every item.
func check(s *rbset.Set[*int], op string, member func(*int) bool) error {
	if err := s.Verify(); err != nil {
		return errors.Wrap(err, op)
	}
	n := 0
	var bad *int
	s.Ascend(func(e *int) bool {
		if !member(e) {
			bad = e
			return false
		}
		n++
		return true
	})
	if bad != nil {
		return errors.Errorf("%s: unexpected item %d", op, *bad)
	}
	if n != s.Len() {
		return errors.Errorf("%s: iterated %d items, length %d", op, n, s.Len())
	}
	return nil
}

// Delete inserts random items, removes a random half of what was generated
// while verifying the tree after every removal, then empties the set from the
// bottom and checks that items come out in order.
func Delete(cfg Config, r *rand.Rand) error {
	v := NewValues("delete", cfg.Log)
	if err := v.Insert(cfg.Size, Random(r)); err != nil {
		return err
	}

	length := v.Set.Len()
	for _, i := range r.Perm(len(v.Elems))[:len(v.Elems)/2] {
		elem := v.Elems[i]
		_, ok := v.Set.Delete(elem)
		if ok {
			length--
		}
		if v.Set.Has(elem) {
			return errors.Errorf("%d still present after delete", *elem)
		}
		if v.Set.Len() != length {
			return errors.Errorf("length %d after delete, want %d", v.Set.Len(), length)
		}
		if err := v.Set.Verify(); err != nil {
			return errors.Wrapf(err, "after deleting %d", *elem)
		}
	}

	prev := -1
	for elem, ok := v.Set.DeleteMin(); ok; elem, ok = v.Set.DeleteMin() {
		if *elem <= prev {
			return errors.Errorf("DeleteMin returned %d after %d", *elem, prev)
		}
		prev = *elem
	}
	if v.Set.Len() != 0 {
		return errors.Errorf("%d items left after draining", v.Set.Len())
	}
	return errors.Wrap(v.Set.Verify(), "after draining")
}

// Visual prints a series of sets built from 0..n-1 and the results of set
// operations on them, for eyeballing.
func Visual(w io.Writer, n int) {
	ordered := func() *rbset.Set[int] { return rbset.NewOrdered[int]() }
	even, odd, all := ordered(), ordered(), ordered()
	for i := 0; i < n; i++ {
		all.Insert(i)
		if i%2 == 0 {
			even.Insert(i)
		} else {
			odd.Insert(i)
		}
	}

	evenOdd := rbset.Union(even, odd)
	evenAgain := rbset.Difference(evenOdd, odd)
	nothing := rbset.Difference(evenAgain, even)
	a := rbset.Union(nothing, even)
	b := rbset.Union(a, odd)
	interAB := rbset.Intersection(a, b)
	again := rbset.Intersection(interAB, even)

	for _, named := range []struct {
		name string
		set  *rbset.Set[int]
	}{
		{"even", even},
		{"odd", odd},
		{"all", all},
		{"even ∪ odd", evenOdd},
		{"(even ∪ odd) - odd", evenAgain},
		{"even - even", nothing},
		{"∅ ∪ even", a},
		{"(∅ ∪ even) ∪ odd", b},
		{"a ∩ b", interAB},
		{"(a ∩ b) ∩ even", again},
	} {
		fmt.Fprintf(w, "\n%s\n", named.name)
		named.set.Print(w)
	}
}
