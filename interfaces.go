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

// Comparable is implemented by item types that know how to order themselves.
type Comparable[T any] interface {
	// Compare returns a negative number, zero or a positive number when the
	// receiver sorts before, equal to or after the argument.
	Compare(than T) int
}

// NewComparable creates a new set of items ordered by their own Compare
// method.
func NewComparable[T Comparable[T]](opts ...Option) *Set[T] {
	return New[T](func(a, b T) int { return a.Compare(b) }, opts...)
}
