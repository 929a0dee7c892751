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
	"strings"
	"unsafe"
)

// Ordered represents the set of types for which the '<' operator work.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr | ~float32 | ~float64 | ~string
}

// Compare returns a default CompareFunc that uses the '<' and '>' operators
// for types that support them.
func Compare[T Ordered]() CompareFunc[T] {
	return func(a, b T) int {
		switch {
		case a < b:
			return -1
		case a > b:
			return 1
		}
		return 0
	}
}

// CompareFold orders strings by their lower-case form, so "Apple" and "apple"
// are the same set member.
func CompareFold(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// ComparePointers orders pointers by address.  It is useful for sets of
// objects with identity semantics; the order itself carries no meaning.
func ComparePointers[E any](a, b *E) int {
	pa, pb := uintptr(unsafe.Pointer(a)), uintptr(unsafe.Pointer(b))
	switch {
	case pa < pb:
		return -1
	case pa > pb:
		return 1
	}
	return 0
}

// Deref lifts a CompareFunc over values to one over pointers to those values.
// Sets of pointers keep item identity, which Insert and Get hand back.
func Deref[E any](cmp CompareFunc[E]) CompareFunc[*E] {
	return func(a, b *E) int {
		return cmp(*a, *b)
	}
}
