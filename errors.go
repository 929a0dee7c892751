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

import "github.com/pkg/errors"

var (
	// ErrIteratorActive is the panic value (wrapped) of any write to a set
	// while an iterator over it is open.
	ErrIteratorActive = errors.New("rbset: set modified while an iterator is open")

	// ErrIteratorClosed is returned by Reset and Close on an iterator that
	// has already been closed.
	ErrIteratorClosed = errors.New("rbset: iterator already closed")
)
