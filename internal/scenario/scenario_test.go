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
	"bytes"
	"math/rand"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarios(t *testing.T) {
	logger, hook := test.NewNullLogger()
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, Run(name, Config{Size: 500, Seed: 0xfff, Log: logger}))
		})
	}
	// Scenarios never open more than one iterator per set.
	assert.Empty(t, hook.AllEntries())
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"delete", "get", "iter", "ops"}, Names())
}

func TestRunUnknown(t *testing.T) {
	err := Run("nope", Config{Size: 10})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nope")
}

func TestIterRejectsSize(t *testing.T) {
	err := Run("iter", Config{Size: 15})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "multiple of 10")
}

func TestValuesInsert(t *testing.T) {
	v := NewValues("t", nil)
	require.NoError(t, v.Insert(4, func(i int) int { return i % 2 }))
	assert.Equal(t, 2, v.Inserted)
	assert.Equal(t, 2, v.Dups)
	assert.Equal(t, []bool{false, false, true, true}, v.Dup)
	assert.Equal(t, 2, v.Set.Len())

	got, ok := v.Set.Get(v.Elems[2])
	require.True(t, ok)
	assert.Same(t, v.Elems[0], got)
}

func TestGenerators(t *testing.T) {
	assert.Equal(t, 6, Even(3))
	assert.Equal(t, 7, Odd(3))
	assert.Equal(t, 3, Sequence(3))
	gen := Random(rand.New(rand.NewSource(1)))
	for i := 0; i < 100; i++ {
		v := gen(i)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 3*(i+1))
	}
}

func TestVisual(t *testing.T) {
	var buf bytes.Buffer
	Visual(&buf, 20)
	out := buf.String()
	assert.Contains(t, out, "\neven\n")
	assert.Equal(t, 10, strings.Count(out, "tree of"))
	assert.Contains(t, out, "tree of 20 items")
	assert.Contains(t, out, "tree of 0 items")
}
