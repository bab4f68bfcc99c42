/*
 * Chess-Engine - a bitboard chess engine core in GO
 *
 * MIT License
 *
 * Copyright (c) 2025 Amit Sarussi
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package scorestore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := OpenInMemory()
	assert.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestPutGet(t *testing.T) {
	store := openTestStore(t)

	_, found, err := store.Get("unknown")
	assert.NoError(t, err)
	assert.False(t, found)

	want := Score{Eval: 2.5, Count: 3}
	assert.NoError(t, store.Put("pos1", want))

	got, found, err := store.Get("pos1")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	// negative evaluations survive the fixed width encoding
	want = Score{Eval: -1.25, Count: 7}
	assert.NoError(t, store.Put("pos1", want))
	got, _, err = store.Get("pos1")
	assert.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGetOrDefault(t *testing.T) {
	store := openTestStore(t)

	def := Score{Eval: 0, Count: 0}
	got, err := store.GetOrDefault("unknown", def)
	assert.NoError(t, err)
	assert.Equal(t, def, got)

	assert.NoError(t, store.Put("pos", Score{Eval: 1, Count: 1}))
	got, err = store.GetOrDefault("pos", def)
	assert.NoError(t, err)
	assert.Equal(t, Score{Eval: 1, Count: 1}, got)
}

func TestPutBatchAndKeys(t *testing.T) {
	store := openTestStore(t)

	entries := map[string]Score{
		"a": {Eval: 1, Count: 1},
		"b": {Eval: -1, Count: 2},
		"c": {Eval: 0.5, Count: 9},
	}
	assert.NoError(t, store.PutBatch(entries))

	keys, err := store.Keys()
	assert.NoError(t, err)
	assert.ElementsMatch(t, []string{"a", "b", "c"}, keys)

	for key, want := range entries {
		got, found, err := store.Get(key)
		assert.NoError(t, err)
		assert.True(t, found)
		assert.Equal(t, want, got)
	}
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)

	assert.NoError(t, store.Put("pos", Score{Eval: 1, Count: 1}))
	assert.NoError(t, store.Delete("pos"))
	_, found, err := store.Get("pos")
	assert.NoError(t, err)
	assert.False(t, found)

	// deleting an unknown key is not an error
	assert.NoError(t, store.Delete("unknown"))
}
