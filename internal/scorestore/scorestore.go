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

// Package scorestore persists position evaluations for table based
// players and learned evaluators. Keys are position encodings (packed
// array or fen strings), values are a running evaluation plus the
// number of times the position was recorded.
package scorestore

import (
	"encoding/binary"
	"math"

	"github.com/dgraph-io/badger/v4"
)

// Score is the stored value of a position: an evaluation and the
// number of observations it aggregates.
type Score struct {
	Eval  float32
	Count uint32
}

// value records are fixed width: 4 bytes float32 eval, 4 bytes uint32
// count, little endian
const valueLen = 8

// Store is a persistent position score store backed by badger
type Store struct {
	db *badger.DB
}

// Open opens (or creates) a score store in the given directory
func Open(path string) (*Store, error) {
	opts := badger.DefaultOptions(path)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenInMemory opens a store that lives in memory only. Used by tests
// and throwaway sessions.
func OpenInMemory() (*Store, error) {
	opts := badger.DefaultOptions("").WithInMemory(true)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Put stores the score under the given position key
func (s *Store) Put(key string, score Score) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), encodeScore(score))
	})
}

// PutBatch stores multiple scores in a single write batch
func (s *Store) PutBatch(entries map[string]Score) error {
	wb := s.db.NewWriteBatch()
	defer wb.Cancel()
	for key, score := range entries {
		if err := wb.Set([]byte(key), encodeScore(score)); err != nil {
			return err
		}
	}
	return wb.Flush()
}

// Get retrieves the score of a position. The second return value is
// false when the position is unknown.
func (s *Store) Get(key string) (Score, bool, error) {
	var score Score
	found := false
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		found = true
		return item.Value(func(val []byte) error {
			score = decodeScore(val)
			return nil
		})
	})
	return score, found, err
}

// GetOrDefault retrieves the score of a position or returns the given
// default when the position is unknown.
func (s *Store) GetOrDefault(key string, def Score) (Score, error) {
	score, found, err := s.Get(key)
	if err != nil {
		return def, err
	}
	if !found {
		return def, nil
	}
	return score, nil
}

// Delete removes a position from the store. Deleting an unknown key
// is not an error.
func (s *Store) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

// Keys returns all position keys in the store
func (s *Store) Keys() ([]string, error) {
	var keys []string
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}

func encodeScore(score Score) []byte {
	buf := make([]byte, valueLen)
	binary.LittleEndian.PutUint32(buf[0:4], math.Float32bits(score.Eval))
	binary.LittleEndian.PutUint32(buf[4:8], score.Count)
	return buf
}

func decodeScore(val []byte) Score {
	if len(val) < valueLen {
		return Score{}
	}
	return Score{
		Eval:  math.Float32frombits(binary.LittleEndian.Uint32(val[0:4])),
		Count: binary.LittleEndian.Uint32(val[4:8]),
	}
}
