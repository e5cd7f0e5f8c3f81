package orm

import (
	"bytes"
	"testing"

	"github.com/iov-one/nftoken/store"
	"github.com/stretchr/testify/assert"
)

func TestSequenceIncrements(t *testing.T) {
	db := store.MemStore()

	s := NewSequence("std", SeqID)
	other := NewSequence("std", "other")

	// sequences start at one and count up
	for i := int64(1); i < 10; i++ {
		assert.Equal(t, i, s.NextInt(db))
	}

	// two sequences do not interfere
	assert.Equal(t, int64(1), other.NextInt(db))
	assert.Equal(t, int64(10), s.NextInt(db))
}

func TestSequenceNextN(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("bulk", SeqID)

	// allocating a range returns the last value handed out
	assert.Equal(t, int64(100), s.NextN(db, 100))
	assert.Equal(t, int64(101), s.NextInt(db))
	assert.Equal(t, int64(104), s.NextN(db, 3))

	latest, _ := s.Latest(db)
	assert.Equal(t, int64(104), latest)
}

func TestSequenceLatestDoesNotModify(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("quiet", SeqID)

	latest, raw := s.Latest(db)
	assert.Equal(t, int64(0), latest)
	assert.Nil(t, raw)

	s.NextInt(db)
	latest, raw = s.Latest(db)
	assert.Equal(t, int64(1), latest)
	assert.Equal(t, int64(1), DecodeSequence(raw))
}

func TestSequenceBytesOrdered(t *testing.T) {
	db := store.MemStore()
	s := NewSequence("sorted", SeqID)

	last := s.NextVal(db)
	for i := 0; i < 300; i++ {
		next := s.NextVal(db)
		if bytes.Compare(last, next) >= 0 {
			t.Fatalf("sequence bytes must be strictly increasing: %X >= %X", last, next)
		}
		last = next
	}
}
