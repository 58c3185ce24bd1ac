package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryFind(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Insert(ctx, "c", Document{"_id": "1", "stato": "A"}))
	require.NoError(t, m.Insert(ctx, "c", Document{"_id": "2", "stato": "B"}))
	require.NoError(t, m.Insert(ctx, "c", Document{"_id": "3", "stato": "A"}))

	docs, err := m.Find(ctx, "c", Filter{"stato": "A"})
	require.NoError(t, err)
	assert.Len(t, docs, 2)

	all, err := m.Find(ctx, "c", Filter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	none, err := m.Find(ctx, "c", Filter{"stato": "Z"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestMemoryFindOne(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Insert(ctx, "c", Document{"_id": "1", "v": "x"}))

	doc, err := m.FindOne(ctx, "c", Filter{"_id": "1"})
	require.NoError(t, err)
	require.NotNil(t, doc)
	assert.Equal(t, "x", doc["v"])

	missing, err := m.FindOne(ctx, "c", Filter{"_id": "9"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestMemoryFindReturnsCopies(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Insert(ctx, "c", Document{"_id": "1", "v": "x"}))

	doc, err := m.FindOne(ctx, "c", Filter{"_id": "1"})
	require.NoError(t, err)
	doc["v"] = "mutated"

	again, err := m.FindOne(ctx, "c", Filter{"_id": "1"})
	require.NoError(t, err)
	assert.Equal(t, "x", again["v"])
}

func TestMemoryUpdateOneConditional(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Insert(ctx, "c", Document{"_id": "1", "riconciliato": false}))

	ok, err := m.UpdateOne(ctx, "c",
		Filter{"_id": "1", "riconciliato": false},
		Filter{"riconciliato": true, "ref": "f1"})
	require.NoError(t, err)
	assert.True(t, ok)

	// the conditional filter no longer matches: compare-and-set semantics
	ok, err = m.UpdateOne(ctx, "c",
		Filter{"_id": "1", "riconciliato": false},
		Filter{"riconciliato": true, "ref": "f2"})
	require.NoError(t, err)
	assert.False(t, ok)

	doc, err := m.FindOne(ctx, "c", Filter{"_id": "1"})
	require.NoError(t, err)
	assert.Equal(t, "f1", doc["ref"])
}

func TestMemoryUpdateOneRace(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.Insert(ctx, "c", Document{"_id": "1", "riconciliato": false}))

	const workers = 16
	var wg sync.WaitGroup
	wins := make(chan int, workers)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			ok, err := m.UpdateOne(ctx, "c",
				Filter{"_id": "1", "riconciliato": false},
				Filter{"riconciliato": true, "winner": n})
			assert.NoError(t, err)
			if ok {
				wins <- n
			}
		}(i)
	}
	wg.Wait()
	close(wins)

	var winners []int
	for n := range wins {
		winners = append(winners, n)
	}
	require.Len(t, winners, 1)

	doc, err := m.FindOne(ctx, "c", Filter{"_id": "1"})
	require.NoError(t, err)
	assert.Equal(t, winners[0], doc["winner"])
}
