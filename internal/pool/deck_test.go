package pool

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviarylabs/aviary/internal/randutil"
)

func TestDeckDrawConservesCards(t *testing.T) {
	deck := NewDeck(randutil.New(42), []string{"a", "b", "c", "d", "e"})
	require.Equal(t, 5, deck.Total())

	drawn, err := deck.Draw(3)
	require.NoError(t, err)
	assert.Len(t, drawn, 3)
	assert.Equal(t, 2, deck.Len())

	deck.Discard(drawn...)
	assert.Equal(t, 3, deck.DiscardLen())
	assert.Equal(t, 5, deck.Total())
}

func TestDeckReshufflesDiscardWhenActiveRunsDry(t *testing.T) {
	deck := NewDeck(randutil.New(42), []string{"a", "b", "c", "d", "e"})

	first, err := deck.Draw(5)
	require.NoError(t, err)
	deck.Discard(first...)
	require.Equal(t, 0, deck.Len())
	require.Equal(t, 5, deck.DiscardLen())

	second, err := deck.Draw(5)
	require.NoError(t, err)
	assert.Len(t, second, 5)
	assert.Equal(t, 0, deck.DiscardLen())
	assert.ElementsMatch(t, first, second)
}

func TestDeckDrawSpanningBothPiles(t *testing.T) {
	deck := NewDeck(randutil.New(7), []string{"a", "b", "c", "d", "e"})

	drawn, err := deck.Draw(3)
	require.NoError(t, err)
	deck.Discard(drawn...)

	// 2 active + 3 discard; a draw of 4 must reshuffle mid-draw.
	spanning, err := deck.Draw(4)
	require.NoError(t, err)
	assert.Len(t, spanning, 4)
	assert.Equal(t, 1, deck.Total())
}

func TestDeckExhausted(t *testing.T) {
	deck := NewDeck(randutil.New(1), []string{"a", "b"})

	_, err := deck.Draw(3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExhausted))
	// A failed draw must not consume anything.
	assert.Equal(t, 2, deck.Total())
}

func TestDeckDeterministicShuffle(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f", "g"}
	d1 := NewDeck(randutil.New(99), items)
	d2 := NewDeck(randutil.New(99), items)

	o1, err := d1.Draw(7)
	require.NoError(t, err)
	o2, err := d2.Draw(7)
	require.NoError(t, err)
	assert.Equal(t, o1, o2)
}

func TestFixedDeckDealsInOrder(t *testing.T) {
	deck := NewFixedDeck([]string{"a", "b", "c"})

	drawn, err := deck.Draw(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, drawn)

	deck.Discard("x")
	drawn, err = deck.Draw(2)
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "x"}, drawn)
}
