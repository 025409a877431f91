package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviarylabs/aviary/internal/content"
)

func testBird(player PlayerID, id content.CardID, capacity int) *BirdInstance {
	return &BirdInstance{
		Key:  BirdKey{Player: player, Card: id},
		Card: content.BirdCard{ID: id, EggCapacity: capacity},
	}
}

func TestBoardPlacesLeftToRight(t *testing.T) {
	b := NewBoard()

	col, err := b.Place(content.Forest, testBird(0, "a", 2))
	require.NoError(t, err)
	assert.Equal(t, 0, col)

	col, err = b.Place(content.Forest, testBird(0, "b", 2))
	require.NoError(t, err)
	assert.Equal(t, 1, col)

	assert.Equal(t, 2, b.LeftmostEmpty(content.Forest))
	assert.Equal(t, 0, b.LeftmostEmpty(content.Grassland))
}

func TestBoardFullHabitatRejectsPlacement(t *testing.T) {
	b := NewBoard()
	ids := []content.CardID{"a", "b", "c", "d", "e"}
	for _, id := range ids {
		_, err := b.Place(content.Wetland, testBird(0, id, 2))
		require.NoError(t, err)
	}
	assert.Equal(t, -1, b.LeftmostEmpty(content.Wetland))

	_, err := b.Place(content.Wetland, testBird(0, "f", 2))
	assert.Error(t, err)
}

func TestBoardFindAndCount(t *testing.T) {
	b := NewBoard()
	_, err := b.Place(content.Forest, testBird(0, "a", 2))
	require.NoError(t, err)
	_, err = b.Place(content.Grassland, testBird(0, "b", 3))
	require.NoError(t, err)

	assert.NotNil(t, b.Find("a"))
	assert.Nil(t, b.Find("zzz"))
	assert.Equal(t, 1, b.Count(content.Forest))
	assert.Equal(t, 0, b.Count(content.Wetland))
	assert.Len(t, b.All(), 2)
}

func TestBoardEggSpaceTotal(t *testing.T) {
	b := NewBoard()
	full := testBird(0, "full", 2)
	full.Eggs = 2
	_, err := b.Place(content.Forest, full)
	require.NoError(t, err)
	_, err = b.Place(content.Forest, testBird(0, "empty", 3))
	require.NoError(t, err)

	assert.Equal(t, 3, b.EggSpaceTotal())
}
