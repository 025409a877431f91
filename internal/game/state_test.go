package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviarylabs/aviary/internal/content"
	"github.com/aviarylabs/aviary/internal/pool"
)

func testState(t *testing.T, reg content.Registry, players int) *GameState {
	t.Helper()
	st := &GameState{
		Deck: pool.NewFixedDeck(reg.BirdIDs()),
	}
	for i := range players {
		st.Players = append(st.Players, newPlayerState(PlayerID(i), "test"))
	}
	return st
}

func testRegistry(t *testing.T) content.Registry {
	t.Helper()
	reg, err := content.NewRegistry([]content.BirdCard{
		{ID: "sparrow", Habitats: []content.Habitat{content.Grassland}, EggCapacity: 2, Points: 1},
		{ID: "heron", Habitats: []content.Habitat{content.Wetland}, EggCapacity: 3, Points: 5},
	}, nil)
	require.NoError(t, err)
	return reg
}

func TestApplyFoodEffects(t *testing.T) {
	reg := testRegistry(t)
	st := testState(t, reg, 1)

	require.NoError(t, st.apply(FoodGainedEffect{Player: 0, Food: content.Seed, Count: 2}, reg))
	assert.Equal(t, 2, st.Player(0).Food[content.Seed])

	require.NoError(t, st.apply(FoodSpentEffect{Player: 0, Food: content.Seed, Count: 1}, reg))
	assert.Equal(t, 1, st.Player(0).Food[content.Seed])

	// Overspending is an invariant violation, not a silent clamp.
	assert.Error(t, st.apply(FoodSpentEffect{Player: 0, Food: content.Seed, Count: 5}, reg))
	assert.Equal(t, 1, st.Player(0).Food[content.Seed])
}

func TestApplyBirdPlayedAndEggs(t *testing.T) {
	reg := testRegistry(t)
	st := testState(t, reg, 1)
	st.Player(0).Hand = []content.CardID{"sparrow"}

	require.NoError(t, st.apply(BirdPlayedEffect{
		Player: 0, Card: "sparrow", Habitat: content.Grassland, Column: 0,
	}, reg))
	assert.Empty(t, st.Player(0).Hand)
	require.NotNil(t, st.Player(0).Board.Find("sparrow"))

	key := BirdKey{Player: 0, Card: "sparrow"}
	require.NoError(t, st.apply(EggsLaidEffect{Bird: key, Count: 2}, reg))

	// Capacity is 2; a third egg must be rejected.
	err := st.apply(EggsLaidEffect{Bird: key, Count: 1}, reg)
	assert.Error(t, err)
	assert.Equal(t, 2, st.Player(0).Board.Find("sparrow").Eggs)
}

func TestApplyBirdPlayedRequiresHandCard(t *testing.T) {
	reg := testRegistry(t)
	st := testState(t, reg, 1)

	err := st.apply(BirdPlayedEffect{Player: 0, Card: "sparrow", Habitat: content.Grassland}, reg)
	assert.Error(t, err)
}

func TestApplyTrayAndDraws(t *testing.T) {
	reg := testRegistry(t)
	st := testState(t, reg, 1)

	require.NoError(t, st.apply(TrayRefilledEffect{Cards: []content.CardID{"sparrow", "heron"}}, reg))
	assert.Len(t, st.Tray, 2)

	require.NoError(t, st.apply(CardsDrawnEffect{Player: 0, Cards: []content.CardID{"heron"}, FromTray: true}, reg))
	assert.Equal(t, []content.CardID{"sparrow"}, st.Tray)
	assert.Equal(t, []content.CardID{"heron"}, st.Player(0).Hand)

	// Taking a card the tray does not hold is a bug.
	assert.Error(t, st.apply(CardsDrawnEffect{Player: 0, Cards: []content.CardID{"heron"}, FromTray: true}, reg))
}

func TestApplyRecordedOnlyEffects(t *testing.T) {
	reg := testRegistry(t)
	st := testState(t, reg, 1)

	// Pool transitions are recorded for the log but mutate nothing here.
	require.NoError(t, st.apply(DieTakenEffect{Player: 0, Face: content.FaceSeed}, reg))
	require.NoError(t, st.apply(FeederRefilledEffect{}, reg))
	require.NoError(t, st.apply(CardRevealedEffect{Player: 0, Card: "heron"}, reg))
	require.NoError(t, st.apply(PowerSkippedEffect{Reason: SkipResourceUnavailable}, reg))
}

func TestApplyForfeit(t *testing.T) {
	reg := testRegistry(t)
	st := testState(t, reg, 2)

	require.NoError(t, st.apply(PlayerForfeitedEffect{Player: 1}, reg))
	assert.True(t, st.Player(1).Forfeited)
	assert.False(t, st.Player(0).Forfeited)
}

func TestViewDeckSizeIncludesDiscard(t *testing.T) {
	reg := testRegistry(t)
	st := testState(t, reg, 1)
	st.Feeder = pool.NewFeeder(func() content.DieFace { return content.FaceSeed })

	drawn, err := st.Deck.Draw(1)
	require.NoError(t, err)
	st.Deck.Discard(drawn...)

	// Discarded cards still count as drawable via reshuffle.
	v := buildView(st)
	assert.Equal(t, st.Deck.Total(), v.DeckSize)
	assert.Equal(t, len(reg.BirdIDs()), v.DeckSize)
}
