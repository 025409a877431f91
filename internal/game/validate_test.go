package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviarylabs/aviary/internal/content"
)

func TestValidateStartingHand(t *testing.T) {
	prompt := &StartingHandPrompt{
		PromptMeta: PromptMeta{ID: 1},
		Cards:      []content.CardID{"a", "b", "c", "d", "e"},
		Budget:     5,
	}

	tests := []struct {
		name   string
		choice *StartingHandChoice
		code   string
	}{
		{
			name: "valid split",
			choice: &StartingHandChoice{Prompt: 1,
				KeepCards: []content.CardID{"a", "b"},
				KeepFood:  []content.FoodType{content.Seed, content.Fish, content.Fruit}},
		},
		{
			name: "budget exceeded",
			choice: &StartingHandChoice{Prompt: 1,
				KeepCards: []content.CardID{"a", "b", "c"},
				KeepFood:  []content.FoodType{content.Seed, content.Fish, content.Fruit}},
			code: CodeQuantityMismatch,
		},
		{
			name: "card not dealt",
			choice: &StartingHandChoice{Prompt: 1,
				KeepCards: []content.CardID{"z"},
				KeepFood:  []content.FoodType{content.Seed, content.Seed, content.Seed, content.Seed}},
			code: CodeNotEligible,
		},
		{
			name: "food type does not exist",
			choice: &StartingHandChoice{Prompt: 1,
				KeepCards: []content.CardID{"a", "b", "c", "d"},
				KeepFood:  []content.FoodType{content.FoodType(200)}},
			code: CodeNotEligible,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateStartingHand(prompt, tt.choice)
			if tt.code == "" {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, tt.code, err.Code)
			}
		})
	}
}

func TestValidateFoodSelect(t *testing.T) {
	prompt := &FoodSelectPrompt{
		PromptMeta:    PromptMeta{ID: 1},
		Dice:          []content.DieFace{content.FaceSeed, content.FaceSeed, content.FaceSeedInvertebrate},
		Count:         2,
		RerollAllowed: false,
	}

	tests := []struct {
		name   string
		choice *FoodSelectChoice
		code   string
	}{
		{
			name: "valid take with dual as invertebrate",
			choice: &FoodSelectChoice{Prompt: 1, Take: []DieTake{
				{Face: content.FaceSeed, As: content.Seed},
				{Face: content.FaceSeedInvertebrate, As: content.Invertebrate},
			}},
		},
		{
			name: "dual cannot yield fish",
			choice: &FoodSelectChoice{Prompt: 1, Take: []DieTake{
				{Face: content.FaceSeed, As: content.Seed},
				{Face: content.FaceSeedInvertebrate, As: content.Fish},
			}},
			code: CodeNotEligible,
		},
		{
			name: "too many dice",
			choice: &FoodSelectChoice{Prompt: 1, Take: []DieTake{
				{Face: content.FaceSeed, As: content.Seed},
				{Face: content.FaceSeed, As: content.Seed},
				{Face: content.FaceSeedInvertebrate, As: content.Seed},
			}},
			code: CodeQuantityMismatch,
		},
		{
			name: "face not in feeder",
			choice: &FoodSelectChoice{Prompt: 1, Take: []DieTake{
				{Face: content.FaceSeed, As: content.Seed},
				{Face: content.FaceRodent, As: content.Rodent},
			}},
			code: CodeNotEligible,
		},
		{
			name:   "reroll not offered",
			choice: &FoodSelectChoice{Prompt: 1, Reroll: true},
			code:   CodeRerollIllegal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateFoodSelect(prompt, tt.choice)
			if tt.code == "" {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, tt.code, err.Code)
			}
		})
	}
}

func TestValidateFoodSelectReroll(t *testing.T) {
	prompt := &FoodSelectPrompt{
		PromptMeta:    PromptMeta{ID: 1},
		Dice:          []content.DieFace{content.FaceSeed, content.FaceSeed},
		Count:         1,
		RerollAllowed: true,
	}
	assert.Nil(t, validateFoodSelect(prompt, &FoodSelectChoice{Prompt: 1, Reroll: true}))

	err := validateFoodSelect(prompt, &FoodSelectChoice{
		Prompt: 1, Reroll: true,
		Take: []DieTake{{Face: content.FaceSeed, As: content.Seed}},
	})
	require.NotNil(t, err)
	assert.Equal(t, CodeRerollIllegal, err.Code)
}

func TestValidateEggPlacement(t *testing.T) {
	prompt := &EggPlacementPrompt{
		PromptMeta: PromptMeta{ID: 1},
		Count:      3,
		Eligible: []EggSlot{
			{Card: "a", Limit: 2},
			{Card: "b", Limit: 4},
		},
	}

	tests := []struct {
		name       string
		placements map[content.CardID]int
		code       string
	}{
		{"valid spread", map[content.CardID]int{"a": 1, "b": 2}, ""},
		{"over capacity", map[content.CardID]int{"a": 3}, CodeCapacityExceeded},
		{"wrong total", map[content.CardID]int{"a": 1, "b": 1}, CodeQuantityMismatch},
		{"ineligible bird", map[content.CardID]int{"z": 3}, CodeNotEligible},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEggPlacement(prompt, &EggPlacementChoice{Prompt: 1, Placements: tt.placements})
			if tt.code == "" {
				assert.Nil(t, err)
			} else {
				require.NotNil(t, err)
				assert.Equal(t, tt.code, err.Code)
			}
		})
	}
}

func TestValidateCardDraw(t *testing.T) {
	prompt := &CardDrawPrompt{
		PromptMeta: PromptMeta{ID: 1},
		Count:      2,
		Tray:       []content.CardID{"a", "b", "c"},
		DeckSize:   1,
	}

	assert.Nil(t, validateCardDraw(prompt, &CardDrawChoice{Prompt: 1, FromTray: []content.CardID{"a"}, FromDeck: 1}))
	assert.Nil(t, validateCardDraw(prompt, &CardDrawChoice{Prompt: 1, FromTray: []content.CardID{"a", "c"}}))

	err := validateCardDraw(prompt, &CardDrawChoice{Prompt: 1, FromDeck: 2})
	require.NotNil(t, err)
	assert.Equal(t, CodeInsufficientResources, err.Code)

	err = validateCardDraw(prompt, &CardDrawChoice{Prompt: 1, FromTray: []content.CardID{"a"}})
	require.NotNil(t, err)
	assert.Equal(t, CodeQuantityMismatch, err.Code)
}

func TestValidatePayCost(t *testing.T) {
	reg := testRegistry(t)
	st := testState(t, reg, 1)
	st.Player(0).Food[content.Fish] = 2
	st.Player(0).Food[content.Seed] = 1

	prompt := &PayCostPrompt{
		PromptMeta: PromptMeta{ID: 1, Player: 0},
		Cost:       content.FoodCost{Typed: map[content.FoodType]int{content.Fish: 1}, Wild: 1},
		EggCost:    1,
		EggSources: []EggSlot{{Card: "nest", Limit: 2}},
	}

	valid := &PayCostChoice{Prompt: 1,
		Food: map[content.FoodType]int{content.Fish: 1, content.Seed: 1},
		Eggs: map[content.CardID]int{"nest": 1},
	}
	assert.Nil(t, validatePayCost(prompt, valid, st))

	// Typed component short.
	err := validatePayCost(prompt, &PayCostChoice{Prompt: 1,
		Food: map[content.FoodType]int{content.Seed: 1, content.Fruit: 1},
		Eggs: map[content.CardID]int{"nest": 1},
	}, st)
	require.NotNil(t, err)
	assert.Equal(t, CodeCostMismatch, err.Code)

	// Overpayment is as invalid as underpayment.
	err = validatePayCost(prompt, &PayCostChoice{Prompt: 1,
		Food: map[content.FoodType]int{content.Fish: 2, content.Seed: 1},
		Eggs: map[content.CardID]int{"nest": 1},
	}, st)
	require.NotNil(t, err)
	assert.Equal(t, CodeCostMismatch, err.Code)

	// Paying food the supply does not hold.
	err = validatePayCost(prompt, &PayCostChoice{Prompt: 1,
		Food: map[content.FoodType]int{content.Fish: 1, content.Fruit: 1},
		Eggs: map[content.CardID]int{"nest": 1},
	}, st)
	require.NotNil(t, err)
	assert.Equal(t, CodeInsufficientResources, err.Code)

	// Missing egg payment.
	err = validatePayCost(prompt, &PayCostChoice{Prompt: 1,
		Food: map[content.FoodType]int{content.Fish: 1, content.Seed: 1},
	}, st)
	require.NotNil(t, err)
	assert.Equal(t, CodeCostMismatch, err.Code)
}

func TestValidateBirdTarget(t *testing.T) {
	prompt := &BirdTargetPrompt{
		PromptMeta: PromptMeta{ID: 1},
		Count:      2,
		Eligible:   []content.CardID{"a", "b", "c"},
		Purpose:    TargetLayEgg,
	}

	assert.Nil(t, validateBirdTarget(prompt, &BirdTargetChoice{Prompt: 1, Birds: []content.CardID{"a", "c"}}))

	err := validateBirdTarget(prompt, &BirdTargetChoice{Prompt: 1, Birds: []content.CardID{"a", "a"}})
	require.NotNil(t, err)
	assert.Equal(t, CodeNotEligible, err.Code)

	err = validateBirdTarget(prompt, &BirdTargetChoice{Prompt: 1, Birds: []content.CardID{"a"}})
	require.NotNil(t, err)
	assert.Equal(t, CodeQuantityMismatch, err.Code)
}

func TestCheckAnswerProtocol(t *testing.T) {
	prompt := &PowerOfferPrompt{PromptMeta: PromptMeta{ID: 7}}

	assert.NoError(t, checkAnswer(prompt, &PowerOfferChoice{Prompt: 7, Accept: true}))

	var perr *ProtocolError
	err := checkAnswer(prompt, nil)
	require.ErrorAs(t, err, &perr)

	err = checkAnswer(prompt, &CardSelectChoice{Prompt: 7})
	require.ErrorAs(t, err, &perr)

	err = checkAnswer(prompt, &PowerOfferChoice{Prompt: 6})
	require.ErrorAs(t, err, &perr)
}
