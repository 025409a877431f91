package content

// StarterSet returns a compact built-in card set covering every power kind.
// The real content database is an external collaborator; this set exists so
// the simulator and tests can run full games without it.
func StarterSet() *MapRegistry {
	wild := func(n int) FoodCost { return FoodCost{Wild: n} }
	typed := func(f FoodType, n int) FoodCost {
		return FoodCost{Typed: map[FoodType]int{f: n}}
	}

	birds := []BirdCard{
		{ID: "mallard", Name: "Mallard", Habitats: []Habitat{Wetland}, Cost: typed(Seed, 1), EggCapacity: 4, Points: 0, Wingspan: 89, Nest: NestGround,
			Power: &PowerSpec{Kind: PowerDrawCards, Trigger: TriggerBrown, Count: 1}},
		{ID: "house-wren", Name: "House Wren", Habitats: []Habitat{Forest, Grassland}, Cost: wild(1), EggCapacity: 3, Points: 2, Wingspan: 15, Nest: NestCavity,
			Power: &PowerSpec{Kind: PowerLayEggOnNestType, Trigger: TriggerBrown, Nest: NestCavity, Count: 1}},
		{ID: "american-robin", Name: "American Robin", Habitats: []Habitat{Forest, Grassland, Wetland}, Cost: typed(Invertebrate, 1), EggCapacity: 4, Points: 1, Wingspan: 43, Nest: NestBowl,
			Power: &PowerSpec{Kind: PowerGainFood, Trigger: TriggerBrown, Food: Fruit, Count: 1}},
		{ID: "wood-duck", Name: "Wood Duck", Habitats: []Habitat{Forest, Wetland}, Cost: typed(Seed, 2), EggCapacity: 4, Points: 4, Wingspan: 76, Nest: NestCavity,
			Power: &PowerSpec{Kind: PowerDrawFromTray, Trigger: TriggerBrown, Count: 1}},
		{ID: "barn-owl", Name: "Barn Owl", Habitats: []Habitat{Forest, Grassland}, Cost: typed(Rodent, 1), EggCapacity: 2, Points: 5, Wingspan: 107, Nest: NestCavity,
			Power: &PowerSpec{Kind: PowerPredatorTuck, Trigger: TriggerBrown, Threshold: 75}},
		{ID: "coopers-hawk", Name: "Cooper's Hawk", Habitats: []Habitat{Forest}, Cost: FoodCost{Typed: map[FoodType]int{Rodent: 1}, Wild: 1}, EggCapacity: 3, Points: 5, Wingspan: 79, Nest: NestPlatform,
			Power: &PowerSpec{Kind: PowerPredatorKeep, Trigger: TriggerBrown, Threshold: 75}},
		{ID: "american-kestrel", Name: "American Kestrel", Habitats: []Habitat{Grassland}, Cost: typed(Rodent, 1), EggCapacity: 3, Points: 5, Wingspan: 56, Nest: NestCavity,
			Power: &PowerSpec{Kind: PowerRollDiceCache, Trigger: TriggerBrown, Food: Rodent, Count: 2}},
		{ID: "belted-kingfisher", Name: "Belted Kingfisher", Habitats: []Habitat{Wetland}, Cost: typed(Fish, 1), EggCapacity: 3, Points: 4, Wingspan: 48, Nest: NestCavity,
			Power: &PowerSpec{Kind: PowerRollDiceGain, Trigger: TriggerBrown, Food: Fish, Count: 2}},
		{ID: "osprey", Name: "Osprey", Habitats: []Habitat{Wetland}, Cost: typed(Fish, 2), EggCapacity: 3, Points: 5, Wingspan: 160, Nest: NestPlatform,
			Power: &PowerSpec{Kind: PowerCacheFoodFromFeeder, Trigger: TriggerBrown, Food: Fish, Count: 1}},
		{ID: "acorn-woodpecker", Name: "Acorn Woodpecker", Habitats: []Habitat{Forest}, Cost: typed(Seed, 1), EggCapacity: 4, Points: 5, Wingspan: 46, Nest: NestCavity,
			Power: &PowerSpec{Kind: PowerCacheFood, Trigger: TriggerBrown, Food: Seed, Count: 1}},
		{ID: "blue-jay", Name: "Blue Jay", Habitats: []Habitat{Forest}, Cost: FoodCost{Typed: map[FoodType]int{Seed: 1}, Wild: 1}, EggCapacity: 2, Points: 3, Wingspan: 41, Nest: NestBowl,
			Power: &PowerSpec{Kind: PowerGainFoodFromFeeder, Trigger: TriggerBrown, Food: Seed, Count: 1}},
		{ID: "pine-siskin", Name: "Pine Siskin", Habitats: []Habitat{Forest}, Cost: typed(Seed, 1), EggCapacity: 3, Points: 1, Wingspan: 23, Nest: NestBowl,
			Power: &PowerSpec{Kind: PowerGainAllOfFaceInFeeder, Trigger: TriggerBrown, Food: Seed}},
		{ID: "killdeer", Name: "Killdeer", Habitats: []Habitat{Grassland, Wetland}, Cost: wild(1), EggCapacity: 5, Points: 2, Wingspan: 46, Nest: NestGround,
			Power: &PowerSpec{Kind: PowerDiscardEggToDraw, Trigger: TriggerBrown, Count: 2}},
		{ID: "common-raven", Name: "Common Raven", Habitats: []Habitat{Forest, Grassland, Wetland}, Cost: wild(2), EggCapacity: 3, Points: 3, Wingspan: 135, Nest: NestPlatform,
			Power: &PowerSpec{Kind: PowerDiscardEggToGain, Trigger: TriggerBrown, Food: Seed, Count: 2}},
		{ID: "mourning-dove", Name: "Mourning Dove", Habitats: []Habitat{Forest, Grassland}, Cost: typed(Seed, 1), EggCapacity: 5, Points: 0, Wingspan: 46, Nest: NestPlatform,
			Power: &PowerSpec{Kind: PowerLayEggsSelf, Trigger: TriggerBrown, Count: 1}},
		{ID: "american-coot", Name: "American Coot", Habitats: []Habitat{Wetland}, Cost: typed(Seed, 1), EggCapacity: 5, Points: 3, Wingspan: 61, Nest: NestPlatform,
			Power: &PowerSpec{Kind: PowerTuckFromHand, Trigger: TriggerBrown, Count: 1}},
		{ID: "black-skimmer", Name: "Black Skimmer", Habitats: []Habitat{Wetland}, Cost: typed(Fish, 1), EggCapacity: 3, Points: 5, Wingspan: 112, Nest: NestGround,
			Power: &PowerSpec{Kind: PowerTuckFromDeck, Trigger: TriggerBrown, Count: 1}},
		{ID: "cedar-waxwing", Name: "Cedar Waxwing", Habitats: []Habitat{Forest}, Cost: typed(Fruit, 1), EggCapacity: 2, Points: 3, Wingspan: 30, Nest: NestBowl,
			Power: &PowerSpec{Kind: PowerTuckThenDraw, Trigger: TriggerBrown, Count: 1}},
		{ID: "ruddy-duck", Name: "Ruddy Duck", Habitats: []Habitat{Wetland}, Cost: FoodCost{Typed: map[FoodType]int{Invertebrate: 1}, Wild: 1}, EggCapacity: 6, Points: 3, Wingspan: 47, Nest: NestGround,
			Power: &PowerSpec{Kind: PowerTuckThenLayEgg, Trigger: TriggerBrown, Count: 1}},
		{ID: "chipping-sparrow", Name: "Chipping Sparrow", Habitats: []Habitat{Grassland}, Cost: typed(Seed, 1), EggCapacity: 3, Points: 1, Wingspan: 21, Nest: NestGround,
			Power: &PowerSpec{Kind: PowerDiscardCardToGain, Trigger: TriggerBrown, Food: Seed, Count: 1}},
		{ID: "great-blue-heron", Name: "Great Blue Heron", Habitats: []Habitat{Wetland}, Cost: FoodCost{Typed: map[FoodType]int{Fish: 1}, Wild: 1}, EggCapacity: 2, Points: 5, Wingspan: 196, Nest: NestPlatform,
			Power: &PowerSpec{Kind: PowerDiscardFoodToTuck, Trigger: TriggerBrown, Food: Fish, Count: 2}},
		{ID: "red-winged-blackbird", Name: "Red-winged Blackbird", Habitats: []Habitat{Grassland, Wetland}, Cost: wild(1), EggCapacity: 4, Points: 1, Wingspan: 33, Nest: NestBowl,
			Power: &PowerSpec{Kind: PowerDrawIfNestBirds, Trigger: TriggerBrown, Nest: NestBowl, Threshold: 2, Count: 1}},
		{ID: "eastern-kingbird", Name: "Eastern Kingbird", Habitats: []Habitat{Forest, Grassland}, Cost: typed(Invertebrate, 1), EggCapacity: 3, Points: 2, Wingspan: 38, Nest: NestBowl,
			Power: &PowerSpec{Kind: PowerRepeatBrown, Trigger: TriggerBrown}},
		{ID: "wild-turkey", Name: "Wild Turkey", Habitats: []Habitat{Forest, Grassland}, Cost: FoodCost{Typed: map[FoodType]int{Seed: 2}, Wild: 1}, EggCapacity: 5, Points: 8, Wingspan: 130, Nest: NestGround,
			Power: &PowerSpec{Kind: PowerGainFoodPerBirdIn, Trigger: TriggerBrown, Food: Seed, Habitat: Grassland, Count: 2}},
		{ID: "canada-goose", Name: "Canada Goose", Habitats: []Habitat{Grassland, Wetland}, Cost: typed(Seed, 2), EggCapacity: 5, Points: 3, Wingspan: 132, Nest: NestGround,
			Power: &PowerSpec{Kind: PowerGainFoodChoice, Trigger: TriggerBrown, Count: 1}},

		// White ("when played") powers.
		{ID: "trumpeter-swan", Name: "Trumpeter Swan", Habitats: []Habitat{Wetland}, Cost: typed(Seed, 3), EggCapacity: 2, Points: 9, Wingspan: 203, Nest: NestGround,
			Power: &PowerSpec{Kind: PowerDrawCards, Trigger: TriggerWhite, Count: 2}},
		{ID: "sandhill-crane", Name: "Sandhill Crane", Habitats: []Habitat{Grassland, Wetland}, Cost: typed(Seed, 2), EggCapacity: 2, Points: 6, Wingspan: 196, Nest: NestGround,
			Power: &PowerSpec{Kind: PowerAllPlayersGainFood, Trigger: TriggerWhite, Food: Seed}},
		{ID: "painted-bunting", Name: "Painted Bunting", Habitats: []Habitat{Grassland}, Cost: FoodCost{Typed: map[FoodType]int{Seed: 1, Fruit: 1}}, EggCapacity: 3, Points: 4, Wingspan: 22, Nest: NestBowl,
			Power: &PowerSpec{Kind: PowerAllPlayersLayEgg, Trigger: TriggerWhite}},
		{ID: "purple-martin", Name: "Purple Martin", Habitats: []Habitat{Grassland, Wetland}, Cost: typed(Invertebrate, 1), EggCapacity: 3, Points: 3, Wingspan: 46, Nest: NestCavity,
			Power: &PowerSpec{Kind: PowerAllPlayersDraw, Trigger: TriggerWhite}},
		{ID: "snowy-egret", Name: "Snowy Egret", Habitats: []Habitat{Wetland}, Cost: FoodCost{Typed: map[FoodType]int{Fish: 1}, Wild: 1}, EggCapacity: 3, Points: 5, Wingspan: 104, Nest: NestPlatform,
			Power: &PowerSpec{Kind: PowerOpponentsGainFood, Trigger: TriggerWhite, Food: Fish}},
		{ID: "northern-mockingbird", Name: "Northern Mockingbird", Habitats: []Habitat{Grassland}, Cost: wild(1), EggCapacity: 3, Points: 3, Wingspan: 36, Nest: NestBowl,
			Power: &PowerSpec{Kind: PowerLayEggsAnyBirds, Trigger: TriggerWhite, Count: 2}},
		{ID: "prothonotary-warbler", Name: "Prothonotary Warbler", Habitats: []Habitat{Forest, Wetland}, Cost: typed(Invertebrate, 1), EggCapacity: 3, Points: 2, Wingspan: 22, Nest: NestCavity,
			Power: &PowerSpec{Kind: PowerLayEggEachInHabitat, Trigger: TriggerWhite, Habitat: Wetland}},

		// Pink ("once between turns") powers.
		{ID: "american-goldfinch", Name: "American Goldfinch", Habitats: []Habitat{Grassland}, Cost: typed(Seed, 2), EggCapacity: 3, Points: 3, Wingspan: 23, Nest: NestBowl,
			Power: &PowerSpec{Kind: PowerPinkGainFoodOnGain, Trigger: TriggerPink, Food: Seed}},
		{ID: "loggerhead-shrike", Name: "Loggerhead Shrike", Habitats: []Habitat{Grassland}, Cost: FoodCost{Typed: map[FoodType]int{Invertebrate: 1, Rodent: 1}}, EggCapacity: 2, Points: 5, Wingspan: 30, Nest: NestBowl,
			Power: &PowerSpec{Kind: PowerPinkCacheOnGain, Trigger: TriggerPink, Food: Rodent}},
		{ID: "brown-headed-cowbird", Name: "Brown-headed Cowbird", Habitats: []Habitat{Grassland}, Cost: wild(2), EggCapacity: 5, Points: 3, Wingspan: 36, Nest: NestStar,
			Power: &PowerSpec{Kind: PowerPinkLayEggOnLay, Trigger: TriggerPink}},
		{ID: "black-billed-magpie", Name: "Black-billed Magpie", Habitats: []Habitat{Grassland}, Cost: wild(2), EggCapacity: 4, Points: 4, Wingspan: 64, Nest: NestPlatform,
			Power: &PowerSpec{Kind: PowerPinkTuckOnPlay, Trigger: TriggerPink, Habitat: Grassland}},
		{ID: "house-sparrow", Name: "House Sparrow", Habitats: []Habitat{Grassland}, Cost: typed(Seed, 1), EggCapacity: 5, Points: 1, Wingspan: 24, Nest: NestCavity,
			Power: &PowerSpec{Kind: PowerPinkGainOnPlay, Trigger: TriggerPink, Food: Seed}},
		{ID: "horned-lark", Name: "Horned Lark", Habitats: []Habitat{Grassland}, Cost: typed(Seed, 1), EggCapacity: 4, Points: 2, Wingspan: 30, Nest: NestGround,
			Power: &PowerSpec{Kind: PowerPinkTuckOnDraw, Trigger: TriggerPink}},

		// Birds without a power.
		{ID: "california-condor", Name: "California Condor", Habitats: []Habitat{Grassland}, Cost: wild(3), EggCapacity: 1, Points: 9, Wingspan: 277, Nest: NestCavity},
		{ID: "common-loon", Name: "Common Loon", Habitats: []Habitat{Wetland}, Cost: typed(Fish, 2), EggCapacity: 2, Points: 7, Wingspan: 117, Nest: NestGround},
		{ID: "tree-swallow", Name: "Tree Swallow", Habitats: []Habitat{Grassland, Wetland}, Cost: typed(Invertebrate, 1), EggCapacity: 3, Points: 3, Wingspan: 38, Nest: NestCavity},
	}

	bonuses := []BonusCard{
		{ID: "bonus-cavity", Name: "Cavity Nester", PerBird: 1, Matches: func(b BirdCard) bool { return b.Nest == NestCavity || b.Nest == NestStar }},
		{ID: "bonus-ground", Name: "Ground Nester", PerBird: 1, Matches: func(b BirdCard) bool { return b.Nest == NestGround || b.Nest == NestStar }},
		{ID: "bonus-wetland", Name: "Wetland Specialist", PerBird: 1, Matches: func(b BirdCard) bool { return b.LivesIn(Wetland) }},
		{ID: "bonus-large", Name: "Large Bird Watcher", PerBird: 2, Matches: func(b BirdCard) bool { return b.Wingspan >= 100 }},
		{ID: "bonus-fish-eater", Name: "Fish Eater", PerBird: 2, Matches: func(b BirdCard) bool { return b.Cost.Typed[Fish] > 0 }},
		{ID: "bonus-high-value", Name: "High-Value Collector", PerBird: 1, Matches: func(b BirdCard) bool { return b.Points >= 5 }},
	}

	r, err := NewRegistry(birds, bonuses)
	if err != nil {
		panic(err)
	}
	return r
}
