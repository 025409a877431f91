// Package content defines the immutable card and power definitions the
// engine looks up at runtime. The engine treats a Registry as a read-only
// external collaborator; nothing here is mutated once constructed.
package content

import "fmt"

// CardID identifies a bird or bonus card definition.
type CardID string

// FoodType is one of the five food token types.
type FoodType uint8

const (
	Invertebrate FoodType = iota
	Seed
	Fish
	Fruit
	Rodent
	numFoodTypes
)

// FoodTypes lists every food type in canonical order.
func FoodTypes() []FoodType {
	return []FoodType{Invertebrate, Seed, Fish, Fruit, Rodent}
}

// Valid reports whether f is one of the defined food types.
func (f FoodType) Valid() bool {
	return f < numFoodTypes
}

func (f FoodType) String() string {
	switch f {
	case Invertebrate:
		return "invertebrate"
	case Seed:
		return "seed"
	case Fish:
		return "fish"
	case Fruit:
		return "fruit"
	case Rodent:
		return "rodent"
	}
	return fmt.Sprintf("food(%d)", uint8(f))
}

// DieFace is a face of a feeder die. The dual face is a distinct face value:
// it yields either seed or invertebrate when taken, but never compares equal
// to the plain Seed or Invertebrate faces.
type DieFace uint8

const (
	FaceInvertebrate DieFace = iota
	FaceSeed
	FaceFish
	FaceFruit
	FaceRodent
	FaceSeedInvertebrate // dual face
	NumDieFaces
)

func (d DieFace) String() string {
	switch d {
	case FaceInvertebrate:
		return "invertebrate"
	case FaceSeed:
		return "seed"
	case FaceFish:
		return "fish"
	case FaceFruit:
		return "fruit"
	case FaceRodent:
		return "rodent"
	case FaceSeedInvertebrate:
		return "seed/invertebrate"
	}
	return fmt.Sprintf("face(%d)", uint8(d))
}

// Yields returns the food types a taken die of this face may grant.
func (d DieFace) Yields() []FoodType {
	switch d {
	case FaceInvertebrate:
		return []FoodType{Invertebrate}
	case FaceSeed:
		return []FoodType{Seed}
	case FaceFish:
		return []FoodType{Fish}
	case FaceFruit:
		return []FoodType{Fruit}
	case FaceRodent:
		return []FoodType{Rodent}
	case FaceSeedInvertebrate:
		return []FoodType{Seed, Invertebrate}
	}
	return nil
}

// CanYield reports whether taking a die of this face may grant food f.
func (d DieFace) CanYield(f FoodType) bool {
	for _, y := range d.Yields() {
		if y == f {
			return true
		}
	}
	return false
}

// Habitat is one of the three fixed-width board columns.
type Habitat uint8

const (
	Forest Habitat = iota
	Grassland
	Wetland
	NumHabitats
)

func (h Habitat) String() string {
	switch h {
	case Forest:
		return "forest"
	case Grassland:
		return "grassland"
	case Wetland:
		return "wetland"
	}
	return fmt.Sprintf("habitat(%d)", uint8(h))
}

// Habitats lists the habitats in board order.
func Habitats() []Habitat {
	return []Habitat{Forest, Grassland, Wetland}
}

// NestType categorises a bird's nest for nest-conditional powers.
type NestType uint8

const (
	NestNone NestType = iota
	NestBowl
	NestCavity
	NestGround
	NestPlatform
	NestStar // wild, matches any nest type
)

func (n NestType) String() string {
	switch n {
	case NestNone:
		return "none"
	case NestBowl:
		return "bowl"
	case NestCavity:
		return "cavity"
	case NestGround:
		return "ground"
	case NestPlatform:
		return "platform"
	case NestStar:
		return "star"
	}
	return fmt.Sprintf("nest(%d)", uint8(n))
}

// Matches reports whether the nest satisfies a required nest type, treating
// the star nest as wild on either side.
func (n NestType) Matches(want NestType) bool {
	if n == NestStar || want == NestStar {
		return n != NestNone
	}
	return n == want
}

// FoodCost is the food required to play a bird. Wild slots may be paid with
// any food type; typed components must be paid exactly.
type FoodCost struct {
	Typed map[FoodType]int
	Wild  int
}

// Total is the total number of tokens the cost requires.
func (c FoodCost) Total() int {
	n := c.Wild
	for _, v := range c.Typed {
		n += v
	}
	return n
}

// BirdCard is an immutable bird definition.
type BirdCard struct {
	ID          CardID
	Name        string
	Habitats    []Habitat // habitats the bird may be played into
	Cost        FoodCost
	EggCapacity int
	Points      int
	Wingspan    int // centimetres; 0 means printed "*"
	Nest        NestType
	Power       *PowerSpec // nil for birds without a power
}

// LivesIn reports whether the bird may be played into habitat h.
func (b BirdCard) LivesIn(h Habitat) bool {
	for _, hh := range b.Habitats {
		if hh == h {
			return true
		}
	}
	return false
}

// BonusCard is an immutable bonus card definition. Score is evaluated against
// a player's final board by the engine at game end.
type BonusCard struct {
	ID   CardID
	Name string
	// PerBird awards points for each bird on the holder's board that
	// Matches reports true for.
	PerBird int
	Matches func(BirdCard) bool
}
