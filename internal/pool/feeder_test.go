package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aviarylabs/aviary/internal/content"
	"github.com/aviarylabs/aviary/internal/randutil"
)

// scriptedRoll returns faces from a fixed sequence, cycling at the end.
func scriptedRoll(faces ...content.DieFace) func() content.DieFace {
	i := 0
	return func() content.DieFace {
		f := faces[i%len(faces)]
		i++
		return f
	}
}

func TestFeederRollsToCapacity(t *testing.T) {
	f := NewFeeder(scriptedRoll(content.FaceSeed))
	assert.Equal(t, FeederCapacity, f.Len())
}

func TestFeederTakeRemovesWithoutRerolling(t *testing.T) {
	f := NewFeeder(scriptedRoll(
		content.FaceSeed, content.FaceFish, content.FaceSeed, content.FaceFruit, content.FaceRodent,
	))

	require.NoError(t, f.Take(content.FaceFish))
	assert.Equal(t, 4, f.Len())
	assert.NotContains(t, f.Faces(), content.FaceFish)

	// The remaining dice keep their faces.
	assert.ElementsMatch(t, []content.DieFace{
		content.FaceSeed, content.FaceSeed, content.FaceFruit, content.FaceRodent,
	}, f.Faces())

	assert.Error(t, f.Take(content.FaceFish))
}

func TestFeederResetsOnlyWhenEmpty(t *testing.T) {
	f := NewFeeder(scriptedRoll(content.FaceSeed))

	for f.Len() > 1 {
		require.NoError(t, f.Take(content.FaceSeed))
		assert.False(t, f.ResetIfEmpty())
	}
	require.NoError(t, f.Take(content.FaceSeed))
	assert.True(t, f.Empty())

	assert.True(t, f.ResetIfEmpty())
	assert.Equal(t, FeederCapacity, f.Len())
}

func TestFeederAllSame(t *testing.T) {
	tests := []struct {
		name  string
		faces []content.DieFace
		want  bool
	}{
		{"uniform", []content.DieFace{content.FaceSeed, content.FaceSeed, content.FaceSeed, content.FaceSeed, content.FaceSeed}, true},
		{"mixed", []content.DieFace{content.FaceSeed, content.FaceFish, content.FaceSeed, content.FaceSeed, content.FaceSeed}, false},
		// The dual face is its own value, never equal to plain seed.
		{"dual breaks uniformity", []content.DieFace{content.FaceSeed, content.FaceSeed, content.FaceSeedInvertebrate, content.FaceSeed, content.FaceSeed}, false},
		{"uniform dual", []content.DieFace{content.FaceSeedInvertebrate, content.FaceSeedInvertebrate, content.FaceSeedInvertebrate, content.FaceSeedInvertebrate, content.FaceSeedInvertebrate}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFeeder(scriptedRoll(tt.faces...))
			assert.Equal(t, tt.want, f.AllSame())
		})
	}
}

func TestFeederDeterministicWithSeededRoll(t *testing.T) {
	roll := func(seed int64) func() content.DieFace {
		rng := randutil.New(seed)
		return func() content.DieFace {
			return content.DieFace(rng.IntN(int(content.NumDieFaces)))
		}
	}
	f1 := NewFeeder(roll(5))
	f2 := NewFeeder(roll(5))
	assert.Equal(t, f1.Faces(), f2.Faces())
}
