package fretboard

import (
	"fmt"
	"testing"

	"github.com/mwhitford/fretwork/model"
	"github.com/stretchr/testify/assert"
)

func TestTableVoicingsAreSixSlotsInRange(t *testing.T) {
	for _, name := range Names() {
		for i := 0; i < NumVariants(name); i++ {
			testName := fmt.Sprintf("%v variant %v", name, i)
			t.Run(testName, func(t *testing.T) {
				v, ok := VoicingFor(name, i)

				assert := assert.New(t)
				assert.True(ok)
				assert.True(v.Positioned)
				assert.Len(v.Strings, model.NumStrings)
				for _, p := range v.Strings {
					if p == model.Muted {
						continue
					}
					assert.GreaterOrEqual(p, RangeLow)
					assert.LessOrEqual(p, RangeHigh)
				}
			})
		}
	}
}

func TestKnownShapeResolvesAgainstTuning(t *testing.T) {
	// Am is x02210
	v, ok := VoicingFor("Am", 0)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal([model.NumStrings]int{model.Muted, 45, 52, 57, 60, 64}, v.Strings)
	assert.Equal(model.Notes{45, 52, 57, 60, 64}, v.Sounding())
}

func TestVariantIndexWrapsToZero(t *testing.T) {
	first, _ := VoicingFor("C", 0)
	wrapped, ok := VoicingFor("C", 99)

	assert := assert.New(t)
	assert.True(ok)
	assert.Equal(first, wrapped)
}

func TestUnknownChordHasNoEntry(t *testing.T) {
	_, ok := VoicingFor("Q#13", 0)
	assert.False(t, ok)
}

func TestFallbackCapsAtStringCount(t *testing.T) {
	var pitches model.Notes
	for p := uint8(50); p < 62; p++ {
		pitches = append(pitches, p)
	}
	v := Fallback(pitches)

	assert := assert.New(t)
	assert.False(v.Positioned)
	assert.LessOrEqual(len(v.Pitches), model.NumStrings)
	// lowest and highest survive
	assert.Equal(uint8(50), v.Pitches[0])
	assert.Equal(uint8(61), v.Pitches[len(v.Pitches)-1])
}

func TestFallbackFoldsIntoPlayableRange(t *testing.T) {
	v := Fallback(model.Notes{20, 60, 100})

	assert := assert.New(t)
	for _, p := range v.Pitches {
		assert.GreaterOrEqual(int(p), RangeLow)
		assert.LessOrEqual(int(p), RangeHigh)
	}
}

func TestFallbackDeduplicatesAndSorts(t *testing.T) {
	v := Fallback(model.Notes{67, 60, 60, 64})
	assert.Equal(t, model.Notes{60, 64, 67}, v.Pitches)
}

func TestFallbackOnNothingIsEmpty(t *testing.T) {
	v := Fallback(nil)
	assert.Empty(t, v.Sounding())
}

func TestAddShapesOnlyAddsNewNames(t *testing.T) {
	builtin := NumVariants("C")
	added := AddShapes(map[string][]model.Shape{
		"C":     {{0, 0, 0, 0, 0, 0}},
		"Dsus4": {{model.Muted, model.Muted, 0, 2, 3, 3}},
	})

	assert := assert.New(t)
	assert.Equal(1, added)
	assert.Equal(builtin, NumVariants("C"))

	v, ok := VoicingFor("Dsus4", 0)
	assert.True(ok)
	assert.Equal(model.Notes{50, 57, 62, 67}, v.Sounding())
}
