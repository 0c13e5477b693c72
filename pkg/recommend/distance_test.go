package recommend

import (
	"testing"

	"coffeeQuizBot/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceIsZeroForMatchingVector(t *testing.T) {
	for _, c := range []*catalog.Catalog{catalog.Classic(), catalog.Flavored(), catalog.Minimal()} {
		for _, item := range c.All() {
			assert.Zero(t, Distance(c.Features(), DefaultWeights(), item.Vector, item.Vector), item.String())
		}
	}
}

func TestDistanceIsWeightedManhattan(t *testing.T) {
	features := catalog.KnownFeatures()
	a := catalog.Vector{Sweetness: 1, MilkAmount: 0, CoffeeStrength: 1, Flavors: 0, Specialty: catalog.SpecialtyEthiopian, Temperature: 0}
	b := catalog.Vector{Sweetness: 0, MilkAmount: 1, CoffeeStrength: 1, Flavors: 1, Specialty: catalog.SpecialtyYemeni, Temperature: 1}

	// 1*2 + 1*3 + 0*2 + 1*1 + 2*2 + 1*2, a euclidean metric would give sqrt of the squares instead
	assert.Equal(t, 12.0, Distance(features, DefaultWeights(), a, b))
	assert.Equal(t, Distance(features, DefaultWeights(), a, b), Distance(features, DefaultWeights(), b, a))
}

func TestDistanceIgnoresInactiveFeatures(t *testing.T) {
	a := catalog.Vector{Flavors: 1}
	b := catalog.Vector{}

	assert.Zero(t, Distance(catalog.Classic().Features(), DefaultWeights(), a, b))
	assert.Equal(t, 1.0, Distance(catalog.Flavored().Features(), DefaultWeights(), a, b))
}

func TestRankIsStableOnTies(t *testing.T) {
	items := []catalog.Item{
		{Name: "far", Vector: catalog.Vector{MilkAmount: 1}},
		{Name: "first tie", Vector: catalog.Vector{Sweetness: 1}},
		{Name: "exact", Vector: catalog.Vector{}},
		{Name: "second tie", Vector: catalog.Vector{CoffeeStrength: 1}},
		{Name: "third tie", Vector: catalog.Vector{Temperature: 1}},
	}

	ranked := Rank(catalog.KnownFeatures(), DefaultWeights(), catalog.Vector{}, items)
	require.Len(t, ranked, len(items))

	names := make([]string, len(ranked))
	for i, c := range ranked {
		names[i] = c.Item.Name
	}
	assert.Equal(t, []string{"exact", "first tie", "second tie", "third tie", "far"}, names)

	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].Distance, ranked[i].Distance)
	}
}
