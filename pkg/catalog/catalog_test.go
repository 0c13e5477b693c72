package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalogsDefineTheirFeatures(t *testing.T) {
	for _, name := range Names() {
		c, ok := Builtin(name)
		require.True(t, ok, name)
		require.NotZero(t, c.Len(), name)
		assert.Equal(t, name, c.Name())

		for _, f := range c.Features() {
			assert.True(t, IsKnownFeature(f), "%s: unknown feature %q", name, f)
		}

		for _, i := range c.All() {
			assert.NotEmpty(t, i.Name)
			assert.Contains(t, []int{0, 1}, i.Sweetness, i.String())
			assert.Contains(t, []int{0, 1}, i.MilkAmount, i.String())
			assert.Contains(t, []int{0, 1}, i.CoffeeStrength, i.String())
			assert.Contains(t, []int{0, 1}, i.Flavors, i.String())
			assert.Contains(t, []int{0, 1}, i.Temperature, i.String())
			assert.GreaterOrEqual(t, i.Specialty, SpecialtyRegular, i.String())
			assert.LessOrEqual(t, i.Specialty, SpecialtyEthiopian, i.String())
		}
	}
}

func TestCatalogSizes(t *testing.T) {
	assert.Equal(t, 20, Classic().Len())
	assert.Equal(t, 20, Flavored().Len())
	assert.Equal(t, 2, Minimal().Len())

	assert.False(t, Classic().HasFeature(FeatureFlavors))
	assert.True(t, Flavored().HasFeature(FeatureFlavors))
	assert.False(t, Minimal().HasFeature(FeatureSpecialty))
}

func TestAllReturnsCopy(t *testing.T) {
	c := Classic()
	items := c.All()
	items[0].Name = "changed"
	items[0].MilkAmount = 1

	first := c.All()[0]
	assert.Equal(t, "v60 Yemeni coffee", first.Name)
	assert.Equal(t, 0, first.MilkAmount)
}

func TestFindPairsNameWithTemperature(t *testing.T) {
	c := Classic()

	cold, ok := c.Find("latte", TemperatureCold)
	require.True(t, ok)
	assert.True(t, cold.IsCold())

	hot, ok := c.Find("latte", TemperatureHot)
	require.True(t, ok)
	assert.False(t, hot.IsCold())

	_, ok = c.Find("Cold Brew", TemperatureHot)
	assert.False(t, ok)
}

func TestVectorValue(t *testing.T) {
	v := Vector{Sweetness: 1, MilkAmount: 1, Flavors: 1, Specialty: SpecialtyColombian, Temperature: TemperatureHot}

	assert.Equal(t, 1, v.Value(FeatureSweetness))
	assert.Equal(t, 1, v.Value(FeatureMilkAmount))
	assert.Equal(t, 0, v.Value(FeatureCoffeeStrength))
	assert.Equal(t, 1, v.Value(FeatureFlavors))
	assert.Equal(t, SpecialtyColombian, v.Value(FeatureSpecialty))
	assert.Equal(t, TemperatureHot, v.Value(FeatureTemperature))
	assert.Equal(t, 0, v.Value(Feature("unknown")))
}

func TestBuiltinUnknown(t *testing.T) {
	_, ok := Builtin("seasonal")
	assert.False(t, ok)
	assert.Equal(t, []string{ClassicName, FlavoredName, MinimalName}, Names())
}
