package catalog

import "fmt"

type Feature string

const (
	FeatureSweetness      Feature = "sweetness"
	FeatureMilkAmount     Feature = "milk_amount"
	FeatureCoffeeStrength Feature = "coffee_strength"
	FeatureFlavors        Feature = "flavors"
	FeatureSpecialty      Feature = "specialty"
	FeatureTemperature    Feature = "temperature"
)

// Specialty codes, nominal rather than ordinal.
const (
	SpecialtyRegular = iota
	SpecialtyYemeni
	SpecialtyColombian
	SpecialtyEthiopian
)

const (
	TemperatureCold = 0
	TemperatureHot  = 1
)

var knownFeatures = []Feature{
	FeatureSweetness,
	FeatureMilkAmount,
	FeatureCoffeeStrength,
	FeatureFlavors,
	FeatureSpecialty,
	FeatureTemperature,
}

func KnownFeatures() []Feature {
	return append([]Feature{}, knownFeatures...)
}

func IsKnownFeature(f Feature) bool {
	for _, known := range knownFeatures {
		if known == f {
			return true
		}
	}

	return false
}

// Vector holds categorical feature codes of a drink or of an encoded set of quiz answers.
type Vector struct {
	Sweetness      int `json:"sweetness" yaml:"sweetness"`
	MilkAmount     int `json:"milk_amount" yaml:"milk_amount"`
	CoffeeStrength int `json:"coffee_strength" yaml:"coffee_strength"`
	Flavors        int `json:"flavors" yaml:"flavors"`
	Specialty      int `json:"specialty" yaml:"specialty"`
	Temperature    int `json:"temperature" yaml:"temperature"`
}

// Value returns the code of the feature, unknown features read as 0.
func (v Vector) Value(f Feature) int {
	switch f {
	case FeatureSweetness:
		return v.Sweetness
	case FeatureMilkAmount:
		return v.MilkAmount
	case FeatureCoffeeStrength:
		return v.CoffeeStrength
	case FeatureFlavors:
		return v.Flavors
	case FeatureSpecialty:
		return v.Specialty
	case FeatureTemperature:
		return v.Temperature
	default:
		return 0
	}
}

func (v Vector) String() string {
	return fmt.Sprintf(
		"{sweetness:%d milk:%d strength:%d flavors:%d specialty:%d temperature:%d}",
		v.Sweetness,
		v.MilkAmount,
		v.CoffeeStrength,
		v.Flavors,
		v.Specialty,
		v.Temperature,
	)
}

type Item struct {
	Name string `json:"name" yaml:"name"`
	Vector
}

func (i Item) IsCold() bool {
	return i.Temperature == TemperatureCold
}

func (i Item) String() string {
	temp := "hot"
	if i.IsCold() {
		temp = "cold"
	}

	return fmt.Sprintf("%s (%s)", i.Name, temp)
}
