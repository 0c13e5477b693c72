package recommend

import (
	"sort"

	"coffeeQuizBot/pkg/catalog"
)

type Weights map[catalog.Feature]float64

func DefaultWeights() Weights {
	return Weights{
		catalog.FeatureSweetness:      2,
		catalog.FeatureMilkAmount:     3,
		catalog.FeatureCoffeeStrength: 2,
		catalog.FeatureFlavors:        1,
		catalog.FeatureSpecialty:      2,
		catalog.FeatureTemperature:    2,
	}
}

func (w Weights) Clone() Weights {
	res := make(Weights, len(w))
	for f, weight := range w {
		res[f] = weight
	}

	return res
}

type ScoredCandidate struct {
	Item     catalog.Item `json:"item"`
	Distance float64      `json:"distance"`
}

// Distance is a weighted Manhattan distance: per feature |a-b| * weight, summed without squaring.
// Specialty is nominal, so its codes are compared the same way as the binary flags.
func Distance(features []catalog.Feature, weights Weights, a, b catalog.Vector) float64 {
	var distance float64
	for _, f := range features {
		diff := a.Value(f) - b.Value(f)
		if diff < 0 {
			diff = -diff
		}
		distance += float64(diff) * weights[f]
	}

	return distance
}

// Rank scores every item and orders the result by ascending distance, ties keep catalog order.
func Rank(features []catalog.Feature, weights Weights, answer catalog.Vector, items []catalog.Item) []ScoredCandidate {
	candidates := make([]ScoredCandidate, len(items))
	for i, item := range items {
		candidates[i] = ScoredCandidate{
			Item:     item,
			Distance: Distance(features, weights, answer, item.Vector),
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Distance < candidates[j].Distance
	})

	return candidates
}
