package recommend

import "coffeeQuizBot/pkg/catalog"

// DefaultConfidenceScale matches the largest distance observed in practice with DefaultWeights.
const DefaultConfidenceScale = 10.0

// Confidence decays linearly from 1 at distance 0 to 0 at distance >= scale.
// It is a display value, not a probability.
func Confidence(distance, scale float64) float64 {
	if scale <= 0 {
		scale = DefaultConfidenceScale
	}

	confidence := 1 - distance/scale
	if confidence < 0 {
		return 0
	}
	if confidence > 1 {
		return 1
	}

	return confidence
}

// DeriveConfidenceScale is the distance of an answer that misses every feature by one step.
func DeriveConfidenceScale(features []catalog.Feature, weights Weights) float64 {
	var scale float64
	for _, f := range features {
		scale += weights[f]
	}

	if scale <= 0 {
		return DefaultConfidenceScale
	}

	return scale
}
