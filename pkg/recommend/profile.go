package recommend

import (
	"coffeeQuizBot/pkg/catalog"
	"coffeeQuizBot/pkg/errs"
)

const (
	ProfileClassic        = "classic"
	ProfileClassicNearest = "classic-nearest"
	ProfileFlavored       = "flavored"
	ProfileMinimal        = "minimal"
)

// Profile is one complete engine configuration: catalog, feature set, weights and selection policy.
type Profile struct {
	Name            string
	Description     string
	Catalog         *catalog.Catalog
	Features        []catalog.Feature
	Weights         Weights
	Policy          SelectionPolicy
	ConfidenceScale float64
	ShortlistSize   int
	Questionnaire   Questionnaire
}

func (p Profile) Validate() *errs.Multi {
	e := errs.NewMulti()

	if p.Name == "" {
		e.Err("profile name cannot be empty")
	}

	if p.Catalog == nil || p.Catalog.Len() == 0 {
		e.Errf("profile %q: catalog cannot be empty", p.Name)
	}

	if len(p.Features) == 0 {
		e.Errf("profile %q: feature set cannot be empty", p.Name)
	}

	seen := map[catalog.Feature]bool{}
	for _, f := range p.Features {
		if !catalog.IsKnownFeature(f) {
			e.Errf("profile %q: unknown feature %q", p.Name, f)
			continue
		}

		if seen[f] {
			e.Errf("profile %q: duplicate feature %q", p.Name, f)
		}
		seen[f] = true

		weight, ok := p.Weights[f]
		if !ok {
			e.Errf("profile %q: no weight for feature %q", p.Name, f)
		} else if weight < 0 {
			e.Errf("profile %q: weight of %q cannot be negative", p.Name, f)
		}

		if p.Catalog != nil && !p.Catalog.HasFeature(f) {
			e.Errf("profile %q: catalog %q does not define feature %q", p.Name, p.Catalog.Name(), f)
		}

		if p.Questionnaire.Key(f) == "" {
			e.Errf("profile %q: no question key for feature %q", p.Name, f)
		}
	}

	if p.Policy == nil {
		e.Errf("profile %q: selection policy cannot be empty", p.Name)
	}

	if p.ConfidenceScale <= 0 {
		e.Errf("profile %q: confidence scale must be positive", p.Name)
	}

	if p.ShortlistSize <= 0 || p.ShortlistSize > DefaultShortlistSize {
		e.Errf("profile %q: shortlist size must be between 1 and %d", p.Name, DefaultShortlistSize)
	}

	if p.Questionnaire.YesToken == "" {
		e.Errf("profile %q: yes token cannot be empty", p.Name)
	}

	for token, code := range p.Questionnaire.SpecialtyTokens {
		if code < catalog.SpecialtyYemeni || code > catalog.SpecialtyEthiopian {
			e.Errf("profile %q: specialty token %q has unsupported code %d", p.Name, token, code)
		}
	}

	return e
}

func (p Profile) Clone() Profile {
	res := p
	res.Features = append([]catalog.Feature{}, p.Features...)
	res.Weights = p.Weights.Clone()
	res.Questionnaire = p.Questionnaire.Clone()

	return res
}

func BuiltinProfiles() []Profile {
	classic := catalog.Classic()
	flavored := catalog.Flavored()
	minimal := catalog.Minimal()

	minimalQuestionnaire := DefaultQuestionnaire()
	minimalQuestionnaire.Keys[catalog.FeatureCoffeeStrength] = KeyContainsCoffee
	delete(minimalQuestionnaire.Keys, catalog.FeatureFlavors)
	delete(minimalQuestionnaire.Keys, catalog.FeatureSpecialty)

	return []Profile{
		{
			Name:            ProfileClassic,
			Description:     "classic menu, nearest drink that matches the milk preference",
			Catalog:         classic,
			Features:        classic.Features(),
			Weights:         DefaultWeights(),
			Policy:          MilkPreferencePolicy{},
			ConfidenceScale: DefaultConfidenceScale,
			ShortlistSize:   DefaultShortlistSize,
			Questionnaire:   DefaultQuestionnaire(),
		},
		{
			Name:            ProfileClassicNearest,
			Description:     "classic menu, plain nearest drink",
			Catalog:         classic,
			Features:        classic.Features(),
			Weights:         DefaultWeights(),
			Policy:          NearestPolicy{},
			ConfidenceScale: DefaultConfidenceScale,
			ShortlistSize:   DefaultShortlistSize,
			Questionnaire:   DefaultQuestionnaire(),
		},
		{
			Name:            ProfileFlavored,
			Description:     "menu with flavored drinks, six questions",
			Catalog:         flavored,
			Features:        flavored.Features(),
			Weights:         DefaultWeights(),
			Policy:          NearestPolicy{},
			ConfidenceScale: DefaultConfidenceScale,
			ShortlistSize:   DefaultShortlistSize,
			Questionnaire:   DefaultQuestionnaire(),
		},
		{
			Name:            ProfileMinimal,
			Description:     "two drinks, asks whether coffee is wanted",
			Catalog:         minimal,
			Features:        minimal.Features(),
			Weights:         DefaultWeights(),
			Policy:          NearestPolicy{},
			ConfidenceScale: DefaultConfidenceScale,
			ShortlistSize:   DefaultShortlistSize,
			Questionnaire:   minimalQuestionnaire,
		},
	}
}
