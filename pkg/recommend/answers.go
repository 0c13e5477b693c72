package recommend

import (
	"coffeeQuizBot/pkg/catalog"
)

const (
	KeySweetness      = "sweetness-level"
	KeyMilkAmount     = "milk-amount"
	KeyCoffeeStrength = "coffee-strength"
	KeyFlavors        = "flavors"
	KeySpecialty      = "specialty"
	KeyTemperature    = "temperature"
	KeyContainsCoffee = "contains-coffee"

	TokenYes       = "نعم"
	TokenNo        = "لا"
	TokenRegular   = "عادي"
	TokenYemeni    = "يمني"
	TokenColombian = "كولومبي"
	TokenEthiopian = "إثيوبي"
)

// Answers maps a question key to the raw option value the user picked.
type Answers map[string]string

func (a Answers) Get(key string) string {
	if a == nil || key == "" {
		return ""
	}

	return a[key]
}

func (a Answers) Clone() Answers {
	res := make(Answers, len(a))
	for k, v := range a {
		res[k] = v
	}

	return res
}

// Questionnaire binds features to question keys and lists the raw tokens the encoder understands.
type Questionnaire struct {
	Keys            map[catalog.Feature]string `yaml:"keys" json:"keys"`
	YesToken        string                     `yaml:"yes" json:"yes"`
	NoToken         string                     `yaml:"no" json:"no"`
	RegularToken    string                     `yaml:"regular" json:"regular"`
	SpecialtyTokens map[string]int             `yaml:"specialty" json:"specialty"`
}

func DefaultQuestionnaire() Questionnaire {
	return Questionnaire{
		Keys: map[catalog.Feature]string{
			catalog.FeatureSweetness:      KeySweetness,
			catalog.FeatureMilkAmount:     KeyMilkAmount,
			catalog.FeatureCoffeeStrength: KeyCoffeeStrength,
			catalog.FeatureFlavors:        KeyFlavors,
			catalog.FeatureSpecialty:      KeySpecialty,
			catalog.FeatureTemperature:    KeyTemperature,
		},
		YesToken:     TokenYes,
		NoToken:      TokenNo,
		RegularToken: TokenRegular,
		SpecialtyTokens: map[string]int{
			TokenYemeni:    catalog.SpecialtyYemeni,
			TokenColombian: catalog.SpecialtyColombian,
			TokenEthiopian: catalog.SpecialtyEthiopian,
		},
	}
}

func (q Questionnaire) Key(f catalog.Feature) string {
	return q.Keys[f]
}

// IsCold tells whether the raw temperature answer asks for a cold drink.
func (q Questionnaire) IsCold(answers Answers) bool {
	return answers.Get(q.Key(catalog.FeatureTemperature)) == q.YesToken
}

func (q Questionnaire) Clone() Questionnaire {
	res := q
	res.Keys = make(map[catalog.Feature]string, len(q.Keys))
	for f, key := range q.Keys {
		res.Keys[f] = key
	}
	res.SpecialtyTokens = make(map[string]int, len(q.SpecialtyTokens))
	for token, code := range q.SpecialtyTokens {
		res.SpecialtyTokens[token] = code
	}

	return res
}

type Encoder struct {
	q Questionnaire
}

func NewEncoder(q Questionnaire) Encoder {
	return Encoder{q: q.Clone()}
}

// Encode never fails: absent or unknown values fall back to the "no" branch.
// Temperature is inverted, a "yes" (cold) answer encodes to 0 and anything else to 1.
func (e Encoder) Encode(answers Answers) catalog.Vector {
	return catalog.Vector{
		Sweetness:      e.binary(answers, catalog.FeatureSweetness),
		MilkAmount:     e.binary(answers, catalog.FeatureMilkAmount),
		CoffeeStrength: e.binary(answers, catalog.FeatureCoffeeStrength),
		Flavors:        e.binary(answers, catalog.FeatureFlavors),
		Specialty:      e.specialty(answers),
		Temperature:    e.temperature(answers),
	}
}

func (e Encoder) binary(answers Answers, f catalog.Feature) int {
	if e.q.YesToken != "" && answers.Get(e.q.Key(f)) == e.q.YesToken {
		return 1
	}

	return 0
}

func (e Encoder) specialty(answers Answers) int {
	code, ok := e.q.SpecialtyTokens[answers.Get(e.q.Key(catalog.FeatureSpecialty))]
	if !ok {
		return catalog.SpecialtyRegular
	}

	return code
}

func (e Encoder) temperature(answers Answers) int {
	if e.q.YesToken != "" && e.q.IsCold(answers) {
		return catalog.TemperatureCold
	}

	return catalog.TemperatureHot
}
