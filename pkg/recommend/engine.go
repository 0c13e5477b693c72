package recommend

import (
	"coffeeQuizBot/pkg/catalog"
)

const DefaultShortlistSize = 5

type Result struct {
	Prediction string            `json:"prediction"`
	Item       catalog.Item      `json:"item"`
	Distance   float64           `json:"distance"`
	Confidence float64           `json:"confidence"`
	Shortlist  []ScoredCandidate `json:"shortlist"`
	Answer     catalog.Vector    `json:"answer"`
	Profile    string            `json:"profile"`
	Policy     string            `json:"policy"`
}

// Engine scores a profile's catalog against encoded answers.
// It keeps no state between calls and is safe for concurrent use.
type Engine struct {
	profile Profile
	encoder Encoder
	items   []catalog.Item
}

func NewEngine(p Profile) (*Engine, error) {
	validationErr := p.Validate()
	if validationErr.HasErrors() {
		return nil, validationErr
	}

	return &Engine{
		profile: p.Clone(),
		encoder: NewEncoder(p.Questionnaire),
		items:   p.Catalog.All(),
	}, nil
}

func (e *Engine) Profile() Profile {
	return e.profile.Clone()
}

func (e *Engine) Encode(answers Answers) catalog.Vector {
	return e.encoder.Encode(answers)
}

func (e *Engine) Rank(answer catalog.Vector) []ScoredCandidate {
	return Rank(e.profile.Features, e.profile.Weights, answer, e.items)
}

func (e *Engine) Recommend(answers Answers) Result {
	answer := e.Encode(answers)
	ranked := e.Rank(answer)

	// NewEngine refuses empty catalogs, so a candidate is always selected
	best, _ := e.profile.Policy.Select(ranked, answer)

	shortlistSize := e.profile.ShortlistSize
	if shortlistSize > len(ranked) {
		shortlistSize = len(ranked)
	}

	return Result{
		Prediction: best.Item.Name,
		Item:       best.Item,
		Distance:   best.Distance,
		Confidence: Confidence(best.Distance, e.profile.ConfidenceScale),
		Shortlist:  append([]ScoredCandidate{}, ranked[:shortlistSize]...),
		Answer:     answer,
		Profile:    e.profile.Name,
		Policy:     e.profile.Policy.Name(),
	}
}
