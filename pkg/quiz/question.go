package quiz

import (
	"sort"

	"coffeeQuizBot/pkg/catalog"
	"coffeeQuizBot/pkg/recommend"
)

type Question struct {
	Key     string
	Feature catalog.Feature
	Prompt  string
	Options []string
}

func (q Question) Accepts(answer string) bool {
	for _, o := range q.Options {
		if o == answer {
			return true
		}
	}

	return false
}

func DefaultPrompts() map[string]string {
	return map[string]string{
		recommend.KeySweetness:      "هل تحب القهوة المحلاة؟",
		recommend.KeyMilkAmount:     "هل تفضل القهوة مع الحليب؟",
		recommend.KeyCoffeeStrength: "هل تحب القهوة القوية؟",
		recommend.KeyFlavors:        "هل تحب النكهات الإضافية مثل الفانيليا أو الكراميل؟",
		recommend.KeySpecialty:      "ما نوع البن المفضل لديك؟",
		recommend.KeyTemperature:    "هل تفضل مشروبك باردًا؟",
		recommend.KeyContainsCoffee: "هل تريد مشروبًا يحتوي على القهوة؟",
	}
}

// BuildQuestions asks one question per profile feature, in the profile's feature order.
func BuildQuestions(p recommend.Profile, prompts map[string]string) []Question {
	q := p.Questionnaire
	questions := make([]Question, 0, len(p.Features))

	for _, f := range p.Features {
		key := q.Key(f)
		if key == "" {
			continue
		}

		prompt, ok := prompts[key]
		if !ok {
			prompt = key
		}

		questions = append(questions, Question{
			Key:     key,
			Feature: f,
			Prompt:  prompt,
			Options: options(q, f),
		})
	}

	return questions
}

func options(q recommend.Questionnaire, f catalog.Feature) []string {
	if f != catalog.FeatureSpecialty {
		return []string{q.YesToken, q.NoToken}
	}

	res := []string{}
	if q.RegularToken != "" {
		res = append(res, q.RegularToken)
	}

	tokens := make([]string, 0, len(q.SpecialtyTokens))
	for token := range q.SpecialtyTokens {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		ci, cj := q.SpecialtyTokens[tokens[i]], q.SpecialtyTokens[tokens[j]]
		if ci != cj {
			return ci < cj
		}
		return tokens[i] < tokens[j]
	})

	return append(res, tokens...)
}

// MissingKeys lists the questions without an answer, in question order.
func MissingKeys(questions []Question, answers recommend.Answers) []string {
	var res []string
	for _, q := range questions {
		if answers.Get(q.Key) == "" {
			res = append(res, q.Key)
		}
	}

	return res
}
