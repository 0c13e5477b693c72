package recommend

import (
	"sort"

	"coffeeQuizBot/pkg/catalog"
)

const (
	PolicyNearest        = "nearest"
	PolicyMilkPreference = "milk-preference"
)

// SelectionPolicy picks the recommended candidate from an already ranked list.
type SelectionPolicy interface {
	Name() string
	Select(ranked []ScoredCandidate, answer catalog.Vector) (ScoredCandidate, bool)
}

type NearestPolicy struct{}

func (NearestPolicy) Name() string {
	return PolicyNearest
}

func (NearestPolicy) Select(ranked []ScoredCandidate, _ catalog.Vector) (ScoredCandidate, bool) {
	if len(ranked) == 0 {
		return ScoredCandidate{}, false
	}

	return ranked[0], true
}

// MilkPreferencePolicy re-selects the nearest drink whose milk flag matches the answer.
// The weighted distance alone does not always put a milk compatible drink first.
type MilkPreferencePolicy struct{}

func (MilkPreferencePolicy) Name() string {
	return PolicyMilkPreference
}

func (MilkPreferencePolicy) Select(ranked []ScoredCandidate, answer catalog.Vector) (ScoredCandidate, bool) {
	if len(ranked) == 0 {
		return ScoredCandidate{}, false
	}

	for _, candidate := range ranked {
		if candidate.Item.MilkAmount == answer.MilkAmount {
			return candidate, true
		}
	}

	return ranked[0], true
}

var policies = map[string]SelectionPolicy{
	PolicyNearest:        NearestPolicy{},
	PolicyMilkPreference: MilkPreferencePolicy{},
}

func PolicyByName(name string) (SelectionPolicy, bool) {
	p, ok := policies[name]

	return p, ok
}

func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
