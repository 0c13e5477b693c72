package recommend

import (
	"io"
	"os"

	"coffeeQuizBot/pkg/catalog"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type profilesFile struct {
	Profiles []profileEntry `yaml:"profiles"`
}

// profileEntry starts from a built-in profile and overrides whatever fields are set.
type profileEntry struct {
	Name            string              `yaml:"name"`
	Description     string              `yaml:"description"`
	Base            string              `yaml:"base"`
	Catalog         string              `yaml:"catalog"`
	Features        []catalog.Feature   `yaml:"features"`
	Weights         Weights             `yaml:"weights"`
	Policy          string              `yaml:"policy"`
	ConfidenceScale float64             `yaml:"confidence_scale"`
	ShortlistSize   int                 `yaml:"shortlist_size"`
	Questionnaire   *questionnaireEntry `yaml:"questionnaire"`
}

type questionnaireEntry struct {
	Keys            map[catalog.Feature]string `yaml:"keys"`
	YesToken        string                     `yaml:"yes"`
	NoToken         string                     `yaml:"no"`
	RegularToken    string                     `yaml:"regular"`
	SpecialtyTokens map[string]int             `yaml:"specialty"`
}

func LoadProfilesFile(path string) ([]Profile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open profiles file %q", path)
	}
	defer f.Close()

	profiles, err := ParseProfiles(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read profiles from %q", path)
	}

	return profiles, nil
}

func ParseProfiles(r io.Reader) ([]Profile, error) {
	var file profilesFile
	err := yaml.NewDecoder(r).Decode(&file)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to decode profiles yaml")
	}

	builtins := map[string]Profile{}
	for _, p := range BuiltinProfiles() {
		builtins[p.Name] = p
	}

	profiles := make([]Profile, 0, len(file.Profiles))
	for i := range file.Profiles {
		p, err := file.Profiles[i].toProfile(builtins)
		if err != nil {
			return nil, err
		}

		validationErr := p.Validate()
		if validationErr.HasErrors() {
			return nil, validationErr
		}

		profiles = append(profiles, p)
	}

	return profiles, nil
}

func (s profileEntry) toProfile(builtins map[string]Profile) (Profile, error) {
	if s.Name == "" {
		return Profile{}, errors.New("profile name cannot be empty")
	}

	baseName := s.Base
	if baseName == "" {
		baseName = s.Catalog
	}
	if baseName == "" {
		baseName = ProfileClassic
	}

	base, ok := builtins[baseName]
	if !ok {
		return Profile{}, errors.Errorf("profile %q: unknown base profile %q", s.Name, baseName)
	}

	p := base.Clone()
	p.Name = s.Name
	p.Description = s.Description

	if s.Catalog != "" {
		c, ok := catalog.Builtin(s.Catalog)
		if !ok {
			return Profile{}, errors.Errorf("profile %q: unknown catalog %q", s.Name, s.Catalog)
		}
		p.Catalog = c
		if len(s.Features) == 0 {
			p.Features = c.Features()
		}
	}

	if len(s.Features) > 0 {
		p.Features = append([]catalog.Feature{}, s.Features...)
	}

	if len(s.Weights) > 0 {
		for f, weight := range s.Weights {
			p.Weights[f] = weight
		}
	}

	if s.Policy != "" {
		policy, ok := PolicyByName(s.Policy)
		if !ok {
			return Profile{}, errors.Errorf("profile %q: unknown policy %q, expected one of %v", s.Name, s.Policy, PolicyNames())
		}
		p.Policy = policy
	}

	switch {
	case s.ConfidenceScale > 0:
		p.ConfidenceScale = s.ConfidenceScale
	case len(s.Weights) > 0 || len(s.Features) > 0:
		// the pinned scale of the base only holds for the base weights
		p.ConfidenceScale = DeriveConfidenceScale(p.Features, p.Weights)
	}

	if s.ShortlistSize > 0 {
		p.ShortlistSize = s.ShortlistSize
	}

	if s.Questionnaire != nil {
		s.Questionnaire.applyTo(&p.Questionnaire)
	}

	return p, nil
}

func (qs *questionnaireEntry) applyTo(q *Questionnaire) {
	for f, key := range qs.Keys {
		q.Keys[f] = key
	}

	if qs.YesToken != "" {
		q.YesToken = qs.YesToken
	}
	if qs.NoToken != "" {
		q.NoToken = qs.NoToken
	}
	if qs.RegularToken != "" {
		q.RegularToken = qs.RegularToken
	}

	if len(qs.SpecialtyTokens) > 0 {
		q.SpecialtyTokens = make(map[string]int, len(qs.SpecialtyTokens))
		for token, code := range qs.SpecialtyTokens {
			q.SpecialtyTokens[token] = code
		}
	}
}
