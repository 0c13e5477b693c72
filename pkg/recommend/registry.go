package recommend

import (
	"github.com/pkg/errors"
)

type Registry struct {
	engines        map[string]*Engine
	order          []string
	defaultProfile string
}

// NewRegistry builds an engine per profile, later profiles replace earlier ones with the same name.
func NewRegistry(defaultProfile string, profiles ...Profile) (*Registry, error) {
	r := &Registry{
		engines:        map[string]*Engine{},
		defaultProfile: defaultProfile,
	}

	for _, p := range profiles {
		engine, err := NewEngine(p)
		if err != nil {
			return nil, err
		}

		if _, exists := r.engines[p.Name]; !exists {
			r.order = append(r.order, p.Name)
		}
		r.engines[p.Name] = engine
	}

	if _, ok := r.engines[defaultProfile]; !ok {
		return nil, errors.Errorf("default profile %q is not registered", defaultProfile)
	}

	return r, nil
}

func (r *Registry) Get(name string) (*Engine, bool) {
	e, ok := r.engines[name]

	return e, ok
}

// Resolve falls back to the default engine for empty or unknown names.
func (r *Registry) Resolve(name string) *Engine {
	if e, ok := r.engines[name]; ok {
		return e
	}

	return r.engines[r.defaultProfile]
}

func (r *Registry) Default() *Engine {
	return r.engines[r.defaultProfile]
}

func (r *Registry) DefaultName() string {
	return r.defaultProfile
}

func (r *Registry) Names() []string {
	return append([]string{}, r.order...)
}
