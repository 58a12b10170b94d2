package theme

import "fmt"

// Registry maps theme ids to registered themes. It is populated once during
// startup and read-only afterwards, so lookups need no synchronization.
type Registry struct {
	defaultID string
	order     []string
	themes    map[string]Theme
}

func NewRegistry(defaultID string) *Registry {
	return &Registry{
		defaultID: defaultID,
		themes:    make(map[string]Theme),
	}
}

func (r *Registry) Register(t Theme) error {
	if err := t.validate(); err != nil {
		return err
	}
	if _, exists := r.themes[t.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateID, t.ID)
	}
	r.themes[t.ID] = t
	r.order = append(r.order, t.ID)
	return nil
}

// GetByID resolves a theme id. Unknown or empty ids resolve to the default
// theme, never to a missing value.
func (r *Registry) GetByID(id string) Theme {
	if t, ok := r.themes[id]; ok {
		return t
	}
	return r.Default()
}

func (r *Registry) Default() Theme {
	return r.themes[r.defaultID]
}

// GetAll returns every registered theme in registration order.
func (r *Registry) GetAll() []Theme {
	all := make([]Theme, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.themes[id])
	}
	return all
}
