// internal/component/registry.go
//
// Component registry (cycle-free).
//
// Each concrete component lives under components/<name> and calls
// component.Register() in an init() function.  At startup cmd/userform
// builds the shared Deps, calls Init on every registered component, and
// lets each one add its routes to the root router.

package component

import (
	"sort"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/userform/internal/form"
	"github.com/yanizio/userform/internal/session"
)

// Deps are the process-wide resources handed to components during Init.
type Deps struct {
	Sessions *session.Store
	CSRF     *form.Signer
	Form     *form.FormDef
	Log      *zap.SugaredLogger
}

// Component contract.
//
// Routes should add BOTH page and API endpoints to r, e.g:
//
//	r.Get("/", page)
//	r.Route("/api", func(api chi.Router) { ... })
//
// Init runs once, before Routes.
type Component interface {
	Name() string
	Init(Deps) error
	Routes(r chi.Router)
}

var (
	mu       sync.RWMutex
	registry = map[string]Component{}
)

// Register is invoked from component init() functions.  A later
// registration under the same name replaces the earlier one.
func Register(c Component) {
	mu.Lock()
	registry[c.Name()] = c
	mu.Unlock()
}

// All returns every registered component ordered by name.
func All() []Component {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Component, 0, len(registry))
	for _, c := range registry {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name() < out[j].Name() })
	return out
}

// Mount initialises every registered component with deps and adds its
// routes to r.  chi panics if two components claim the same pattern.
func Mount(r chi.Router, deps Deps) error {
	for _, c := range All() {
		if err := c.Init(deps); err != nil {
			return err
		}
		c.Routes(r)
		deps.Log.Infow("component mounted", "component", c.Name())
	}
	return nil
}
