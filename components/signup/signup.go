// components/signup/signup.go
//
// Signup component – the registration form over HTTP.
//
// Context
//   Each visitor owns one registration.Form held in the session store.
//   The HTML routes implement the classic post/redirect/get cycle; the JSON
//   routes expose the same operations for scripted clients.  Every access
//   to a visitor's form goes through session.Do, so requests from one
//   visitor are applied one at a time.
//
// Routes
//   GET  /                   page: form, inline errors, submitted cards
//   POST /submit             validate and append, or re-render with errors
//   POST /reset              clear draft and errors
//   GET  /api/state          {draft, errors, submitted}
//   PUT  /api/field/{name}   {"value": "..."} → UpdateField
//   POST /api/submit         201 + record, or 422 + errors
//   POST /api/reset          204
//
//------------------------------------------------------------------------------

package signup

import (
	"errors"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/yanizio/userform/internal/component"
	"github.com/yanizio/userform/internal/form"
	"github.com/yanizio/userform/internal/session"
)

// Compile-time assertion: *Component satisfies component.Component.
var _ component.Component = (*Component)(nil)

// Component serves the registration form.
type Component struct {
	sessions *session.Store
	csrf     *form.Signer
	def      *form.FormDef
	log      *zap.SugaredLogger
}

/*────────────────── component.Component methods ───────────────────────────*/

// Name returns the canonical component key.
func (c *Component) Name() string { return "signup" }

// Init captures the shared resources.
func (c *Component) Init(d component.Deps) error {
	if d.Sessions == nil || d.CSRF == nil {
		return errors.New("signup: sessions and csrf signer are required")
	}
	c.sessions = d.Sessions
	c.csrf = d.CSRF
	c.def = d.Form
	if c.def == nil {
		c.def = form.Default()
	}
	c.log = d.Log
	if c.log == nil {
		c.log = zap.S()
	}
	return nil
}

// Routes adds page and API endpoints to r.
func (c *Component) Routes(r chi.Router) {
	r.Get("/", c.handlePage)
	r.Post("/submit", c.handleSubmit)
	r.Post("/reset", c.handleReset)

	r.Route("/api", func(api chi.Router) {
		api.Get("/state", c.apiState)
		api.Group(func(w chi.Router) {
			w.Use(requireJSON)
			w.Put("/field/{name}", c.apiUpdateField)
			w.Post("/submit", c.apiSubmit)
			w.Post("/reset", c.apiReset)
		})
	})
}

// Register component at program start.
func init() { component.Register(&Component{}) }
