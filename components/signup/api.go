package signup

import (
	"encoding/json"
	"mime"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/yanizio/userform/internal/logger"
	"github.com/yanizio/userform/internal/metrics"
	"github.com/yanizio/userform/internal/registration"
)

// stateDTO is the JSON view of one visitor's form.
type stateDTO struct {
	Draft     registration.Draft    `json:"draft"`
	Errors    map[string]string     `json:"errors"`
	Submitted []registration.Record `json:"submitted"`
}

type fieldDTO struct {
	Value *string `json:"value"`
}

type errorDTO struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func toState(ps pageState) stateDTO {
	st := stateDTO{Draft: ps.draft, Errors: ps.errors.Strings(), Submitted: ps.submitted}
	if st.Submitted == nil {
		st.Submitted = []registration.Record{}
	}
	return st
}

/*──────────────────────────── Handlers ─────────────────────────────────────*/

func (c *Component) apiState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, toState(c.current(r)))
}

func (c *Component) apiUpdateField(w http.ResponseWriter, r *http.Request) {
	name, err := registration.ParseField(chi.URLParam(r, "name"))
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorDTO{Error: "unknown field"})
		return
	}

	var body fieldDTO
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<16))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&body); err != nil || body.Value == nil {
		writeJSON(w, http.StatusBadRequest, errorDTO{Error: `body must be {"value": "<text>"}`})
		return
	}

	s := c.sessions.Load(w, r)
	var ps pageState
	s.Do(func(f *registration.Form) {
		err = f.UpdateField(name, *body.Value)
		ps = pageState{draft: f.Draft(), errors: f.Errors(), submitted: f.Submitted()}
	})
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorDTO{Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, toState(ps))
}

func (c *Component) apiSubmit(w http.ResponseWriter, r *http.Request) {
	s := c.sessions.Load(w, r)

	var (
		rec  registration.Record
		ok   bool
		errs registration.ErrorMap
	)
	s.Do(func(f *registration.Form) {
		rec, ok = f.Submit()
		errs = f.Errors()
	})

	if !ok {
		metrics.ObserveSubmit(fieldNames(errs))
		writeJSON(w, http.StatusUnprocessableEntity, errorDTO{
			Error:  "validation failed",
			Fields: errs.Strings(),
		})
		return
	}

	metrics.ObserveSubmit(nil)
	logger.FromContext(r.Context()).Infow("registration accepted", "session", s.ID, "email", rec.Email, "via", "api")
	writeJSON(w, http.StatusCreated, rec)
}

func (c *Component) apiReset(w http.ResponseWriter, r *http.Request) {
	s := c.sessions.Load(w, r)
	s.Do(func(f *registration.Form) { f.Reset() })
	w.WriteHeader(http.StatusNoContent)
}

/*──────────────────────────── Helpers ──────────────────────────────────────*/

// requireJSON rejects state-changing API calls that are not JSON.  Browsers
// cannot send that content type cross-origin without a preflight, which
// keeps the cookie-authenticated API out of reach of plain HTML forms.
func requireJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mt != "application/json" {
			writeJSON(w, http.StatusUnsupportedMediaType, errorDTO{Error: "content type must be application/json"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
