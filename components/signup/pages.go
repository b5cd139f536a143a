package signup

import (
	"errors"
	"net/http"

	"github.com/yanizio/userform/internal/form"
	"github.com/yanizio/userform/internal/logger"
	"github.com/yanizio/userform/internal/metrics"
	"github.com/yanizio/userform/internal/registration"
	"github.com/yanizio/userform/internal/session"
	"github.com/yanizio/userform/internal/view"
)

// pageState is what the home template needs from one form.
type pageState struct {
	draft     registration.Draft
	errors    registration.ErrorMap
	submitted []registration.Record
}

func snapshot(s *session.Session) pageState {
	var ps pageState
	s.Do(func(f *registration.Form) {
		ps = pageState{draft: f.Draft(), errors: f.Errors(), submitted: f.Submitted()}
	})
	return ps
}

// current is snapshot for read-only handlers.  A visitor without a live
// session sees an empty form and no session is created.
func (c *Component) current(r *http.Request) pageState {
	if s, ok := c.sessions.Peek(r); ok {
		return snapshot(s)
	}
	return pageState{}
}

/*──────────────────────────── Handlers ─────────────────────────────────────*/

func (c *Component) handlePage(w http.ResponseWriter, r *http.Request) {
	c.render(w, r, http.StatusOK, c.current(r), "")
}

func (c *Component) handleSubmit(w http.ResponseWriter, r *http.Request) {
	s := c.sessions.Load(w, r)
	log := logger.FromContext(r.Context())

	var (
		rec   registration.Record
		err   error
		count int
	)
	s.Do(func(f *registration.Form) {
		rec, err = form.HandleSubmit(r, c.csrf, f)
		count = f.SubmittedCount()
	})

	var ve *form.ValidationError
	switch {
	case err == nil:
		metrics.ObserveSubmit(nil)
		log.Infow("registration accepted", "session", s.ID, "entry", count, "email", rec.Email)
		http.Redirect(w, r, "/", http.StatusSeeOther)

	case errors.As(err, &ve) && ve.Form != "":
		// Echo the posted values; the stored draft is untouched.
		log.Infow("submit refused", "session", s.ID, "form", ve.Form)
		ps := snapshot(s)
		ps.draft = postedDraft(r, ps.draft)
		c.render(w, r, http.StatusForbidden, ps, ve.Form)

	case ve != nil:
		metrics.ObserveSubmit(fieldNames(ve.Fields))
		log.Infow("registration rejected", "session", s.ID, "fields", fieldNames(ve.Fields))
		c.render(w, r, http.StatusUnprocessableEntity, snapshot(s), "")

	default:
		log.Errorw("submit failed", "session", s.ID, "err", err)
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
	}
}

func (c *Component) handleReset(w http.ResponseWriter, r *http.Request) {
	s := c.sessions.Load(w, r)
	if err := r.ParseForm(); err != nil || !c.csrf.Verify(r.PostForm.Get(form.CSRFField)) {
		c.render(w, r, http.StatusForbidden, snapshot(s), form.MsgBadToken)
		return
	}
	s.Do(func(f *registration.Form) { f.Reset() })
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

/*──────────────────────────── Helpers ──────────────────────────────────────*/

func (c *Component) render(w http.ResponseWriter, r *http.Request, status int, ps pageState, formErr string) {
	log := logger.FromContext(r.Context())

	tok, err := c.csrf.Token()
	if err != nil {
		log.Errorw("csrf token", "err", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":     c.def.Title,
		"FormError": formErr,
		"CSRFToken": tok,
		"Submitted": ps.submitted,
		"Form": form.RenderForm(c.def, form.RenderOptions{
			Values:    ps.draft.Values(),
			Errors:    ps.errors.Strings(),
			CSRFToken: tok,
		}),
	}
	if err := view.Render(w, status, "home", data); err != nil {
		log.Errorw("render error", "err", err)
		http.Error(w, "template error", http.StatusInternalServerError)
	}
}

// postedDraft overlays the parsed POST values on d.
func postedDraft(r *http.Request, d registration.Draft) registration.Draft {
	for _, f := range registration.Fields {
		if vals := r.PostForm[string(f)]; len(vals) > 0 {
			d = d.With(f, vals[0])
		}
	}
	return d
}

// fieldNames lists failing fields in display order.
func fieldNames(m registration.ErrorMap) []string {
	out := make([]string, 0, len(m))
	for _, f := range registration.Fields {
		if _, bad := m[f]; bad {
			out = append(out, string(f))
		}
	}
	return out
}
