// internal/form/submit.go
//
// userform – consolidated submit helper.
//
// Context
//   The HTML handler wants one call that parses the POST body, checks the
//   CSRF token, copies every posted field into the draft, and submits.
//   HandleSubmit does that.  A rejected draft comes back as a
//   ValidationError so handlers can tell user mistakes from system faults.
//
//------------------------------------------------------------------------------

package form

import (
	"fmt"
	"net/http"

	"github.com/yanizio/userform/internal/registration"
)

// CSRFField is the hidden input carrying the token.
const CSRFField = "csrf_token"

// MsgBadToken is shown when the CSRF token is missing, forged, or stale.
const MsgBadToken = "Security token invalid.  Please refresh and try again."

// ValidationError wraps a rejected submit.  Form holds form-level problems
// (currently only the CSRF check); Fields is the draft's error map.
type ValidationError struct {
	Form   string
	Fields registration.ErrorMap
}

func (ve *ValidationError) Error() string {
	if ve.Form != "" {
		return "form rejected: " + ve.Form
	}
	return fmt.Sprintf("form validation failed on %d field(s)", len(ve.Fields))
}

// HandleSubmit parses r, verifies its token with s, applies the posted
// values to f, and submits.  Fields absent from the POST keep their current
// draft value.  The caller must hold exclusive access to f.
func HandleSubmit(r *http.Request, s *Signer, f *registration.Form) (registration.Record, error) {
	if err := r.ParseForm(); err != nil {
		return registration.Record{}, fmt.Errorf("parse form: %w", err)
	}
	if !s.Verify(r.PostForm.Get(CSRFField)) {
		return registration.Record{}, &ValidationError{Form: MsgBadToken}
	}

	for _, name := range registration.Fields {
		vals, ok := r.PostForm[string(name)]
		if !ok || len(vals) == 0 {
			continue
		}
		if err := f.UpdateField(name, vals[0]); err != nil {
			return registration.Record{}, err
		}
	}

	rec, ok := f.Submit()
	if !ok {
		return registration.Record{}, &ValidationError{Fields: f.Errors()}
	}
	return rec, nil
}
