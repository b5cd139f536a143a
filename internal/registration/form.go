// internal/registration/form.go
//
// Registration – form state holder.
//
// Context
//   Form owns one Draft, the ErrorMap from the latest submit attempt, and
//   the Sink of accepted records.  Presentation layers forward edits via
//   UpdateField and trigger Submit; they read state back through the
//   accessors, which hand out copies.
//
//   Form is not safe for concurrent use.  Callers serialise events, the
//   way a single page view processes one user action at a time.
//
//------------------------------------------------------------------------------

package registration

// Form is the state holder for one page view.
type Form struct {
	draft  Draft
	errors ErrorMap
	sink   Sink
}

// NewForm returns a Form with an empty draft, no errors, and no records.
func NewForm() *Form {
	return &Form{errors: ErrorMap{}}
}

// UpdateField sets one draft value.  It never validates.  The only failure is
// ErrUnknownField, which leaves the draft untouched.
func (f *Form) UpdateField(name Field, value string) error {
	return f.draft.set(name, value)
}

// Reset empties the draft and clears errors.  Accepted records are kept.
func (f *Form) Reset() {
	f.draft = Draft{}
	f.errors = ErrorMap{}
}

// Submit validates the current draft.  When it passes, a snapshot is appended
// to the sink, the form is reset, and ok is true.  Otherwise the errors are
// stored and the draft is retained unchanged.
func (f *Form) Submit() (rec Record, ok bool) {
	errs := Validate(f.draft)
	if !errs.Empty() {
		f.errors = errs
		return Record{}, false
	}

	rec = Record(f.draft)
	f.sink.Append(rec)
	f.Reset()
	return rec, true
}

// Draft returns the current draft by value.
func (f *Form) Draft() Draft { return f.draft }

// Errors returns a copy of the current error map.
func (f *Form) Errors() ErrorMap {
	out := make(ErrorMap, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Submitted returns the accepted records in submission order.
func (f *Form) Submitted() []Record { return f.sink.All() }

// SubmittedCount reports how many records were accepted.
func (f *Form) SubmittedCount() int { return f.sink.Len() }
