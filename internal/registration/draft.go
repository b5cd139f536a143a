// internal/registration/draft.go
//
// Registration – draft record and field names.
//
// Context
//   A Draft holds the five in-progress text values of the registration
//   form.  Every value is kept as entered; coercion (e.g., age → number)
//   happens only inside Validate.  A Record is the same shape, captured at
//   the moment a draft passes validation.
//
//------------------------------------------------------------------------------

package registration

import "errors"

// Field names one of the five draft inputs.  The string value doubles as the
// form key used by every presentation layer.
type Field string

const (
	FirstName Field = "firstName"
	LastName  Field = "lastName"
	Age       Field = "age"
	Email     Field = "email"
	Phone     Field = "phone"
)

// Fields lists the draft inputs in display order.
var Fields = []Field{FirstName, LastName, Age, Email, Phone}

// ErrUnknownField is returned when a caller names a field outside Fields.
var ErrUnknownField = errors.New("registration: unknown field")

// ParseField maps a raw form key to a Field.
func ParseField(name string) (Field, error) {
	for _, f := range Fields {
		if string(f) == name {
			return f, nil
		}
	}
	return "", ErrUnknownField
}

// Draft is the mutable working value owned by Form.
type Draft struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Age       string `json:"age"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Record is an accepted draft.  Records are stored by value, so later draft
// edits never reach them.
type Record Draft

// Get returns the value of f, or "" for an unknown field.
func (d Draft) Get(f Field) string {
	switch f {
	case FirstName:
		return d.FirstName
	case LastName:
		return d.LastName
	case Age:
		return d.Age
	case Email:
		return d.Email
	case Phone:
		return d.Phone
	}
	return ""
}

func (d *Draft) set(f Field, v string) error {
	switch f {
	case FirstName:
		d.FirstName = v
	case LastName:
		d.LastName = v
	case Age:
		d.Age = v
	case Email:
		d.Email = v
	case Phone:
		d.Phone = v
	default:
		return ErrUnknownField
	}
	return nil
}

// With returns a copy of d with f set to v.  An unknown f leaves the copy
// unchanged.
func (d Draft) With(f Field, v string) Draft {
	_ = d.set(f, v)
	return d
}

// Values returns the draft keyed by field name, handy for prefilling inputs.
func (d Draft) Values() map[string]string {
	out := make(map[string]string, len(Fields))
	for _, f := range Fields {
		out[string(f)] = d.Get(f)
	}
	return out
}

// IsZero reports whether every field is empty.
func (d Draft) IsZero() bool { return d == Draft{} }
