// internal/registration/validate.go
//
// Registration – field validation.
//
// Context
//   Validate is a pure, total function from a Draft to an ErrorMap.  Each
//   of the five rules runs on every call; there is no short-circuit and no
//   rule looks at more than one field.  Messages are user-facing and fixed.
//
// Notes
//   •  Age accepts any finite positive decimal ("30.5" passes).  Surrounding
//      whitespace is tolerated.  Hex, underscores, NaN, and infinities fail.
//   •  RE2's \s is ASCII only, so the email class also excludes vertical tab,
//      Unicode space separators, line/paragraph separators, and the BOM.
//   •  \d is ASCII digits only.
//
//------------------------------------------------------------------------------

package registration

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// User-facing messages, one per field.
const (
	MsgFirstName = "First Name is required"
	MsgLastName  = "Last Name is required"
	MsgAge       = "Valid age is required"
	MsgEmail     = "Enter a valid email"
	MsgPhone     = "Phone must be 10 digits"
)

// emailPart is one character that is neither whitespace nor "@".
const emailPart = `[^\s\v\p{Zs}\x{2028}\x{2029}\x{FEFF}@]`

var (
	emailRe = regexp.MustCompile(
		`^` + emailPart + `+@` + emailPart + `+\.` + emailPart + `+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
	ageRe   = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)
)

// ErrorMap maps a failing field to its message.  A missing key means the
// field passed.
type ErrorMap map[Field]string

// Empty reports whether no field failed.
func (m ErrorMap) Empty() bool { return len(m) == 0 }

// Strings re-keys the map by plain field name for templates and JSON.
func (m ErrorMap) Strings() map[string]string {
	out := make(map[string]string, len(m))
	for f, msg := range m {
		out[string(f)] = msg
	}
	return out
}

// Validate checks all five fields of d and returns the failures.
func Validate(d Draft) ErrorMap {
	errs := ErrorMap{}

	if strings.TrimSpace(d.FirstName) == "" {
		errs[FirstName] = MsgFirstName
	}
	if strings.TrimSpace(d.LastName) == "" {
		errs[LastName] = MsgLastName
	}
	if !validAge(d.Age) {
		errs[Age] = MsgAge
	}
	if !emailRe.MatchString(d.Email) {
		errs[Email] = MsgEmail
	}
	if !phoneRe.MatchString(d.Phone) {
		errs[Phone] = MsgPhone
	}

	return errs
}

func validAge(raw string) bool {
	s := strings.TrimSpace(raw)
	if !ageRe.MatchString(s) {
		return false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return false
	}
	return n > 0
}
