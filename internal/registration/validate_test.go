package registration

import (
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func janeDoe() Draft {
	return Draft{
		FirstName: "Jane",
		LastName:  "Doe",
		Age:       "30",
		Email:     "jane@doe.com",
		Phone:     "1234567890",
	}
}

func TestValidate_AllValid(t *testing.T) {
	assert.Empty(t, Validate(janeDoe()))
}

func TestValidate_EmptyDraftFailsEveryField(t *testing.T) {
	got := Validate(Draft{})
	want := ErrorMap{
		FirstName: MsgFirstName,
		LastName:  MsgLastName,
		Age:       MsgAge,
		Email:     MsgEmail,
		Phone:     MsgPhone,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("error map mismatch (-want +got):\n%s", diff)
	}
}

func TestValidate_FieldRules(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		value string
		ok    bool
	}{
		{"first name blank", FirstName, "", false},
		{"first name whitespace", FirstName, "   \t", false},
		{"first name padded", FirstName, "  Jane ", true},
		{"last name blank", LastName, "", false},
		{"last name whitespace", LastName, "\n", false},

		{"age missing", Age, "", false},
		{"age zero", Age, "0", false},
		{"age negative", Age, "-5", false},
		{"age one", Age, "1", true},
		{"age decimal", Age, "30.5", true},
		{"age padded", Age, " 30 ", true},
		{"age words", Age, "thirty", false},
		{"age blank", Age, "   ", false},
		{"age nan", Age, "NaN", false},
		{"age inf", Age, "Inf", false},
		{"age tiny positive", Age, "0.001", true},
		{"age exponent", Age, "3e1", true},
		{"age leading dot", Age, ".5", true},
		{"age underscore", Age, "1_0", false},
		{"age hex float", Age, "0x1p4", false},
		{"age hex", Age, "0x1A", false},
		{"age infinity word", Age, "Infinity", false},
		{"age overflow", Age, "1e400", false},

		{"email plain", Email, "jane@doe.com", true},
		{"email subdomain", Email, "j@mail.doe.co.uk", true},
		{"email no tld", Email, "jane@doe", false},
		{"email no local", Email, "@doe.com", false},
		{"email space", Email, "ja ne@doe.com", false},
		{"email two ats", Email, "a@b@c.d", false},
		{"email empty", Email, "", false},
		{"email trailing dot", Email, "jane@doe.", false},
		{"email nbsp", Email, "jane\u00a0doe@x.com", false},
		{"email em space", Email, "jane@doe\u2003x.com", false},
		{"email line separator", Email, "jane\u2028@doe.com", false},
		{"email vertical tab", Email, "jane@doe.c\vom", false},
		{"email bom", Email, "\ufeffjane@doe.com", false},
		{"email unicode letters", Email, "jürgen@bücher.de", true},

		{"phone ten digits", Phone, "1234567890", true},
		{"phone nine digits", Phone, "123456789", false},
		{"phone eleven digits", Phone, "12345678901", false},
		{"phone dashes", Phone, "123-456-7890", false},
		{"phone padded", Phone, " 1234567890", false},
		{"phone letters", Phone, "12345abcde", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := janeDoe()
			if err := d.set(tt.field, tt.value); err != nil {
				t.Fatalf("set: %v", err)
			}

			errs := Validate(d)
			if tt.ok {
				assert.Empty(t, errs)
				return
			}
			assert.Len(t, errs, 1)
			assert.Contains(t, errs, tt.field)
		})
	}
}

// invalidValues holds at least one failing value per field.
var invalidValues = map[Field][]string{
	FirstName: {"", " ", "\t\n"},
	LastName:  {"", "  "},
	Age:       {"", "0", "-5", "abc", "NaN", "-0.5", "1_0", "0x1p4"},
	Email:     {"", "jane", "jane@doe", "jane doe@x.com", "@x.y", "jane\u00a0doe@x.com"},
	Phone:     {"", "123456789", "12345678901", "(123)456789", "abcdefghij"},
}

var messages = map[Field]string{
	FirstName: MsgFirstName,
	LastName:  MsgLastName,
	Age:       MsgAge,
	Email:     MsgEmail,
	Phone:     MsgPhone,
}

func validDraftGen() *rapid.Generator[Draft] {
	return rapid.Custom(func(t *rapid.T) Draft {
		return Draft{
			FirstName: rapid.StringMatching(`[A-Za-z][A-Za-z' -]{0,15}`).Draw(t, "first"),
			LastName:  rapid.StringMatching(`[A-Za-z][A-Za-z' -]{0,15}`).Draw(t, "last"),
			Age:       strconv.Itoa(rapid.IntRange(1, 130).Draw(t, "age")),
			Email:     rapid.StringMatching(`[a-z0-9._]{1,10}@[a-z0-9-]{1,10}\.[a-z]{2,6}`).Draw(t, "email"),
			Phone:     rapid.StringMatching(`[0-9]{10}`).Draw(t, "phone"),
		}
	})
}

func TestValidate_PropertyValidDraftsPass(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := validDraftGen().Draw(rt, "draft")
		if errs := Validate(d); !errs.Empty() {
			rt.Fatalf("valid draft %+v rejected: %v", d, errs)
		}
	})
}

func TestValidate_PropertySingleInvalidField(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := validDraftGen().Draw(rt, "draft")
		f := rapid.SampledFrom(Fields).Draw(rt, "field")
		bad := rapid.SampledFrom(invalidValues[f]).Draw(rt, "bad")
		if err := d.set(f, bad); err != nil {
			rt.Fatalf("set: %v", err)
		}

		got := Validate(d)
		want := ErrorMap{f: messages[f]}
		if diff := cmp.Diff(want, got); diff != "" {
			rt.Fatalf("error map mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestValidate_PropertyIdempotent(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		d := Draft{
			FirstName: rapid.String().Draw(rt, "first"),
			LastName:  rapid.String().Draw(rt, "last"),
			Age:       rapid.String().Draw(rt, "age"),
			Email:     rapid.String().Draw(rt, "email"),
			Phone:     rapid.String().Draw(rt, "phone"),
		}
		first := Validate(d)
		second := Validate(d)
		if diff := cmp.Diff(first, second); diff != "" {
			rt.Fatalf("validate not idempotent:\n%s", diff)
		}
	})
}

func TestErrorMap_Strings(t *testing.T) {
	m := ErrorMap{Age: MsgAge}
	assert.Equal(t, map[string]string{"age": MsgAge}, m.Strings())
}
