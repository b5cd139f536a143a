package view

import (
	"html/template"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type card struct{ FirstName, LastName, Age, Email, Phone string }

func homeData() map[string]any {
	return map[string]any{
		"Title":     "User Registration Form",
		"Form":      template.HTML(`<form id="f"></form>`),
		"CSRFToken": "tok",
		"Submitted": []card{
			{"Ada", "Lovelace", "36", "ada@x.io", "1111111111"},
			{"Grace", "Hopper", "85", "grace@x.io", "2222222222"},
		},
	}
}

func TestRenderToString_Home(t *testing.T) {
	out, err := RenderToString("home", homeData())
	require.NoError(t, err)

	s := string(out)
	assert.Contains(t, s, "<title>User Registration Form</title>")
	assert.Contains(t, s, `<form id="f"></form>`, "form markup is not re-escaped")
	assert.Contains(t, s, "User #1")
	assert.Contains(t, s, "User #2")
	assert.Contains(t, s, "Grace")
}

func TestRenderToString_NoCardsWhenEmpty(t *testing.T) {
	data := homeData()
	data["Submitted"] = []card{}

	out, err := RenderToString("home", data)
	require.NoError(t, err)
	assert.NotContains(t, string(out), `class="users"`)
}

func TestRender_Status(t *testing.T) {
	rr := httptest.NewRecorder()
	require.NoError(t, Render(rr, http.StatusUnprocessableEntity, "home", homeData()))

	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
}

func TestRenderToString_UnknownPage(t *testing.T) {
	_, err := RenderToString("missing", nil)
	assert.Error(t, err)
}
