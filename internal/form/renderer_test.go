package form

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yanizio/userform/internal/registration"
)

func TestRenderForm_FieldsInOrder(t *testing.T) {
	out := string(RenderForm(Default(), RenderOptions{CSRFToken: "tok"}))

	last := -1
	for _, f := range registration.Fields {
		i := strings.Index(out, `id="fld-`+string(f)+`"`)
		assert.Greater(t, i, last, "field %s out of order", f)
		last = i
	}
	assert.Contains(t, out, `name="csrf_token" value="tok"`)
	assert.Contains(t, out, `action="/submit"`)
	assert.Contains(t, out, `type="tel"`)
	assert.NotContains(t, out, `class="error"`)
}

func TestRenderForm_EchoesValuesAndErrors(t *testing.T) {
	out := string(RenderForm(Default(), RenderOptions{
		Values: map[string]string{"firstName": `<script>"x"`, "age": "abc"},
		Errors: map[string]string{"age": registration.MsgAge},
	}))

	assert.Contains(t, out, `value="&lt;script&gt;&#34;x&#34;"`)
	assert.Contains(t, out, `value="abc"`)
	assert.Contains(t, out, `<p class="error">Valid age is required</p>`)
	assert.Equal(t, 1, strings.Count(out, `aria-invalid="true"`))
}
