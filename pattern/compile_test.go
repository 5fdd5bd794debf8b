package pattern_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pkt.systems/recfmt/pattern"
)

func TestNewRejectsBadTemplates(t *testing.T) {
	cases := []struct {
		tmpl   string
		reason string
		token  string
		pos    int
	}{
		{"{date} {nope}", "unknown field", "nope", 7},
		{"x{}", "empty field", "{}", 1},
		{"{date!}", "malformed field", "!", 0},
		{"{Date}", "malformed field", "D", 0},
		{"{date", "unterminated field", "{", 0},
		{"{", "unterminated field", "{", 0},
		{"a}b", "unexpected", "}", 1},
		{"{^{level}", "unterminated styled span", "{^", 0},
		{"{^", "unterminated styled span", "{^", 0},
		{"{^a{^b}}", "nested styled span", "{^", 3},
		{"{^a} {^b}", "second styled span", "{^", 5},
	}

	for _, tc := range cases {
		t.Run(tc.tmpl, func(t *testing.T) {
			f, err := pattern.New(tc.tmpl)
			require.Error(t, err)
			require.Nil(t, f)

			var ce *pattern.CompileError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tc.reason, ce.Reason)
			assert.Equal(t, tc.token, ce.Token)
			assert.Equal(t, tc.pos, ce.Pos)
		})
	}
}

func TestNewCompilesValidTemplates(t *testing.T) {
	templates := []string{
		"",
		"plain text",
		"{{",
		"}}",
		"{{}}",
		"{level}",
		"{^{level}}",
		"{^[{level_short}] {payload}}",
		"[{date} {time}.{millisecond}] [{level}] {payload}{eol}",
		"100%{{escaped}}",
	}
	for _, name := range pattern.FieldNames() {
		templates = append(templates, "{"+name+"}")
	}

	for _, tmpl := range templates {
		f, err := pattern.New(tmpl)
		require.NoErrorf(t, err, "template %q", tmpl)
		require.NotNil(t, f)
	}
}

func TestCompileErrorMessage(t *testing.T) {
	withToken := &pattern.CompileError{Reason: "unknown field", Token: "nope", Pos: 7}
	assert.Equal(t, `pattern: unknown field "nope" at offset 7`, withToken.Error())

	withoutToken := &pattern.CompileError{Reason: "unterminated styled span", Pos: 3}
	assert.Equal(t, "pattern: unterminated styled span at offset 3", withoutToken.Error())
}

func TestMustPanicsOnBadTemplate(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		err, ok := r.(error)
		require.True(t, ok, "panic value should be an error, got %T", r)
		var ce *pattern.CompileError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "unknown field", ce.Reason)
	}()
	pattern.Must("{nope}")
}

func TestFieldNames(t *testing.T) {
	names := pattern.FieldNames()
	assert.Len(t, names, 36)
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, "payload")
	assert.Contains(t, names, "unix_timestamp")
	assert.Contains(t, names, "weekday_name_full")
}
