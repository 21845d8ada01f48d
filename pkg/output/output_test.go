package output

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vertti/edatcheck/pkg/check"
)

func TestFormatLabel(t *testing.T) {
	p := New(&bytes.Buffer{}, ColorNever)

	tests := []struct {
		input string
		want  string
	}{
		{"mac: AA-BB-CC-DD-EE-FF", "mac: AA-BB-CC-DD-EE-FF"},
		{"no colon here", "no colon here"},
		{"multiple: colons: here", "multiple: colons: here"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.formatLabel(tt.input))
	}
}

func TestFormatLabelWithColors(t *testing.T) {
	p := New(&bytes.Buffer{}, ColorAlways)

	assert.Equal(t, dim+"mac:"+reset+" AA", p.formatLabel("mac: AA"))
	assert.Equal(t, "no colon here", p.formatLabel("no colon here"))
}

func TestPrintResultFound(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, ColorNever).PrintResult(check.Result{
		Name:    "license",
		Status:  check.StatusFound,
		Message: "License file 'AA-BB-CC-DD-EE-FF_EDT.lic' found and valid.",
		Details: []string{"mac: AA-BB-CC-DD-EE-FF"},
	})

	expected := "[FOUND] License file 'AA-BB-CC-DD-EE-FF_EDT.lic' found and valid.\n      mac: AA-BB-CC-DD-EE-FF\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrintResultColors(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, ColorAlways)

	p.PrintResult(check.Result{Status: check.StatusFound, Message: "ok"})
	p.PrintResult(check.Result{Status: check.StatusNotFound, Message: "missing", Err: errors.New("x")})
	p.PrintResult(check.Result{Status: check.StatusError, Message: "broken", Err: errors.New("x")})

	expected := green + "[FOUND]" + reset + " ok\n" +
		red + "[NOT FOUND]" + reset + " missing\n" +
		red + "[ERROR]" + reset + " broken\n"
	assert.Equal(t, expected, buf.String())
}

func TestPrintResults(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, ColorNever).PrintResults([]check.Result{
		{Status: check.StatusFound, Message: "one"},
		{Status: check.StatusError, Message: "two"},
	})

	assert.Equal(t, "[FOUND] one\n\n[ERROR] two\n", buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, ColorNever).PrintSummary(2, 3)
	assert.Equal(t, "\n2/3 checks passed\n", buf.String())
}

func TestAutoModeNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, ColorAuto).PrintResult(check.Result{Status: check.StatusFound, Message: "ok"})
	assert.Equal(t, "[FOUND] ok\n", buf.String())
}
