package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sample = `package v1alpha1

// Mode of the thing.
type Mode string

const (
	// Fast is fast.
	ModeFast Mode = "FAST"
	ModeSlow Mode = "SLOW"
)

// Thing is configured
// over two lines.
//
// Second paragraph with a | pipe.
type Thing struct {
	// Name of the thing.
	Name string ` + "`json:\"name\"`" + `

	// +optional
	Mode Mode ` + "`json:\"mode,omitempty\"`" + `

	Tags []string ` + "`json:\"tags\"`" + `

	internal int ` + "`json:\"-\"`" + `
}
`

func TestWriteAPIDocs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "thing_types.go")
	if err := os.WriteFile(path, []byte(sample), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	var out bytes.Buffer
	if err := writeAPIDocs(&out, []string{path}); err != nil {
		t.Fatalf("writeAPIDocs() error = %v", err)
	}
	got := out.String()

	for _, want := range []string{
		"* <<Mode,Mode>>\n",
		"* <<Thing,Thing>>\n",
		"Thing is configured over two lines. +\nSecond paragraph with a \\| pipe.",
		"m| name | Name of the thing. m| string | true\n",
		"m| mode | &#160; m| <<Mode,Mode>> | false\n",
		"m| tags | &#160; m| []string | true\n",
		"m| \"FAST\" | Fast is fast.\n",
		"m| \"SLOW\" | &#160;\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("writeAPIDocs() output lacks %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "internal") {
		t.Errorf("writeAPIDocs() documented an unexported field:\n%s", got)
	}
}

func TestWriteAPIDocsReportsParseErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.go")
	if err := os.WriteFile(path, []byte("package"), 0o600); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	if err := writeAPIDocs(&bytes.Buffer{}, []string{path}); err == nil {
		t.Error("writeAPIDocs() error = nil for a broken file")
	}
}
