package format

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/hazelcast/cache-config-engine/internal/config"
)

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		wantFormat config.Format
		wantErr    bool
	}{
		{name: "Empty", text: "", wantErr: true},
		{name: "Whitespace", text: " \n\t ", wantErr: true},
		{name: "JSON", text: `{"local-cache": {}}`, wantFormat: config.FormatJSON},
		{name: "JSON with comments", text: "{\n  // a comment\n  \"local-cache\": {\"statistics\": true,},\n}", wantFormat: config.FormatJSON},
		{name: "Markup", text: `<local-cache statistics="true"/>`, wantFormat: config.FormatXML},
		{name: "YAML", text: "local-cache:\n  statistics: true\n", wantFormat: config.FormatYAML},
		{name: "Plain text", text: "make it fast", wantFormat: FormatText},
		{name: "Broken JSON is still text", text: `{"local-cache": `, wantFormat: FormatText},
		{name: "Broken markup is still text", text: `<local-cache>`, wantFormat: FormatText},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateDraft(tt.text)
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("ValidateDraft() error = %v, want ParseError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ValidateDraft() unexpected error = %v", err)
			}
			if got.Text != tt.text || got.Format != tt.wantFormat {
				t.Errorf("ValidateDraft() = %+v, want format %q", got, tt.wantFormat)
			}
		})
	}
}

func TestPrettyPrintStructured(t *testing.T) {
	got, err := PrettyPrintStructured(`{"local-cache":{"statistics":true,/* on */},}`)
	if err != nil {
		t.Fatalf("PrettyPrintStructured() error = %v", err)
	}
	want := `{
  "local-cache": {
    "statistics": true
  }
}
`
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("PrettyPrintStructured() mismatch (-want +got):\n%s", diff)
	}

	if _, err := PrettyPrintStructured(`{"a":`); err == nil {
		t.Error("PrettyPrintStructured() error = nil for broken JSON")
	}
}

func TestConvert(t *testing.T) {
	input := `{
  // created by hand
  "replicated-cache": {
    "mode": "SYNC",
    "statistics": true,
    "security": {"authorization": {"roles": ["admin", "reader"]}},
  },
}`
	xmlOut, err := Convert(input, config.FormatXML)
	if err != nil {
		t.Fatalf("Convert() to XML error = %v", err)
	}
	wantXML := `<replicated-cache mode="SYNC" statistics="true">
  <security>
    <authorization roles="admin reader"></authorization>
  </security>
</replicated-cache>
`
	if diff := cmp.Diff(wantXML, xmlOut); diff != "" {
		t.Errorf("Convert() to XML mismatch (-want +got):\n%s", diff)
	}

	yamlOut, err := Convert(xmlOut, config.FormatYAML)
	if err != nil {
		t.Fatalf("Convert() to YAML error = %v", err)
	}
	if !strings.Contains(yamlOut, "roles:\n        - admin\n        - reader\n") {
		t.Errorf("Convert() to YAML lost the roles:\n%s", yamlOut)
	}

	jsonOut, err := Convert(yamlOut, config.FormatJSON)
	if err != nil {
		t.Fatalf("Convert() to JSON error = %v", err)
	}
	back, err := Convert(jsonOut, config.FormatXML)
	if err != nil {
		t.Fatalf("Convert() back to XML error = %v", err)
	}
	if diff := cmp.Diff(xmlOut, back); diff != "" {
		t.Errorf("Convert() round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestConvertRejectsText(t *testing.T) {
	var pe *ParseError
	if _, err := Convert("not a document", config.FormatJSON); !errors.As(err, &pe) {
		t.Errorf("Convert() error = %v, want ParseError", err)
	}
	if _, err := Convert(`{"caches": {}}`, config.FormatXML); !errors.As(err, &pe) {
		t.Errorf("Convert() error = %v, want ParseError", err)
	}
}
