package buildinfo

import (
	"strings"
	"testing"
)

func TestTemplate(t *testing.T) {
	tmpl := Template()
	if !strings.HasPrefix(tmpl, "{{.Name}} version "+Version) {
		t.Errorf("Template() = %q, want prefix with version %q", tmpl, Version)
	}
	if !strings.Contains(tmpl, "built: "+Date) {
		t.Errorf("Template() = %q, want build date %q", tmpl, Date)
	}
}

func TestShort(t *testing.T) {
	if got, want := Short(), Version+" ("+Commit+")"; got != want {
		t.Errorf("Short() = %q, want %q", got, want)
	}
}
