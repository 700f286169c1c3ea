// Package buildinfo carries the version stamped into the bioplot binary.
//
// The variables are overwritten with ldflags at release time:
//
//	go build -ldflags "-X github.com/matzehuels/bioplot/pkg/buildinfo.Version=v1.0.0 \
//	    -X github.com/matzehuels/bioplot/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/bioplot/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/bioplot
package buildinfo

import "fmt"

// Release metadata. Development builds keep the placeholders.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Short returns a one-line identifier such as "v1.0.0 (3f2a9c1)", used in
// debug logs so a rendered figure can be traced back to the binary.
func Short() string {
	return fmt.Sprintf("%s (%s)", Version, Commit)
}

// Template returns the version template string for cobra.
func Template() string {
	return fmt.Sprintf("{{.Name}} version %s\ncommit: %s\nbuilt: %s\n", Version, Commit, Date)
}
