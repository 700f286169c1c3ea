package config

import (
	stderrors "errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/matzehuels/bioplot/pkg/errors"
)

// Output file suffixes, appended to the task id.
const (
	SuffixPreview   = "_preview.png"
	SuffixHighRes   = "_high_res.png"
	SuffixSVG       = ".svg"
	SuffixPDF       = ".pdf"
	SuffixDataTable = "_data.csv"
)

// Config is the configuration document.
type Config struct {
	PlotType        string `json:"plotType" toml:"plotType" yaml:"plotType"`
	OutputDir       string `json:"outputDir" toml:"outputDir" yaml:"outputDir"`
	TaskID          string `json:"taskId" toml:"taskId" yaml:"taskId"`
	ParametersFile  string `json:"parametersFile" toml:"parametersFile" yaml:"parametersFile"`
	DataPath        string `json:"dataPath,omitempty" toml:"dataPath" yaml:"dataPath,omitempty"`
	ExportDataTable bool   `json:"exportDataTable,omitempty" toml:"exportDataTable" yaml:"exportDataTable,omitempty"`
}

// OutputFiles are the paths written for one task.
type OutputFiles struct {
	Preview   string `json:"preview"`
	HighRes   string `json:"highRes"`
	SVG       string `json:"svg"`
	PDF       string `json:"pdf"`
	DataTable string `json:"dataTable,omitempty"`
}

// Load reads and validates the configuration document at path.
// A blank task id is replaced with a random UUID.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "config file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read config %s", path)
	}

	var cfg Config
	if err := decode(data, FormatOf(path), &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks required fields and fills in the task id.
func (c *Config) Validate() error {
	c.PlotType = strings.TrimSpace(c.PlotType)
	if c.PlotType == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "plotType is required")
	}
	for _, f := range []struct{ name, value string }{
		{"outputDir", c.OutputDir},
		{"parametersFile", c.ParametersFile},
	} {
		if strings.TrimSpace(f.value) == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "%s is required", f.name)
		}
		if err := errors.ValidatePath(f.name, f.value); err != nil {
			return err
		}
	}
	if c.DataPath != "" {
		if err := errors.ValidatePath("dataPath", c.DataPath); err != nil {
			return err
		}
	}
	if c.TaskID == "" {
		c.TaskID = uuid.NewString()
	}
	return errors.ValidateTaskID(c.TaskID)
}

// OutputFiles derives the output paths from the output directory and task id.
func (c *Config) OutputFiles() OutputFiles {
	base := filepath.Join(c.OutputDir, c.TaskID)
	out := OutputFiles{
		Preview: base + SuffixPreview,
		HighRes: base + SuffixHighRes,
		SVG:     base + SuffixSVG,
		PDF:     base + SuffixPDF,
	}
	if c.ExportDataTable {
		out.DataTable = base + SuffixDataTable
	}
	return out
}
