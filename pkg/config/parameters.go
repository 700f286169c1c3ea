package config

import (
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/matzehuels/bioplot/pkg/errors"
)

// Params is the flattened parameter set, keyed by parameter id.
type Params map[string]any

// Parameters is a decoded parameters document.
type Parameters struct {
	// Values maps parameterId to value. Later duplicates win.
	Values Params
	// PlotConfig holds every other top-level field of the document.
	PlotConfig map[string]any
}

// LoadParameters reads the parameters document at path.
func LoadParameters(path string) (*Parameters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.New(errors.ErrCodeInvalidParameters, "parameters file not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidParameters, err, "read parameters %s", path)
	}

	var doc map[string]any
	if err := decode(data, FormatOf(path), &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameters, err, "parse parameters %s", path)
	}
	if doc == nil {
		return nil, errors.New(errors.ErrCodeInvalidParameters, "parameters document %s is empty", path)
	}

	list, ok := doc["parameters"]
	if !ok {
		return nil, errors.New(errors.ErrCodeInvalidParameters, "parameters document %s has no parameters list", path)
	}
	values, err := Flatten(list)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidParameters, err, "parameters %s", path)
	}
	delete(doc, "parameters")
	return &Parameters{Values: values, PlotConfig: doc}, nil
}

// Flatten turns a list of {parameterId, value} records into a Params map.
// A nil list yields an empty map.
func Flatten(list any) (Params, error) {
	out := make(Params)
	if list == nil {
		return out, nil
	}

	var records []map[string]any
	switch l := list.(type) {
	case []map[string]any:
		records = l
	case []any:
		records = make([]map[string]any, len(l))
		for i, item := range l {
			rec, ok := item.(map[string]any)
			if !ok {
				return nil, fmt.Errorf("parameters[%d]: expected object, got %T", i, item)
			}
			records[i] = rec
		}
	default:
		return nil, fmt.Errorf("parameters: expected list, got %T", list)
	}

	for i, rec := range records {
		id, ok := rec["parameterId"].(string)
		if !ok || id == "" {
			return nil, fmt.Errorf("parameters[%d]: missing parameterId", i)
		}
		out[id] = rec["value"]
	}
	return out, nil
}
