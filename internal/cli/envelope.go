package cli

import (
	"encoding/json"
	stderrors "errors"
	"io"

	"github.com/matzehuels/bioplot/pkg/config"
	"github.com/matzehuels/bioplot/pkg/errors"
)

// errReported marks a failure whose envelope has been written.
var errReported = stderrors.New("failure reported")

// envelope is the single JSON line a run prints. Field order matches the
// documented success and failure shapes.
type envelope struct {
	Success     bool                `json:"success"`
	OutputFiles *config.OutputFiles `json:"outputFiles,omitempty"`
	Error       string              `json:"error,omitempty"`
	Message     string              `json:"message"`
	Code        errors.Code         `json:"code,omitempty"`
}

func successEnvelope(kind string, files config.OutputFiles) envelope {
	return envelope{
		Success:     true,
		OutputFiles: &files,
		Message:     "Successfully generated " + kind,
	}
}

func failureEnvelope(err error) envelope {
	msg := errors.Chain(err)
	code := errors.RootCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	return envelope{
		Error:   msg,
		Message: "Failed to generate plot: " + msg,
		Code:    code,
	}
}

func writeEnvelope(w io.Writer, e envelope) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(e)
}

// fail writes the failure envelope to stderr and returns errReported
// joined with err, so callers can still inspect the cause.
func (c *CLI) fail(err error) error {
	if werr := writeEnvelope(c.Stderr, failureEnvelope(err)); werr != nil {
		return stderrors.Join(err, werr)
	}
	return stderrors.Join(errReported, err)
}
