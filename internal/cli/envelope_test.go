package cli

import (
	"bytes"
	stderrors "errors"
	"testing"

	"github.com/matzehuels/bioplot/pkg/config"
	"github.com/matzehuels/bioplot/pkg/errors"
)

func TestEnvelopeJSON(t *testing.T) {
	tests := []struct {
		name string
		env  envelope
		want string
	}{
		{
			name: "success",
			env: successEnvelope("heatmap", config.OutputFiles{
				Preview: "o/t_preview.png",
				HighRes: "o/t_high_res.png",
				SVG:     "o/t.svg",
				PDF:     "o/t.pdf",
			}),
			want: `{"success":true,"outputFiles":{"preview":"o/t_preview.png","highRes":"o/t_high_res.png","svg":"o/t.svg","pdf":"o/t.pdf"},"message":"Successfully generated heatmap"}` + "\n",
		},
		{
			name: "coded failure",
			env: failureEnvelope(errors.Wrap(errors.ErrCodeFileNotFound,
				errors.New(errors.ErrCodeFileNotFound, "data file not found: d.csv"),
				"Failed to generate box_plot")),
			want: `{"success":false,"error":"Failed to generate box_plot: data file not found: d.csv","message":"Failed to generate plot: Failed to generate box_plot: data file not found: d.csv","code":"FILE_NOT_FOUND"}` + "\n",
		},
		{
			name: "plain failure",
			env:  failureEnvelope(stderrors.New("a < b")),
			want: `{"success":false,"error":"a < b","message":"Failed to generate plot: a < b","code":"INTERNAL_ERROR"}` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := writeEnvelope(&buf, tt.env); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Errorf("got  %s\nwant %s", buf.String(), tt.want)
			}
		})
	}
}

func TestFailMarksReported(t *testing.T) {
	var stderr bytes.Buffer
	c := New(&bytes.Buffer{}, &stderr, LogInfo)
	cause := errors.New(errors.ErrCodeInvalidData, "bad")
	err := c.fail(cause)

	if !stderrors.Is(err, errReported) || !stderrors.Is(err, cause) {
		t.Errorf("fail() = %v, want errReported joined with cause", err)
	}
	if code := c.ExitCode(err); code != ExitFailure {
		t.Errorf("ExitCode = %d", code)
	}
	if n := bytes.Count(stderr.Bytes(), []byte("\n")); n != 1 {
		t.Errorf("stderr has %d lines, want only the envelope", n)
	}
}
