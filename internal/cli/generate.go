package cli

import (
	"context"
	"fmt"

	"github.com/matzehuels/bioplot/pkg/buildinfo"
	"github.com/matzehuels/bioplot/pkg/config"
	"github.com/matzehuels/bioplot/pkg/pipeline"
)

// generate runs the plot described by the configuration at path and
// writes the result envelope.
func (c *CLI) generate(ctx context.Context, path string) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)
	logger.Debug("starting", "build", buildinfo.Short(), "config", path)

	cfg, err := config.Load(path)
	if err != nil {
		return c.fail(err)
	}
	logger.Debug("loaded config",
		"plotType", cfg.PlotType,
		"taskId", cfg.TaskID,
		"outputDir", cfg.OutputDir,
		"dataPath", cfg.DataPath)

	gen, err := pipeline.New(cfg, logger)
	if err != nil {
		return c.fail(err)
	}
	result, err := gen.Generate(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return c.fail(err)
	}

	prog.done(fmt.Sprintf("Generated %s", result.Kind))
	return writeEnvelope(c.Stdout, successEnvelope(result.Kind.String(), result.Files))
}
