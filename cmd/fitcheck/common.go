package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dshills/fitcheck/internal/assessment"
	"github.com/dshills/fitcheck/internal/catalog"
	"github.com/dshills/fitcheck/internal/config"
	"github.com/dshills/fitcheck/internal/logging"
	"github.com/dshills/fitcheck/internal/render"
	"github.com/dshills/fitcheck/internal/schema"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Exit codes.
const (
	exitFailOn     = 2
	exitInput      = 3
	exitValidation = 5
)

type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func exitError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

// setup resolves configuration and builds the logger for a command run.
func setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cmd.Flags(), configFile)
	if err != nil {
		return nil, nil, exitError(exitInput, "failed to load config: %v", err)
	}
	logger, err := logging.New(cfg.LogLevel(), cfg.LogFormat)
	if err != nil {
		return nil, nil, exitError(exitInput, "failed to build logger: %v", err)
	}
	return cfg, logger, nil
}

// loadCatalog loads and validates a catalog by name or path.
func loadCatalog(ref string, logger *zap.Logger, errOut io.Writer) (*catalog.Catalog, error) {
	logger.Debug("loading catalog", zap.String("ref", ref))
	c, err := catalog.Load(ref)
	if err != nil {
		return nil, exitError(exitInput, "failed to load catalog: %v", err)
	}
	if errs := schema.ValidateCatalog(c); len(errs) > 0 {
		fmt.Fprintln(errOut, "Catalog validation errors:")
		for _, e := range errs {
			fmt.Fprintf(errOut, "  %s\n", e)
		}
		return nil, exitError(exitValidation, "catalog %q failed validation", c.Name)
	}
	logger.Debug("catalog loaded",
		zap.String("name", c.Name),
		zap.Int("version", c.Version),
		zap.Int("questions", len(c.Questions)))
	return c, nil
}

func checkFormat(format string) error {
	switch format {
	case "json", "md":
		return nil
	}
	return exitError(exitInput, "unknown format: %s", format)
}

// writeReport encodes the report and writes it to out, or to w when out is empty.
func writeReport(r *assessment.Report, format, out string, w io.Writer, logger *zap.Logger) error {
	var output string
	switch format {
	case "json":
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal output: %w", err)
		}
		output = string(data) + "\n"
	case "md":
		output = render.Markdown(r)
	default:
		return exitError(exitInput, "unknown format: %s", format)
	}

	if out != "" {
		logger.Debug("writing output", zap.String("path", out))
		if err := os.WriteFile(out, []byte(output), 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err := io.WriteString(w, output)
	return err
}

// tierMeetsThreshold reports whether tier is at or below failOn.
func tierMeetsThreshold(tier assessment.Recommendation, failOn string) (bool, error) {
	threshold := assessment.Recommendation(strings.ToLower(failOn))
	if !threshold.Valid() {
		return false, fmt.Errorf("unrecognized --fail-on value %q", failOn)
	}
	if !tier.Valid() {
		return false, nil
	}
	return tier.Level() >= threshold.Level(), nil
}
