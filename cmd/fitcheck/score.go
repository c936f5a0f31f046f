package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dshills/fitcheck/internal/answers"
	"github.com/dshills/fitcheck/internal/assessment"
	"github.com/dshills/fitcheck/internal/catalog"
	"github.com/dshills/fitcheck/internal/config"
	"github.com/dshills/fitcheck/internal/schema"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <answers-file>",
		Short: "Score an answers file and produce a report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runScore(args[0], cfg, logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.String("catalog", "", "Catalog name or YAML path (default: the answers file's catalog, then "+catalog.DefaultName+")")
	flags.String("format", "json", "Output format: json or md")
	flags.String("out", "", "Output file path (default: stdout)")
	flags.String("fail-on", "", "Exit 2 if the recommendation is this tier or worse")
	flags.Bool("strict", false, "Fail on answers that do not fit the catalog")
	return cmd
}

func runScore(answersPath string, cfg *config.Config, logger *zap.Logger, stdout, stderr io.Writer) error {
	if err := checkFormat(cfg.Format); err != nil {
		return err
	}
	if cfg.FailOn != "" {
		if _, err := tierMeetsThreshold(assessment.RecommendationStrongFit, cfg.FailOn); err != nil {
			return exitError(exitInput, "%v", err)
		}
	}

	// 1. Load answers
	logger.Debug("loading answers", zap.String("path", answersPath))
	f, err := answers.Read(answersPath)
	if err != nil {
		return exitError(exitInput, "failed to load answers: %v", err)
	}
	if errs := schema.ValidateAnswersDocument(f.Doc); len(errs) > 0 {
		fmt.Fprintln(stderr, "Answers file validation errors:")
		for _, e := range errs {
			fmt.Fprintf(stderr, "  %s\n", e)
		}
		return exitError(exitValidation, "answers file %s failed validation", answersPath)
	}
	if err := f.Decode(); err != nil {
		return exitError(exitInput, "failed to decode answers: %v", err)
	}
	logger.Debug("answers loaded", zap.Int("count", len(f.Answers)), zap.String("hash", f.Hash))

	// 2. Resolve catalog: flag/config, then the file's own, then the default
	ref := cfg.Catalog
	switch {
	case ref == "":
		ref = f.Catalog
	case f.Catalog != "" && f.Catalog != ref:
		logger.Warn("catalog override differs from answers file",
			zap.String("catalog", ref), zap.String("answers_catalog", f.Catalog))
	}
	cat, err := loadCatalog(ref, logger, stderr)
	if err != nil {
		return err
	}

	// 3. Check answers against the catalog
	findings := schema.ValidateAnswers(cat.Questions, f.Answers)
	for _, e := range findings {
		logger.Warn("answer finding", zap.String("path", e.Path), zap.String("message", e.Message))
	}
	if cfg.Strict && len(findings) > 0 {
		fmt.Fprintln(stderr, "Answer validation errors:")
		for _, e := range findings {
			fmt.Fprintf(stderr, "  %s\n", e)
		}
		return exitError(exitValidation, "%d answers do not fit catalog %q (--strict)", len(findings), cat.Name)
	}

	// 4. Score
	score := assessment.Compute(cat.Questions, f.Answers)
	logger.Debug("scored",
		zap.Int("confidence", score.ConfidenceScore),
		zap.String("recommendation", string(score.OverallRecommendation)))

	report := assessment.NewReport(toolName, version, assessment.Input{
		AnswersFile:    filepath.Base(answersPath),
		AnswersHash:    f.Hash,
		Catalog:        cat.Name,
		CatalogVersion: cat.Version,
		Answered:       answeredCount(cat, f.Answers),
		Total:          len(cat.Questions),
	}, score)
	for _, e := range findings {
		report.Findings = append(report.Findings, assessment.Finding{Path: e.Path, Message: e.Message})
	}

	// 5. Output
	if err := writeReport(report, cfg.Format, cfg.Out, stdout, logger); err != nil {
		return err
	}

	// 6. Exit code based on --fail-on
	if cfg.FailOn != "" {
		meets, _ := tierMeetsThreshold(score.OverallRecommendation, cfg.FailOn)
		if meets {
			return exitError(exitFailOn, "recommendation %s meets fail threshold %s", score.OverallRecommendation, cfg.FailOn)
		}
	}
	return nil
}

// answeredCount counts answers that belong to a catalog question.
func answeredCount(c *catalog.Catalog, set answers.Set) int {
	n := 0
	for _, q := range c.Questions {
		if _, ok := set.Get(q.ID); ok {
			n++
		}
	}
	return n
}
