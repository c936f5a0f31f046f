package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dshills/fitcheck/internal/assessment"
	"github.com/dshills/fitcheck/internal/catalog"
	"github.com/dshills/fitcheck/internal/config"
	"github.com/dshills/fitcheck/internal/session"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newTakeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "take",
		Short: "Answer the questionnaire on the terminal and print the results",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return runTake(cfg, logger, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	flags := cmd.Flags()
	flags.String("catalog", "", "Catalog name or YAML path (default: "+catalog.DefaultName+")")
	flags.String("format", "md", "Output format: json or md")
	flags.String("out", "", "Output file path (default: stdout)")
	return cmd
}

// runTake prompts on prompt and reads answers from in. Only the report
// goes to stdout.
func runTake(cfg *config.Config, logger *zap.Logger, in io.Reader, stdout, prompt io.Writer) error {
	if err := checkFormat(cfg.Format); err != nil {
		return err
	}
	cat, err := loadCatalog(cfg.Catalog, logger, prompt)
	if err != nil {
		return err
	}

	sess := session.New(cat.Questions)
	if err := sess.Start(); err != nil {
		return exitError(exitInput, "%v", err)
	}
	logger.Debug("session started", zap.String("session", sess.ID.String()), zap.String("catalog", cat.Name))

	if cat.Title != "" {
		fmt.Fprintf(prompt, "%s\n", cat.Title)
	}
	fmt.Fprintln(prompt, "Enter p to go back to the previous question.")

	r := bufio.NewReader(in)
	for sess.Step() == session.StepQuestions {
		q, _ := sess.Current()
		askQuestion(prompt, q, sess.Progress())

		line, err := r.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return exitError(exitInput, "input ended before the assessment was finished")
		}
		line = strings.TrimSpace(line)

		switch {
		case strings.EqualFold(line, "p"):
			_ = sess.Previous()
			continue
		case line == "":
			if _, ok := sess.Selected(); !ok {
				fmt.Fprintln(prompt, "Please choose an answer.")
				continue
			}
		default:
			v, err := parseAnswer(q, line)
			if err != nil {
				fmt.Fprintf(prompt, "Please %v.\n", err)
				continue
			}
			_ = sess.Answer(v)
		}
		if err := sess.Next(); err != nil {
			fmt.Fprintln(prompt, "Please choose an answer.")
		}
	}

	score, err := sess.Result()
	if err != nil {
		return fmt.Errorf("score session: %w", err)
	}
	set := sess.Answers()
	report := assessment.NewReport(toolName, version, assessment.Input{
		Catalog:        cat.Name,
		CatalogVersion: cat.Version,
		Answered:       answeredCount(cat, set),
		Total:          len(cat.Questions),
	}, score)
	report.SessionID = sess.ID.String()

	fmt.Fprintln(prompt)
	return writeReport(report, cfg.Format, cfg.Out, stdout, logger)
}

func askQuestion(w io.Writer, q catalog.Question, p session.Progress) {
	fmt.Fprintf(w, "\n[%d/%d] %s\n%s\n", p.Step, p.Total, q.Category, q.Prompt)
	if q.Type == catalog.TypeLikert {
		left, right := "Strongly Disagree", "Strongly Agree"
		if q.LikertLabels != nil {
			left, right = q.LikertLabels.Left, q.LikertLabels.Right
		}
		fmt.Fprintf(w, "  %d = %s ... %d = %s\n", catalog.LikertMin, left, catalog.LikertMax, right)
		fmt.Fprintf(w, "Answer (%d-%d): ", catalog.LikertMin, catalog.LikertMax)
		return
	}
	for i, opt := range q.Options {
		fmt.Fprintf(w, "  %c) %s\n", optionLetter(i), opt)
	}
	fmt.Fprintf(w, "Answer (%c-%c): ", optionLetter(0), optionLetter(len(q.Options)-1))
}

// parseAnswer reads a likert number or an option letter.
func parseAnswer(q catalog.Question, s string) (int, error) {
	if q.Type == catalog.TypeLikert {
		v, err := strconv.Atoi(s)
		if err != nil || v < catalog.LikertMin || v > catalog.LikertMax {
			return 0, fmt.Errorf("enter a number from %d to %d", catalog.LikertMin, catalog.LikertMax)
		}
		return v, nil
	}
	if len(s) == 1 {
		idx := int(strings.ToUpper(s)[0]) - 'A'
		if idx >= 0 && idx < len(q.Options) {
			return idx, nil
		}
	}
	return 0, fmt.Errorf("enter a letter from %c to %c", optionLetter(0), optionLetter(len(q.Options)-1))
}

func optionLetter(i int) rune {
	return rune('A' + i)
}
