package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/dshills/fitcheck/internal/catalog"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog [name-or-path]",
		Short: "List built-in catalogs, or summarize one catalog",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, logger, err := setup(cmd)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			if len(args) == 0 {
				return listCatalogs(cmd.OutOrStdout())
			}
			return showCatalog(args[0], logger, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
}

func listCatalogs(w io.Writer) error {
	names, err := catalog.List()
	if err != nil {
		return fmt.Errorf("list catalogs: %w", err)
	}
	for _, n := range names {
		fmt.Fprintln(w, n)
	}
	return nil
}

func showCatalog(ref string, logger *zap.Logger, w, errOut io.Writer) error {
	c, err := loadCatalog(ref, logger, errOut)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (version %d)\n", c.Name, c.Version)
	if c.Title != "" {
		fmt.Fprintf(w, "%s\n", c.Title)
	}
	fmt.Fprintf(w, "%d questions: %d likert, %d multiple-choice, %d aptitude\n\n",
		c.Count(""), c.Count(catalog.TypeLikert), c.Count(catalog.TypeMultipleChoice), c.Count(catalog.TypeAptitude))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tCATEGORY\tSECTIONS")
	for _, q := range c.Questions {
		sections := make([]string, 0, 2)
		for _, s := range q.Sections() {
			sections = append(sections, string(s))
		}
		sec := strings.Join(sections, ",")
		if sec == "" {
			sec = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", q.ID, q.Type, q.Category, sec)
	}
	return tw.Flush()
}
