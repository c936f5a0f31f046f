package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

const toolName = "fitcheck"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     toolName,
		Short:   "Score a career-fit self assessment",
		Version: version,

		SilenceErrors: true,
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "Config file (default: ./fitcheck.yaml or ~/.config/fitcheck/fitcheck.yaml)")
	pf.Bool("verbose", false, "Log processing steps to stderr")
	pf.String("log-format", "console", "Log format: console or json")

	root.AddCommand(newScoreCmd())
	root.AddCommand(newTakeCmd())
	root.AddCommand(newCatalogCmd())
	return root
}
