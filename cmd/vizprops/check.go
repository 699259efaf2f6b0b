package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vizprops/internal/logger"
	"github.com/alexisbeaulieu97/vizprops/internal/theme"
)

func newCheckCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <theme.yaml>",
		Short: "Validate a stylesheet against the built-in bundles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, rootFlags, args[0])
		},
	}

	return cmd
}

func runCheck(cmd *cobra.Command, rootFlags *rootFlags, path string) error {
	level := "warn"
	if rootFlags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, Pretty: true, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return err
	}

	doc, err := theme.Load(path, log)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render("FAIL"))
		return err
	}

	containers, err := theme.Materialize(doc, log)
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render("FAIL"))
		return err
	}

	targets := make([]string, 0, len(containers))
	for target := range containers {
		targets = append(targets, target)
	}
	sort.Strings(targets)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s theme %q: %d styles\n", okStyle.Render("OK"), doc.Name, len(targets))
	for _, target := range targets {
		container := containers[target]
		assigned := 0
		for _, name := range container.Names() {
			if container.IsSet(name) {
				assigned++
			}
		}
		fmt.Fprintf(out, "  %s: %d attributes, %d assigned\n", target, len(container.Names()), assigned)
	}
	return nil
}
