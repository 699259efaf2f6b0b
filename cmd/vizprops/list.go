package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vizprops/pkg/mixins"
	"github.com/alexisbeaulieu97/vizprops/pkg/property"
)

type listOptions struct {
	jsonOutput bool
}

func newListCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the built-in attribute bundles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type bundleSummary struct {
	Category   string   `json:"category"`
	Attributes []string `json:"attributes"`
}

func runList(cmd *cobra.Command, opts *listOptions) error {
	summaries := make([]bundleSummary, 0, len(mixins.All()))
	for _, bundle := range mixins.All() {
		s := bundleSummary{Category: bundle.Category()}
		for _, d := range bundle.Declarations() {
			s.Attributes = append(s.Attributes, bundle.Category()+"_"+d.Name)
		}
		summaries = append(summaries, s)
	}

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(summaries)
	}

	fmt.Fprintln(cmd.OutOrStdout(), headerStyle.Render("BUNDLES"))
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CATEGORY\tATTRS\tNAMES")
	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%d\t%s\n", s.Category, len(s.Attributes), strings.Join(s.Attributes, ", "))
	}
	return w.Flush()
}

func formatDefault(v property.Value) string {
	switch v.Kind() {
	case property.KindField:
		return fmt.Sprintf("field(%s)", v.Ref())
	case property.KindExpr:
		return fmt.Sprintf("expr(%s)", v.Ref())
	default:
		if seq, ok := v.Literal().([]int); ok && len(seq) == 0 {
			return "solid"
		}
		return fmt.Sprintf("%v", v.Literal())
	}
}
