package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/vizprops/pkg/colors"
	"github.com/alexisbeaulieu97/vizprops/pkg/mixins"
	"github.com/alexisbeaulieu97/vizprops/pkg/property"
)

func newShowCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <bundle>",
		Short: "Show a bundle's attributes, defaults, and help",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, args[0])
		},
	}

	return cmd
}

func runShow(cmd *cobra.Command, category string) error {
	bundle, ok := mixins.ByCategory(category)
	if !ok {
		return fmt.Errorf("unknown bundle %q (expected one of fill, line, text)", category)
	}

	container := property.NewContainer()
	if err := property.Include(bundle, container, property.WithHelpCategory(category)); err != nil {
		return err
	}

	width := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 40 {
		width = w
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render(strings.ToUpper(category)+" BUNDLE"))
	for _, d := range container.Declarations() {
		def := formatDefault(d.Default)
		line := fmt.Sprintf("%s  %s  default=%s", attrStyle.Render(d.Name), kindStyle.Render(d.Spec.Kind()), def)
		if swatch := colorSwatch(d.Default); swatch != "" {
			line += "  " + swatch
		}
		fmt.Fprintln(out, line)
		for _, row := range wrapText(d.Help, width-4) {
			fmt.Fprintln(out, helpStyle.Render("    "+row))
		}
	}
	return nil
}

// colorSwatch renders a filled cell for literal color defaults, picking a
// readable foreground from the color's lightness.
func colorSwatch(v property.Value) string {
	if v.Kind() != property.KindLiteral {
		return ""
	}
	s, ok := v.Literal().(string)
	if !ok {
		return ""
	}
	c, err := colors.Parse(s)
	if err != nil {
		return ""
	}
	fg := "0"
	if c.Lightness() < 0.5 {
		fg = "15"
	}
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Hex())).
		Foreground(lipgloss.Color(fg))
	return style.Render(" " + c.Hex() + " ")
}

func wrapText(text string, width int) []string {
	if width < 20 {
		width = 20
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}
	var rows []string
	row := words[0]
	for _, word := range words[1:] {
		if len(row)+1+len(word) > width {
			rows = append(rows, row)
			row = word
			continue
		}
		row += " " + word
	}
	return append(rows, row)
}
