// Package tui implements the interactive attribute browser.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/vizprops/pkg/mixins"
	"github.com/alexisbeaulieu97/vizprops/pkg/property"
)

type attrItem struct {
	name string
	kind string
	def  string
	help string
}

func (i attrItem) Title() string       { return i.name }
func (i attrItem) Description() string { return i.kind + "  default=" + i.def }
func (i attrItem) FilterValue() string { return i.name }

// Model contains the Bubbletea state for the attribute browser.
type Model struct {
	list   list.Model
	width  int
	height int
}

// NewModel builds the browser over every attribute of the fixed bundles,
// with bundle categories substituted into the help placeholders.
func NewModel() (Model, error) {
	var items []list.Item
	for _, bundle := range mixins.All() {
		container := property.NewContainer()
		if err := property.Include(bundle, container, property.WithHelpCategory(bundle.Category())); err != nil {
			return Model{}, err
		}
		for _, d := range container.Declarations() {
			items = append(items, attrItem{
				name: d.Name,
				kind: d.Spec.Kind(),
				def:  formatValue(d.Default),
				help: d.Help,
			})
		}
	}

	delegate := list.NewDefaultDelegate()
	l := list.New(items, delegate, 0, 0)
	l.Title = "styling attributes"
	l.SetShowStatusBar(false)

	return Model{list: l}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func formatValue(v property.Value) string {
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
