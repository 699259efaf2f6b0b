package tui

// View renders the attribute list with a detail pane for the selection.
func (m Model) View() string {
	detail := ""
	if item, ok := m.list.SelectedItem().(attrItem); ok {
		detail = detailTitleStyle.Render(item.name) + "\n" + detailBodyStyle.Render(item.help)
	}
	return m.list.View() + "\n" + detail
}
