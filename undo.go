package main

func (m *model) undo() {
	i := m.stack.Selected()
	if !m.stack.Undo(i) {
		m.errorMessage = "Nothing to undo"
		return
	}
	m.configField = 0
	m.rerender()
	m.successMessage = "Undone"
}

func (m *model) redo() {
	i := m.stack.Selected()
	if !m.stack.Redo(i) {
		m.errorMessage = "Nothing to redo"
		return
	}
	m.configField = 0
	m.rerender()
	m.successMessage = "Redone"
}
