package tui

import (
	"fmt"
	"strings"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/internal/form"
)

const helpText = "tab/shift+tab: move   ←/→: category   space: toggle   enter: load image   ctrl+s: add   ctrl+g: generate   ctrl+c: quit"

func (m Model) View() string {
	state := m.form.Snapshot()

	if state.Modal != form.ModalClosed {
		return m.renderModal(state)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Add Product"))
	b.WriteString("\n\n")

	for i, f := range fieldOrder {
		label := labelStyle.Render(fieldLabels[f])
		if i == m.focus {
			label = focusStyle.Render("> " + fieldLabels[f])
		}
		b.WriteString(label)
		b.WriteString(m.renderValue(f, state))
		b.WriteString("\n")

		if msg := state.Errors.Get(f); msg != "" {
			b.WriteString(labelStyle.Render(""))
			b.WriteString(errorStyle.Render(msg))
			b.WriteString("\n")
		}
		if f == domain.FieldImage && m.imageNote != "" {
			b.WriteString(labelStyle.Render(""))
			b.WriteString(errorStyle.Render(m.imageNote))
			b.WriteString("\n")
		}
	}

	for k, v := range state.Errors.Other {
		b.WriteString(errorStyle.Render(fmt.Sprintf("%s: %s", k, v)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if line := m.renderStatus(state); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(mutedStyle.Render(helpText))
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderValue(f domain.Field, state form.State) string {
	switch f {
	case domain.FieldCategory:
		if state.Draft.Category == "" {
			return mutedStyle.Render("< select a category >")
		}
		return "< " + state.Draft.Category + " >"
	case domain.FieldProductAvailable:
		if state.Draft.ProductAvailable {
			return "[x]"
		}
		return "[ ]"
	case domain.FieldImage:
		view := m.inputs[f].View()
		if state.Image != nil {
			view += mutedStyle.Render(fmt.Sprintf("  %s, %.1f KB", state.Image.ContentType, float64(state.Image.Size)/1024))
		}
		return view
	}
	return m.inputs[f].View()
}

func (m Model) renderStatus(state form.State) string {
	switch {
	case m.busy || state.Loading:
		return mutedStyle.Render("Adding product...")
	case m.notice != nil && m.notice.Level == form.LevelSuccess:
		return successStyle.Render(m.notice.Message)
	case m.notice != nil:
		return errorStyle.Render(m.notice.Message)
	case m.statusLine != "":
		return mutedStyle.Render(m.statusLine)
	}
	return ""
}

func (m Model) renderModal(state form.State) string {
	lines := []string{
		titleStyle.Render("Generate Product with AI"),
		"",
		m.prompt.View(),
		"",
	}

	if state.Modal == form.ModalGenerating {
		lines = append(lines, mutedStyle.Render("Generating..."))
	} else {
		if m.notice != nil && m.notice.Level == form.LevelError {
			lines = append(lines, errorStyle.Render(m.notice.Message), "")
		} else if m.statusLine != "" {
			lines = append(lines, mutedStyle.Render(m.statusLine), "")
		}
		lines = append(lines, mutedStyle.Render("enter: generate   esc: cancel"))
	}

	return modalStyle.Render(strings.Join(lines, "\n")) + "\n"
}
