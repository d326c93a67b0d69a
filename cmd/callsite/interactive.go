package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/wippyai/bytegen/member"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	methodStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectMethod modelState = iota
	stateInputTarget
	stateShowResult
)

type override int

const (
	overrideNone override = iota
	overrideSpecial
	overrideVirtual
)

type interactiveModel struct {
	err      error
	catalog  *member.Catalog
	filename string
	result   string
	methods  []*member.Method
	input    textinput.Model
	selected int
	mode     override
	state    modelState
}

func newInteractiveModel(c *member.Catalog, filename string) *interactiveModel {
	return &interactiveModel{
		catalog:  c,
		filename: filename,
		methods:  c.Methods(),
		state:    stateSelectMethod,
	}
}

type resultMsg struct {
	err    error
	result string
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit

		case "q":
			if m.state != stateInputTarget {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectMethod && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectMethod && m.selected < len(m.methods)-1 {
				m.selected++
			}

		case "s", "v":
			if m.state == stateSelectMethod && len(m.methods) > 0 {
				m.mode = overrideSpecial
				if msg.String() == "v" {
					m.mode = overrideVirtual
				}
				m.prepareInput()
				m.state = stateInputTarget
				return m, textinput.Blink
			}

		case "enter":
			switch m.state {
			case stateSelectMethod:
				if len(m.methods) > 0 {
					m.mode = overrideNone
					return m, m.selectInvocation
				}

			case stateInputTarget:
				return m, m.selectInvocation

			case stateShowResult:
				m.state = stateSelectMethod
				m.result = ""
				m.err = nil
			}

		case "esc":
			switch m.state {
			case stateInputTarget, stateShowResult:
				m.state = stateSelectMethod
				m.result = ""
				m.err = nil
			}
		}

	case resultMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
	}

	if m.state == stateInputTarget {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) prepareInput() {
	ti := textinput.New()
	ti.Placeholder = m.methods[m.selected].Owner().InternalName()
	ti.Prompt = "target type: "
	ti.Width = 48
	ti.ShowSuggestions = true
	ti.SetSuggestions(m.catalog.Types())
	ti.Focus()
	m.input = ti
}

func (m *interactiveModel) selectInvocation() tea.Msg {
	meth := m.methods[m.selected]
	req := request{
		method:   meth.Owner().InternalName() + "." + meth.InternalName() + meth.Descriptor(),
		maxStack: -1,
	}
	target := strings.TrimSpace(m.input.Value())
	if target == "" {
		target = meth.Owner().InternalName()
	}
	switch m.mode {
	case overrideSpecial:
		req.special = target
	case overrideVirtual:
		req.virtual = target
	}

	out, err := run(m.catalog, req, "text")
	return resultMsg{result: out, err: err}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Call Site Selector"))
	b.WriteString(" ")
	b.WriteString(m.filename)
	b.WriteString("\n\n")

	if len(m.methods) == 0 {
		b.WriteString("Catalog has no methods.\n\n")
		b.WriteString(helpStyle.Render("q quit"))
		return b.String()
	}

	switch m.state {
	case stateSelectMethod:
		b.WriteString("Select a method:\n\n")
		for i, meth := range m.methods {
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + formatMethod(meth)))
			} else {
				b.WriteString("  " + formatMethod(meth))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter natural • s special • v virtual • q quit"))

	case stateInputTarget:
		meth := m.methods[m.selected]
		label := "special"
		if m.mode == overrideVirtual {
			label = "virtual"
		}
		b.WriteString(fmt.Sprintf("Override %s as %s\n\n", methodStyle.Render(meth.String()), label))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("tab complete • enter select • esc back"))

	case stateShowResult:
		meth := m.methods[m.selected]
		b.WriteString(fmt.Sprintf("Invocation of %s:\n\n", methodStyle.Render(meth.String())))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(strings.TrimRight(m.result, "\n")))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func formatMethod(meth *member.Method) string {
	var flags []string
	if meth.IsStatic() {
		flags = append(flags, "static")
	}
	if meth.IsPrivate() {
		flags = append(flags, "private")
	}
	if meth.IsAbstract() {
		flags = append(flags, "abstract")
	}
	if meth.IsDefaultMethod() {
		flags = append(flags, "default")
	}
	s := typeStyle.Render(meth.Owner().InternalName()) + "." +
		methodStyle.Render(meth.InternalName()) + meth.Descriptor()
	if len(flags) > 0 {
		s += " " + helpStyle.Render("["+strings.Join(flags, " ")+"]")
	}
	return s
}

func runInteractive(c *member.Catalog, filename string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode needs a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(c, filename), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
