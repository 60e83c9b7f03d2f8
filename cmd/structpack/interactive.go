package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/structpack/pack"
	"github.com/wippyai/structpack/registry"
	"github.com/wippyai/structpack/witschema"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	formatStyle = lipgloss.NewStyle().
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

type interactiveModel struct {
	err         error
	enc         *pack.Encoder
	layout      *pack.Layout
	formatInput textinput.Model
	result      string
	formats     []formatInfo
	inputs      []textinput.Model
	selected    int
	focusIdx    int
	state       modelState
}

type formatInfo struct {
	name        string
	format      string
	description string
	layout      *pack.Layout
}

type modelState int

const (
	stateSelectFormat modelState = iota
	stateInputFormat
	stateInputValues
	stateShowResult
)

// customFormat is the list entry that opens the format prompt.
const customFormat = "custom format..."

func newInteractiveModel(reg *registry.Registry, enc *pack.Encoder) *interactiveModel {
	m := &interactiveModel{
		enc:   enc,
		state: stateSelectFormat,
	}
	if reg != nil {
		for _, name := range reg.Names() {
			e, err := reg.Lookup(name)
			if err != nil {
				continue
			}
			m.formats = append(m.formats, formatInfo{
				name:        e.Name,
				format:      e.Format,
				description: e.Description,
				layout:      e.Layout,
			})
		}
	}
	m.formats = append(m.formats, formatInfo{name: customFormat})

	fi := textinput.New()
	fi.Placeholder = "<hH5s"
	fi.Prompt = "format: "
	fi.Width = 40
	m.formatInput = fi
	return m
}

type encodedMsg struct {
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
			if m.state == stateSelectFormat || m.state == stateShowResult {
				return m, tea.Quit
			}

		case "up", "k":
			if m.state == stateSelectFormat && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectFormat && m.selected < len(m.formats)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectFormat:
				f := m.formats[m.selected]
				if f.layout == nil {
					m.formatInput.SetValue("")
					m.formatInput.Focus()
					m.state = stateInputFormat
					return m, textinput.Blink
				}
				return m, m.selectLayout(f.layout)

			case stateInputFormat:
				l, err := pack.Compile(m.formatInput.Value())
				if err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				return m, m.selectLayout(l)

			case stateInputValues:
				return m, m.encode

			case stateShowResult:
				m.reset()
			}
			return m, nil

		case "tab":
			if m.state == stateInputValues && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateInputFormat, stateInputValues, stateShowResult:
				m.reset()
			}
			return m, nil
		}

	case encodedMsg:
		m.result = msg.result
		m.err = msg.err
		m.state = stateShowResult
		return m, nil
	}

	switch m.state {
	case stateInputFormat:
		var cmd tea.Cmd
		m.formatInput, cmd = m.formatInput.Update(msg)
		return m, cmd

	case stateInputValues:
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) reset() {
	m.state = stateSelectFormat
	m.layout = nil
	m.inputs = nil
	m.result = ""
	m.err = nil
}

// selectLayout prepares one input per value slot. A layout without slots
// is encoded straight away.
func (m *interactiveModel) selectLayout(l *pack.Layout) tea.Cmd {
	m.layout = l
	m.inputs = make([]textinput.Model, l.Slots())
	for i := range m.inputs {
		f := l.SlotField(i)
		ti := textinput.New()
		ti.Placeholder = witschema.TypeString(witschema.SlotType(f))
		ti.Prompt = fmt.Sprintf("%d %s: ", i, f.TypeName())
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0

	if len(m.inputs) == 0 {
		return m.encode
	}
	m.state = stateInputValues
	return textinput.Blink
}

func (m *interactiveModel) encode() tea.Msg {
	args := make([]string, len(m.inputs))
	for i, input := range m.inputs {
		args[i] = input.Value()
	}

	values, err := parseValues(m.layout, args)
	if err != nil {
		return encodedMsg{err: err}
	}
	data, err := m.enc.Encode(m.layout, values)
	if err != nil {
		return encodedMsg{err: err}
	}
	decoded, err := m.layout.Decode(data)
	if err != nil {
		return encodedMsg{err: err}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", hex.EncodeToString(data))
	for i, v := range decoded {
		fmt.Fprintf(&b, "%d %s = %s\n", i, m.layout.SlotField(i).TypeName(), displayValue(v))
	}
	return encodedMsg{result: b.String()}
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("structpack"))
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectFormat:
		b.WriteString("Select a format to encode:\n\n")
		for i, f := range m.formats {
			line := m.formatEntry(f)
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter choose • q quit"))

	case stateInputFormat:
		b.WriteString(m.formatInput.View())
		b.WriteString("\n")
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter compile • esc back"))

	case stateInputValues:
		b.WriteString(fmt.Sprintf("Encoding %s  %s\n\n",
			formatStyle.Render(m.layout.Format()),
			typeStyle.Render(witschema.Signature(m.layout))))
		for _, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter encode • esc back"))

	case stateShowResult:
		b.WriteString(fmt.Sprintf("Result of %s (%d bytes):\n\n",
			formatStyle.Render(m.layout.Format()), m.layout.Size()))
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(resultStyle.Render(m.result))
		}
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter continue • q quit"))
	}

	return b.String()
}

func (m *interactiveModel) formatEntry(f formatInfo) string {
	if f.layout == nil {
		return f.name
	}
	line := formatStyle.Render(f.name) + " " + f.format + " " + typeStyle.Render(witschema.Signature(f.layout))
	if f.description != "" {
		line += " " + helpStyle.Render(f.description)
	}
	return line
}

func runInteractive(reg *registry.Registry, enc *pack.Encoder) error {
	p := tea.NewProgram(newInteractiveModel(reg, enc), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
