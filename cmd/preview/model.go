package main

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bbxsynth/chipvoice/pkg/param"
)

// pianoKeys lays a two-octave QWERTY piano over the keyboard the same
// way abytetracker's tracker-entry keymap does, low row then high row.
var pianoKeys = map[string]int16{
	"z": 0, "s": 1, "x": 2, "d": 3, "c": 4, "v": 5,
	"g": 6, "b": 7, "h": 8, "n": 9, "j": 10, "m": 11,
	"q": 12, "2": 13, "w": 14, "3": 15, "e": 16, "r": 17,
	"5": 18, "t": 19, "6": 20, "y": 21, "7": 22, "u": 23,
	"i": 24, "9": 25, "o": 26, "0": 27, "p": 28,
}

func keyToNote(key string, octave int) int16 {
	if n, ok := pianoKeys[key]; ok {
		return int16(octave*12) + n
	}
	return -1
}

// noteTriggerTicks is how long a keypress-triggered note sustains
// before its own release fires, since a terminal never reports key-up.
const noteTriggerTicks = 24 // ~0.2s of envelope ticks at the instrument's default 150 bpm

// Model is cmd/preview's bubbletea model: a QWERTY piano that drives
// Runner directly, plus a small parameter-knob list for live edits.
type Model struct {
	runner *Runner
	params []uint32 // registration order of every parameter's global id
	cursor int
	octave int
	status string
	width  int
	height int
	quit   bool
}

// NewModel builds the preview model over an already-running Runner;
// audio keeps playing via AudioSink independent of TUI frame rate.
func NewModel(runner *Runner) Model {
	var ids []uint32
	runner.Params.ForEach(func(globalID uint32, _ param.Descriptor, _ float64) {
		ids = append(ids, globalID)
	})
	return Model{
		runner: runner,
		params: ids,
		octave: 4,
		status: "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.EnterAltScreen
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "ctrl+c", "esc":
		m.quit = true
		return m, tea.Quit
	case "up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.params)-1 {
			m.cursor++
		}
		return m, nil
	case "left", "right":
		return m.nudgeParam(key == "right"), nil
	case "]":
		if m.octave < 8 {
			m.octave++
		}
		return m, nil
	case "[":
		if m.octave > 0 {
			m.octave--
		}
		return m, nil
	}

	if note := keyToNote(key, m.octave); note >= 0 {
		// Terminals report key-down only, never key-up, so each press is
		// a fixed-length trigger rather than a sustain/release pair.
		m.runner.Trigger(note, 0.9, noteTriggerTicks)
		m.status = fmt.Sprintf("note %d", note)
		return m, nil
	}
	return m, nil
}

// nudgeParam steps the currently selected parameter by 1/100th of its
// range, the same coarse-adjust granularity a MIDI CC would give.
func (m Model) nudgeParam(up bool) Model {
	if len(m.params) == 0 {
		return m
	}
	globalID := m.params[m.cursor]
	desc, ok := m.runner.Params.Info(globalID)
	if !ok {
		return m
	}
	value, _ := m.runner.Params.Get(globalID)
	step := (desc.Max - desc.Min) / 100
	if !up {
		step = -step
	}
	m.runner.QueueParam(globalID, value+step)
	m.status = fmt.Sprintf("%s -> %.3f", desc.Name, value+step)
	return m
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("chipvoice preview"))
	b.WriteString(fmt.Sprintf("  octave:%d  voices:%d\n\n", m.octave, m.runner.Instrument.ActiveVoiceCount()))

	for i, globalID := range m.params {
		desc, ok := m.runner.Params.Info(globalID)
		if !ok {
			continue
		}
		value, _ := m.runner.Params.Get(globalID)
		line := fmt.Sprintf("%-16s %s", desc.Name, param.ValueToText(desc, value))
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + line))
		} else {
			b.WriteString(dimStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("zsxdcvgbhnjm/q2w3er5t6y7u: play  up/down: select  left/right: adjust  [/]: octave  esc: quit"))
	return b.String()
}
