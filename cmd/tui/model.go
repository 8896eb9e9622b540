package tui

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/gigurra/dotdash/cmd/common/config"
	"github.com/gigurra/dotdash/cmd/common/export"
	"github.com/gigurra/dotdash/cmd/morse"
	"github.com/gigurra/dotdash/cmd/morse/signal"
)

// OutputFile is where ctrl+s saves the current result.
const OutputFile = "dotdash-output.txt"

// Direction selects how the input is converted.
type Direction int

const (
	DirectionAuto Direction = iota
	DirectionEncode
	DirectionDecode
)

func (d Direction) String() string {
	switch d {
	case DirectionEncode:
		return "text → morse"
	case DirectionDecode:
		return "morse → text"
	default:
		return "auto"
	}
}

func (d Direction) next() Direction {
	return (d + 1) % 3
}

type playbackDoneMsg struct {
	err error
}

type model struct {
	input     []rune
	output    string
	code      string // last Morse form, for playback
	decoded   bool
	direction Direction
	policy    morse.Case
	theme     Theme
	sound     bool
	status    string
	statusErr bool
	width     int

	player    *signal.Player
	timing    signal.Timing
	frequency float64
	saveDir   string
	copy      func(string) error
	save      func(path, result string) (string, error)
}

func initialModel(cfg *config.Config, player *signal.Player, saveDir string) model {
	return model{
		policy:    cfg.CasePolicy(),
		theme:     ThemeByName(cfg.Theme),
		sound:     cfg.Sound,
		player:    player,
		timing:    cfg.Timing(),
		frequency: cfg.Frequency,
		saveDir:   saveDir,
		copy:      export.Copy,
		save:      export.Save,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case playbackDoneMsg:
		switch {
		case msg.err == nil:
			m = m.info("playback finished")
		case errors.Is(msg.err, signal.ErrQueueFull):
			m = m.fail("playback queue full, try again")
		case !errors.Is(msg.err, signal.ErrClosed):
			m = m.info("playback stopped")
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "ctrl+c":
			if m.player != nil {
				m.player.Stop()
			}
			return m, tea.Quit
		case "enter":
			m = m.convert()
			if m.sound && !m.statusErr {
				return m.play()
			}
			return m, nil
		case "tab":
			m.direction = m.direction.next()
			return m.info("direction: " + m.direction.String()), nil
		case "ctrl+k":
			m.policy = m.policy.Next()
			m = m.info("case: " + string(m.policy))
			if m.decoded {
				m.output = morse.DecodeCase(m.code, m.policy)
			}
			return m, nil
		case "ctrl+t":
			m.theme = m.theme.Next()
			return m.info("theme: " + m.theme.Name), nil
		case "ctrl+b":
			m.sound = !m.sound
			return m.info(fmt.Sprintf("sound: %s", onOff(m.sound))), nil
		case "ctrl+p":
			return m.play()
		case "ctrl+y":
			if err := m.copy(m.output); err != nil {
				return m.fail(err.Error()), nil
			}
			return m.info("copied to clipboard"), nil
		case "ctrl+s":
			path, err := m.save(filepath.Join(m.saveDir, OutputFile), m.output)
			if err != nil {
				return m.fail(err.Error()), nil
			}
			return m.info("saved to " + path), nil
		case "ctrl+u":
			m.input = nil
			return m, nil
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
			return m, nil
		}

		switch msg.Type {
		case tea.KeySpace:
			m.input = append(m.input, ' ')
		case tea.KeyRunes:
			m.input = append(m.input, msg.Runes...)
		}
		return m, nil
	}
	return m, nil
}

// convert runs the current input through the codec in the chosen direction.
func (m model) convert() model {
	text := strings.TrimSpace(string(m.input))
	if text == "" {
		return m.fail("empty input: please enter text to convert")
	}

	decode := m.direction == DirectionDecode ||
		(m.direction == DirectionAuto && morse.IsMorse(text))
	if decode {
		m.code = text
		m.decoded = true
		m.output = morse.DecodeCase(text, m.policy)
		return m.info("decoded")
	}
	m.output = morse.Encode(text)
	m.code = m.output
	m.decoded = false
	return m.info("encoded")
}

func (m model) play() (model, tea.Cmd) {
	if m.player == nil {
		return m.fail("audio unavailable"), nil
	}
	if m.code == "" {
		return m.fail("nothing to play, press enter first"), nil
	}
	pb := m.player.PlayTiming(m.code, m.timing, m.frequency)
	return m.info("playing..."), func() tea.Msg {
		return playbackDoneMsg{err: pb.Wait()}
	}
}

func (m model) info(status string) model {
	m.status = status
	m.statusErr = false
	return m
}

func (m model) fail(status string) model {
	m.status = status
	m.statusErr = true
	return m
}

func (m model) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title.Render("dotdash"))
	b.WriteString(t.Label.Render(fmt.Sprintf("  %s · case %s · sound %s · %s", m.direction, m.policy, onOff(m.sound), t.Name)))
	b.WriteString("\n\n")

	b.WriteString(t.Label.Render("Input"))
	b.WriteString("\n")
	b.WriteString(t.Input.Render(string(m.input) + "▏"))
	b.WriteString("\n\n")

	b.WriteString(t.Label.Render("Output"))
	b.WriteString("\n")
	output := t.Output
	// Outer padding plus the output border.
	if m.width > 8 {
		output = output.Width(m.width - 6)
	}
	b.WriteString(output.Render(m.output))
	b.WriteString("\n")

	if m.status != "" {
		style := t.Status
		if m.statusErr {
			style = t.Error
		}
		b.WriteString(style.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(t.Help.Render("enter convert · tab direction · ctrl+k case · ctrl+b sound · ctrl+p play · ctrl+y copy · ctrl+s save · ctrl+t theme · esc quit"))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
