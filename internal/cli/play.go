package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/SeamusWaldron/cubesim"
	"github.com/SeamusWaldron/cubesim/internal/logging"
	"github.com/SeamusWaldron/cubesim/internal/recorder"
)

var (
	playNoRecord bool
	playLogFile  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube",
	Long: `Start an interactive TUI with a cube you turn from the keyboard.

Keyboard shortcuts:
  r l m u d e f b s  - Turn that layer clockwise
  R L M U D E F B S  - Turn that layer counter-clockwise
  space              - Scramble (starts a new timed session)
  enter              - Play the solution back
  ctrl+r             - Reset to solved
  q/Esc              - Quit

The timer starts with the first move after a scramble and stops when the
cube is solved. Sessions are stored in the database unless --no-record.

Logs would draw over the TUI, so play writes them only to --log-file.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
	playCmd.Flags().BoolVar(&playNoRecord, "no-record", false, "Do not store sessions")
	playCmd.Flags().StringVar(&playLogFile, "log-file", "", "Append logs to this file (default: discard)")
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	phaseStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerStyles colors each sticker by its solved face.
var stickerStyles = map[cubesim.Color]lipgloss.Style{
	cubesim.White:  lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	cubesim.Yellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	cubesim.Green:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	cubesim.Blue:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	cubesim.Red:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	cubesim.Orange: lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// Messages
type tickMsg time.Time
type settledMsg struct{}

// Model
type playModel struct {
	tracker      *cubesim.Tracker
	session      *recorder.Session
	moveDuration time.Duration
	log          *slog.Logger

	// State
	moves    []cubesim.Move // user moves since the last scramble
	err      error
	quitting bool
}

func newPlayModel(tracker *cubesim.Tracker, session *recorder.Session, moveDuration time.Duration) *playModel {
	m := &playModel{
		tracker:      tracker,
		session:      session,
		moveDuration: moveDuration,
		log:          logging.NewNop(),
	}
	if session != nil {
		session.Attach(tracker)
	}
	return m
}

func (m *playModel) Init() tea.Cmd {
	return m.tickCmd()
}

func (m *playModel) tickCmd() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// settleCmd releases the move mutex once the move's animation time is over.
func (m *playModel) settleCmd() tea.Cmd {
	if m.moveDuration <= 0 {
		return func() tea.Msg { return settledMsg{} }
	}
	return tea.Tick(m.moveDuration, func(time.Time) tea.Msg {
		return settledMsg{}
	})
}

func (m *playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tickMsg:
		return m, m.tickCmd()

	case settledMsg:
		m.tracker.Settle()
		if m.tracker.Pending() > 0 {
			return m, m.step()
		}
		return m, nil
	}

	return m, nil
}

func (m *playModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.quit()
		return m, tea.Quit

	case " ":
		return m, m.scramble()

	case "enter":
		return m, m.playback()

	case "ctrl+r":
		if m.tracker.Engine().Rotating() || m.tracker.Pending() > 0 {
			return m, nil
		}
		m.abandon()
		m.tracker.Reset()
		m.moves = nil
		m.err = nil
		return m, nil
	}

	mv, ok := keyToMove(msg.String())
	if !ok {
		return m, nil
	}
	if err := m.tracker.Submit(mv); err != nil {
		if !errors.Is(err, cubesim.ErrRotating) {
			m.err = err
		}
		return m, nil
	}
	m.err = nil
	m.moves = append(m.moves, mv)
	return m, m.settleCmd()
}

func (m *playModel) scramble() tea.Cmd {
	if m.tracker.Engine().Rotating() || m.tracker.Pending() > 0 {
		return nil
	}
	m.abandon()
	moves, err := m.tracker.Scramble()
	if err != nil {
		m.err = err
		return nil
	}
	m.moves = nil
	m.err = nil
	if m.session != nil {
		if _, err := m.session.Start(moves); err != nil {
			m.err = err
		}
	}
	return nil
}

func (m *playModel) playback() tea.Cmd {
	if m.tracker.Engine().Rotating() || m.tracker.Pending() > 0 {
		return nil
	}
	if len(m.tracker.Playback()) == 0 {
		return nil
	}
	return m.step()
}

// step applies the next solution move and schedules its settle.
func (m *playModel) step() tea.Cmd {
	if _, _, err := m.tracker.Step(); err != nil {
		m.err = err
		return nil
	}
	return m.settleCmd()
}

// summary describes the session that just ended, if any.
func (m *playModel) summary() string {
	r, ok := m.tracker.LastResult()
	if !ok {
		return ""
	}
	if r.Undone {
		return fmt.Sprintf("Undone after %s and %d moves", formatDuration(r.Duration), r.Moves)
	}
	return fmt.Sprintf("Solved in %s with %d moves", formatDuration(r.Duration), r.Moves)
}

// abandon closes an open recording as unsolved.
func (m *playModel) abandon() {
	if m.session == nil {
		return
	}
	if err := m.session.Abandon(m.tracker.Elapsed()); err != nil {
		m.log.Error("abandon session failed", "error", err)
	}
}

func (m *playModel) quit() {
	m.abandon()
	m.quitting = true
}

func (m *playModel) View() string {
	if m.quitting {
		return "Goodbye!\n"
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("cubesim"))
	b.WriteString("\n\n")

	if m.session != nil && m.session.State() == recorder.StateRecording {
		b.WriteString(statusStyle.Render(fmt.Sprintf("Recording session %s", m.session.SolveID()[:8])))
		b.WriteString("\n")
	}

	switch {
	case m.tracker.Pending() > 0:
		b.WriteString(phaseStyle.Render(fmt.Sprintf("PLAYBACK: %d moves left", m.tracker.Pending())))
	case m.tracker.Running():
		b.WriteString(phaseStyle.Render(fmt.Sprintf("SOLVING: %s", formatDuration(m.tracker.Elapsed()))))
	case m.tracker.Engine().Ready():
		b.WriteString(phaseStyle.Render("READY - make a move to start the timer"))
	case m.tracker.IsSolved():
		b.WriteString(phaseStyle.Render("SOLVED"))
	default:
		b.WriteString(phaseStyle.Render("FREE PLAY"))
	}
	b.WriteString("\n")

	if !m.tracker.IsSolved() {
		b.WriteString(fmt.Sprintf("Phase: %s (best so far: %s)\n",
			m.tracker.CurrentPhase().DisplayName(), m.tracker.HighestPhase().DisplayName()))
	}
	b.WriteString("\n")

	b.WriteString(renderNet(m.tracker.Engine().Facelets()))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("Moves: %d\n", m.tracker.Moves()))
	if len(m.moves) > 0 {
		b.WriteString(moveStyle.Render(tailMoves(m.moves, 20)))
		b.WriteString("\n")
	}

	if summary := m.summary(); summary != "" {
		b.WriteString("\n")
		b.WriteString(phaseStyle.Render(summary))
		b.WriteString("\n")
	}
	if best := m.tracker.Best(); best > 0 {
		b.WriteString(statusStyle.Render("Best: " + formatDuration(best)))
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("rlmudefbs: turn  SHIFT: reverse  space: scramble  enter: solve  ctrl+r: reset  q: quit"))
	b.WriteString("\n")

	return b.String()
}

// renderNet renders the unfolded cube with colored stickers.
func renderNet(fl cubesim.Facelets) string {
	var b strings.Builder
	sticker := func(c cubesim.Color) string {
		return stickerStyles[c].Render("■") + " "
	}

	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(fl[cubesim.FaceU][row*3+col]))
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		for _, face := range []cubesim.Face{cubesim.FaceL, cubesim.FaceF, cubesim.FaceR, cubesim.FaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(sticker(fl[face][row*3+col]))
			}
		}
		b.WriteString("\n")
	}
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(sticker(fl[cubesim.FaceD][row*3+col]))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// playLogger returns the logger for the TUI. Output never goes to the
// terminal: it is appended to path through tea.LogToFile, or discarded when
// path is empty.
func playLogger(path string, level slog.Level) (*slog.Logger, func() error, error) {
	if path == "" {
		return logging.NewNop(), func() error { return nil }, nil
	}
	f, err := tea.LogToFile(path, "cubesim")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.NewWriter(f, level), f.Close, nil
}

func runPlay(cmd *cobra.Command, args []string) error {
	log, closeLog, err := playLogger(playLogFile, logLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	engine := cubesim.NewEngine(cfg.EngineOptions(log)...)
	tracker := cubesim.NewTracker(engine)

	var session *recorder.Session
	if !playNoRecord {
		db, err := openDB()
		if err != nil {
			return err
		}
		defer db.Close()
		session = recorder.NewSession(db, log)
	}

	m := newPlayModel(tracker, session, cfg.MoveDuration)
	m.log = log
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
