package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/game"
)

type screen int

const (
	screenMenu screen = iota
	screenChooseMark
	screenPlaying
	screenFinished
)

type matchSaver interface {
	Save(ctx context.Context, session game.Session) (*entity.GameRecord, error)
}

type engineMoveMsg struct {
	session game.Session
	err     error
}

type savedMsg struct {
	record *entity.GameRecord
	err    error
}

// Model is the terminal match driver: a menu, an optional mark choice, then the board.
type Model struct {
	ctx       context.Context
	saver     matchSaver
	moveDelay time.Duration

	screen   screen
	session  game.Session
	thinking bool
	notice   string
	record   *entity.GameRecord
}

func New(ctx context.Context, saver matchSaver, moveDelay time.Duration) Model {
	return Model{
		ctx:       ctx,
		saver:     saver,
		moveDelay: moveDelay,
		screen:    screenMenu,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "q" || msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(msg.String())
	case engineMoveMsg:
		m.thinking = false
		if msg.err != nil {
			m.notice = "engine error: " + msg.err.Error()
			return m, nil
		}
		m.session = msg.session
		cmd := m.continueMatch()
		return m, cmd
	case savedMsg:
		m.record = msg.record
		if msg.err != nil {
			m.notice = "could not save match: " + msg.err.Error()
		} else {
			m.notice = "match saved"
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(key string) (tea.Model, tea.Cmd) {
	switch m.screen {
	case screenMenu:
		switch key {
		case "1":
			return m.start(entity.KindAIvsAI, entity.Empty)
		case "2":
			m.screen = screenChooseMark
			m.notice = ""
		default:
			m.notice = "choose 1 or 2"
		}
	case screenChooseMark:
		switch strings.ToUpper(key) {
		case "X":
			return m.start(entity.KindAIvsHuman, entity.PlayerX)
		case "O":
			return m.start(entity.KindAIvsHuman, entity.PlayerO)
		default:
			m.notice = "choose X or O"
		}
	case screenPlaying:
		return m.humanMove(key)
	case screenFinished:
		if key == "enter" {
			m.screen = screenMenu
			m.notice = ""
			m.record = nil
		}
	}

	return m, nil
}

func (m Model) start(kind entity.MatchKind, human entity.Mark) (tea.Model, tea.Cmd) {
	session, err := game.NewSession(kind, human)
	if err != nil {
		m.notice = err.Error()
		return m, nil
	}

	m.session = session
	m.screen = screenPlaying
	m.notice = ""
	m.record = nil

	cmd := m.continueMatch()
	return m, cmd
}

func (m Model) humanMove(key string) (tea.Model, tea.Cmd) {
	if m.thinking || !m.session.IsHumanTurn() {
		return m, nil
	}

	if len(key) != 1 || key[0] < '0' || key[0] > '8' {
		m.notice = "press a cell number from 0 to 8"
		return m, nil
	}

	next, err := game.Advance(m.session, game.At(int(key[0]-'0')))
	if err != nil {
		m.notice = fmt.Sprintf("cell %s is not available, try again", key)
		return m, nil
	}

	m.session = next
	m.notice = ""

	cmd := m.continueMatch()
	return m, cmd
}

// continueMatch schedules the engine move or the save. It returns nil while the human is to move.
func (m *Model) continueMatch() tea.Cmd {
	if m.session.IsOver() {
		m.screen = screenFinished
		return m.save(m.session)
	}

	if m.session.IsHumanTurn() {
		return nil
	}

	m.thinking = true

	return m.engineMove(m.session)
}

func (m Model) engineMove(session game.Session) tea.Cmd {
	move := func() tea.Msg {
		next, err := game.Advance(session, game.Input{})
		return engineMoveMsg{session: next, err: err}
	}

	if m.moveDelay <= 0 {
		return move
	}

	return tea.Tick(m.moveDelay, func(time.Time) tea.Msg { return move() })
}

func (m Model) save(session game.Session) tea.Cmd {
	ctx, saver := m.ctx, m.saver

	return func() tea.Msg {
		record, err := saver.Save(ctx, session)
		return savedMsg{record: record, err: err}
	}
}
