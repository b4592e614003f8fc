package cli

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/entity"
)

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString("Jogo da velha\n\n")

	switch m.screen {
	case screenMenu:
		sb.WriteString("1) IA x IA\n2) IA x Humano\n")
	case screenChooseMark:
		sb.WriteString("Play as X or O? X moves first.\n")
	case screenPlaying, screenFinished:
		sb.WriteString(renderBoard(m.session.Board))
		sb.WriteString("\n")
		if n := len(m.session.Actions); n > 0 {
			last := m.session.Actions[n-1]
			sb.WriteString(fmt.Sprintf("%s took the %s.\n", last.Player, entity.PositionLabel(last.Position)))
		}
		sb.WriteString(m.status())
	}

	if m.notice != "" {
		sb.WriteString("\n" + m.notice + "\n")
	}

	if m.screen == screenFinished {
		sb.WriteString("\nPress enter for the menu.")
	}

	sb.WriteString("\nPress q to quit.\n")

	return sb.String()
}

func (m Model) status() string {
	switch {
	case m.session.Result == entity.ResultDraw:
		return "Draw.\n"
	case m.session.Result.IsTerminal():
		return fmt.Sprintf("%s wins.\n", m.session.Result.Winner())
	case m.session.IsHumanTurn():
		return fmt.Sprintf("Your move (%s): press 0-8.\n", m.session.Turn)
	default:
		return fmt.Sprintf("%s is thinking...\n", m.session.Turn)
	}
}

// renderBoard shows empty cells by their index so the player knows which key to press.
func renderBoard(board entity.Board) string {
	var sb strings.Builder

	for row := 0; row < 3; row++ {
		if row > 0 {
			sb.WriteString("---+---+---\n")
		}

		for col := 0; col < 3; col++ {
			pos := row*3 + col
			cell := string(board[pos])
			if board[pos] == entity.Empty {
				cell = fmt.Sprint(pos)
			}

			sb.WriteString(" " + cell + " ")
			if col < 2 {
				sb.WriteString("|")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}
