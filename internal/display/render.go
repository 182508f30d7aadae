// Package display renders finished games and batch statistics for the
// terminal.
package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"

	"github.com/lox/liarsgame/internal/game"
	"github.com/lox/liarsgame/internal/statistics"
)

// absent marks a player who is no longer in the game
const absent = "·"

// RenderHistory renders the funds history of a game as a table with one row
// per round and one column per player, coloured by how each balance compares
// to the average. The player eliminated in a round is struck through.
func RenderHistory(result *game.Result, styles *Styles) string {
	if styles == nil {
		styles = NewStyles()
	}

	players := result.Players
	if len(players) == 0 {
		players = result.History.Players()
	}

	headers := append([]string{"Round"}, players...)
	rows := make([][]string, 0, len(result.History))
	cells := make([][]lipgloss.Style, 0, len(result.History))

	for i, snap := range result.History {
		row := []string{fmt.Sprint(snap.Round)}
		rowStyles := []lipgloss.Style{styles.Muted.Padding(0, 1)}

		var total float64
		for _, f := range snap.Funds {
			total += f
		}
		average := total / float64(max(1, len(snap.Funds)))

		eliminated := ""
		if i < len(result.Rounds) {
			eliminated = result.Rounds[i].Eliminated
		}

		for _, name := range players {
			funds, ok := snap.Funds[name]
			switch {
			case !ok:
				row = append(row, absent)
				rowStyles = append(rowStyles, styles.Muted.Padding(0, 1))
			case name == eliminated:
				row = append(row, formatFunds(funds))
				rowStyles = append(rowStyles, styles.Eliminated.Padding(0, 1))
			case name == result.Winner && len(snap.Funds) == 1:
				row = append(row, formatFunds(funds))
				rowStyles = append(rowStyles, styles.Winner.Padding(0, 1))
			default:
				row = append(row, formatFunds(funds))
				rowStyles = append(rowStyles, styles.heat(funds, average))
			}
		}
		rows = append(rows, row)
		cells = append(cells, rowStyles)
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow || row < 0 || row >= len(cells) || col >= len(cells[row]) {
				return styles.SubHeader.Padding(0, 1)
			}
			return cells[row][col]
		})

	return t.Render()
}

// RenderEliminations lists the players by finishing place, winner first.
func RenderEliminations(result *game.Result, styles *Styles) string {
	if styles == nil {
		styles = NewStyles()
	}

	var b strings.Builder
	b.WriteString(styles.Header.Render(fmt.Sprintf("Game %s", result.GameID)))
	if result.Seed != 0 {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("  seed %d", result.Seed)))
	}
	b.WriteString("\n\n")

	for i := len(result.Eliminations) - 1; i >= 0; i-- {
		name := result.Eliminations[i]
		place := result.Placement(name)
		line := fmt.Sprintf("%2d. %s", place, name)
		if name == result.Winner {
			b.WriteString(styles.Winner.Render(line + " (winner)"))
		} else {
			b.WriteString(line)
			b.WriteString(styles.Muted.Render(fmt.Sprintf("  out in round %d", i)))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// RenderRound describes how a single round was resolved.
func RenderRound(rec game.RoundRecord, styles *Styles) string {
	if styles == nil {
		styles = NewStyles()
	}

	var b strings.Builder
	b.WriteString(styles.SubHeader.Render(fmt.Sprintf("Round %d", rec.Round)))
	b.WriteString("\n")

	width := 0
	for _, c := range rec.Contributions {
		width = max(width, lipgloss.Width(c.Player))
	}

	for _, c := range rec.Contributions {
		line := fmt.Sprintf("  %-*s  %6.1f%% of %s = %s",
			width, c.Player, c.Fraction*100, formatFunds(c.Balance), formatFunds(c.Amount))
		if c.Player == rec.Eliminated {
			line = styles.Eliminated.Render(line) + styles.Muted.Render("  forfeits everything")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(rec.Tied) > 1 {
		b.WriteString(styles.Muted.Render(fmt.Sprintf("  tied at %s: %s", formatFunds(rec.Minimum), strings.Join(rec.Tied, ", "))))
		b.WriteString("\n")
	}
	b.WriteString(styles.Pot.Render(fmt.Sprintf("  pot %s, %s to each survivor", formatFunds(rec.Pot), formatFunds(rec.Share))))
	b.WriteString("\n")

	return b.String()
}

// RenderWinRates draws one bar per player, best first, scaled so that a win
// rate of 100% fills width cells.
func RenderWinRates(stats *statistics.Statistics, width int, styles *Styles) string {
	if styles == nil {
		styles = NewStyles()
	}
	if width <= 0 {
		width = 40
	}

	ranking := stats.Ranking()
	nameWidth := 0
	for _, p := range ranking {
		nameWidth = max(nameWidth, lipgloss.Width(p.Name))
	}

	var b strings.Builder
	b.WriteString(styles.Header.Render(fmt.Sprintf("Win rates over %s games", humanize.Comma(int64(stats.Games)))))
	b.WriteString("\n\n")

	for _, p := range ranking {
		filled := int(p.WinRate()*float64(width) + 0.5)
		filled = max(0, min(filled, width))
		bar := styles.Bar.Render(strings.Repeat("█", filled)) +
			styles.Muted.Render(strings.Repeat("░", width-filled))
		low, high := p.WinRateCI95()
		fmt.Fprintf(&b, "%-*s %s %5.1f%% %s\n",
			nameWidth, p.Name, bar, p.WinRate()*100,
			styles.Muted.Render(fmt.Sprintf("[%.1f%%, %.1f%%] %s", low*100, high*100, p.Strategy)))
	}

	return b.String()
}

func formatFunds(f float64) string {
	return humanize.FormatFloat("#,###.##", f)
}
