package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lox/liarsgame/internal/strategy"
)

// StrategiesCmd lists the strategies a player block can name
type StrategiesCmd struct{}

func (c *StrategiesCmd) Run(g *Globals) error {
	rows := make([][]string, 0, len(strategy.Kinds()))
	for _, k := range strategy.Kinds() {
		random := ""
		if k.Random {
			random = "yes"
		}
		rows = append(rows, []string{k.Name, random, k.Description})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Strategy", "Random", "Description").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow {
				return style.Bold(true)
			}
			return style
		})

	fmt.Fprintln(g.out(), t.Render())
	return nil
}
