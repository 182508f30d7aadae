package display

import "github.com/charmbracelet/lipgloss"

// Styles contains styling for game output
type Styles struct {
	Header     lipgloss.Style
	SubHeader  lipgloss.Style
	Winner     lipgloss.Style
	Eliminated lipgloss.Style
	Pot        lipgloss.Style
	Muted      lipgloss.Style
	Bar        lipgloss.Style
	Border     lipgloss.Style
	Help       lipgloss.Style

	// Heat colours a balance relative to the table average, coldest first
	Heat []lipgloss.Style
}

// NewStyles creates the default set of styles
func NewStyles() *Styles {
	heat := []string{"#4A69BD", "#6A89CC", "#96CEB4", "#FFEAA7", "#FFB142", "#FF6B6B"}
	s := &Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#7D56F4")).
			Bold(true).
			Padding(0, 1),
		SubHeader: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),
		Winner: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true),
		Eliminated: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Strikethrough(true),
		Pot: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Bar: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#74B9FF")),
		Border: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			MarginTop(1),
	}
	for _, c := range heat {
		s.Heat = append(s.Heat, lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Padding(0, 1))
	}
	return s
}

// heat picks the style for a balance. The average balance lands in the
// middle of the scale and twice the average or more is the hottest.
func (s *Styles) heat(funds, average float64) lipgloss.Style {
	if len(s.Heat) == 0 || average <= 0 {
		return lipgloss.NewStyle().Padding(0, 1)
	}
	i := int(funds / (2 * average) * float64(len(s.Heat)))
	i = max(0, min(i, len(s.Heat)-1))
	return s.Heat[i]
}
