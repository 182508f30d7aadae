package simulator

import (
	"github.com/lox/liarsgame/internal/fileutil"
)

// ReportFile is the JSON form of a batch report.
type ReportFile struct {
	Seed      int64          `json:"seed"`
	Games     int            `json:"games"`
	ElapsedMS int64          `json:"elapsed_ms"`
	Rounds    RoundsSummary  `json:"rounds"`
	Players   []PlayerReport `json:"players"`
	Seeds     []int64        `json:"seeds,omitempty"`
}

// RoundsSummary describes game length across the batch.
type RoundsSummary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	P90    float64 `json:"p90"`
}

// PlayerReport is one seat's line in the report, best first.
type PlayerReport struct {
	Name          string  `json:"name"`
	Strategy      string  `json:"strategy"`
	Games         int     `json:"games"`
	Wins          int     `json:"wins"`
	WinRate       float64 `json:"win_rate"`
	WinRateLow    float64 `json:"win_rate_ci_low"`
	WinRateHigh   float64 `json:"win_rate_ci_high"`
	MeanPlacement float64 `json:"mean_placement"`
	PlacementLow  float64 `json:"mean_placement_ci_low"`
	PlacementHigh float64 `json:"mean_placement_ci_high"`
}

// NewReportFile flattens a report for export. Per-game seeds are included
// when withSeeds is set.
func NewReportFile(report *Report, withSeeds bool) ReportFile {
	stats := report.Stats
	out := ReportFile{
		Seed:      report.Seed,
		Games:     stats.Games,
		ElapsedMS: report.Elapsed.Milliseconds(),
		Rounds: RoundsSummary{
			Mean:   stats.Rounds.Mean(),
			Median: stats.Rounds.Median(),
			P90:    stats.Rounds.Percentile(0.9),
		},
	}
	for _, p := range stats.Ranking() {
		low, high := p.WinRateCI95()
		placeLow, placeHigh := p.Placements.ConfidenceInterval95()
		out.Players = append(out.Players, PlayerReport{
			Name:          p.Name,
			Strategy:      p.Strategy,
			Games:         p.Games,
			Wins:          p.Wins,
			WinRate:       p.WinRate(),
			WinRateLow:    low,
			WinRateHigh:   high,
			MeanPlacement: p.Placements.Mean(),
			PlacementLow:  placeLow,
			PlacementHigh: placeHigh,
		})
	}
	if withSeeds {
		out.Seeds = stats.Seeds
	}
	return out
}

// WriteReport writes the report as JSON, replacing filename atomically.
func WriteReport(filename string, report *Report, withSeeds bool) error {
	return fileutil.WriteJSON(filename, NewReportFile(report, withSeeds))
}
