// SPDX-License-Identifier: MIT

package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reconpca/detector"
	"github.com/katalvlaran/reconpca/synth"
)

// Report formats.
const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

func validFormat(f string) bool {
	return f == formatTable || f == formatJSON || f == formatYAML
}

// anomaly is one flagged sample.
type anomaly struct {
	Rank     int     `json:"rank" yaml:"rank"`
	Index    int     `json:"index" yaml:"index"`
	Score    float64 `json:"score" yaml:"score"`
	Injected bool    `json:"injected" yaml:"injected"`
}

// report is the serialized outcome of one detect run.
type report struct {
	RunID         string    `json:"run_id" yaml:"run_id"`
	Samples       int       `json:"samples" yaml:"samples"`
	Features      int       `json:"features" yaml:"features"`
	Solver        string    `json:"solver" yaml:"solver"`
	Seed          uint64    `json:"seed" yaml:"seed"`
	Contamination float64   `json:"contamination" yaml:"contamination"`
	Ratios        []float64 `json:"ratios" yaml:"ratios"`
	Injected      []int     `json:"injected" yaml:"injected"`
	Anomalies     []anomaly `json:"anomalies" yaml:"anomalies"`
	Precision     float64   `json:"precision" yaml:"precision"`
	Recall        float64   `json:"recall" yaml:"recall"`
}

func newReport(runID string, sc *synth.Scenario, cfg detector.Config, res *detector.Result) report {
	n, d := sc.X.Dims()
	rep := report{
		RunID:         runID,
		Samples:       n,
		Features:      d,
		Solver:        cfg.Solver().String(),
		Seed:          cfg.Seed(),
		Contamination: cfg.Contamination(),
		Ratios:        res.Ratios,
		Injected:      sc.Outliers,
		Anomalies:     make([]anomaly, len(res.Indices)),
	}

	var hits int
	for r, i := range res.Indices {
		injected := sc.IsOutlier(i)
		if injected {
			hits++
		}
		rep.Anomalies[r] = anomaly{Rank: r + 1, Index: i, Score: res.Scores[i], Injected: injected}
	}
	rep.Precision = ratio(hits, len(res.Indices))
	rep.Recall = ratio(hits, len(sc.Outliers))

	return rep
}

// ratio returns a/b, or 0 when b is 0.
func ratio(a, b int) float64 {
	if b == 0 {
		return 0
	}

	return float64(a) / float64(b)
}

func (r report) write(w io.Writer, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, r)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	default:
		return r.writeTable(w)
	}
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00FF99"))
	headStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#AAAAAA"))
	hitStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF99"))
	missStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87"))
)

func (r report) writeTable(w io.Writer) error {
	var err error
	printf := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	printf("%s\n", titleStyle.Render(fmt.Sprintf("RECONPCA %d×%d  solver=%s  c=%g  seed=%d  run=%s",
		r.Samples, r.Features, r.Solver, r.Contamination, r.Seed, r.RunID)))
	printf("cumulative ratios: %s\n\n", formatFloats(r.Ratios))
	printf("%s\n", headStyle.Render(fmt.Sprintf("%-5s %-7s %-12s %s", "RANK", "INDEX", "SCORE", "INJECTED")))
	for _, a := range r.Anomalies {
		mark := missStyle.Render("no")
		if a.Injected {
			mark = hitStyle.Render("yes")
		}
		printf("%-5d %-7d %-12.4f %s\n", a.Rank, a.Index, a.Score, mark)
	}
	printf("\ninjected: %v\n", r.Injected)
	printf("precision: %.2f  recall: %.2f\n", r.Precision, r.Recall)

	return err
}

func formatFloats(vs []float64) string {
	out := "["
	for i, v := range vs {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%.4f", v)
	}

	return out + "]"
}
