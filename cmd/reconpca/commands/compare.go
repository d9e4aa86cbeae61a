// SPDX-License-Identifier: MIT

package commands

import (
	"context"
	"fmt"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/reconpca/detector"
	"github.com/katalvlaran/reconpca/pca"
)

// solvers lists every backend compared by `reconpca compare`, reference first.
var solvers = []pca.Solver{pca.SolverSVD, pca.SolverEigenSym, pca.SolverJacobi}

// solverRun is the outcome of one backend against the reference.
type solverRun struct {
	Solver         string  `json:"solver" yaml:"solver"`
	MaxRatioDelta  float64 `json:"max_ratio_delta" yaml:"max_ratio_delta"`
	MaxScoreDelta  float64 `json:"max_score_delta" yaml:"max_score_delta"`
	SameAnomalies  bool    `json:"same_anomalies" yaml:"same_anomalies"`
	AnomaliesFound []int   `json:"anomalies" yaml:"anomalies"`
}

// comparison is the serialized outcome of `reconpca compare`.
type comparison struct {
	RunID    string      `json:"run_id" yaml:"run_id"`
	Samples  int         `json:"samples" yaml:"samples"`
	Features int         `json:"features" yaml:"features"`
	Runs     []solverRun `json:"runs" yaml:"runs"`
	Agree    bool        `json:"agree" yaml:"agree"`
}

func newCompareCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every decomposition backend on one scenario and compare them",
		Long: `compare runs the detector once per solver (svd, eigensym, jacobi) in
parallel on the same synthetic sample and reports the largest ratio and
score deviations from svd, and whether the flagged samples agree.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompare(cmd.Context(), v, cmd)
		},
	}

	f := cmd.Flags()
	addScenarioFlags(f)
	f.Float64(keyContamination, defaultFlagContamination, "fraction of samples to flag, in (0, 1]")
	f.StringP(keyOutput, "o", formatTable, "report format (table|json|yaml)")

	return cmd
}

func runCompare(ctx context.Context, v *viper.Viper, cmd *cobra.Command) error {
	id := uuid.NewString()
	logger, err := newLogger(v, cmd, id)
	if err != nil {
		return err
	}
	format := v.GetString(keyOutput)
	if !validFormat(format) {
		return fmt.Errorf("--%s: unknown format %q", keyOutput, format)
	}
	sc, err := scenarioFromFlags(v)
	if err != nil {
		return err
	}

	results := make([]*detector.Result, len(solvers))
	g, ctx := errgroup.WithContext(ctx)
	for i, s := range solvers {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			cfg := detector.NewConfig(
				detector.WithContamination(v.GetFloat64(keyContamination)),
				detector.WithSeed(v.GetUint64(keySeed)),
				detector.WithSolver(s),
				detector.WithLogger(logger.With().Stringer("solver", s).Logger()),
			)
			res, err := detector.Detect(sc.X, cfg)
			if err != nil {
				return fmt.Errorf("%s: %w", s, err)
			}
			results[i] = res
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		logger.Error().Err(err).Msg("comparison failed")
		return err
	}

	n, d := sc.X.Dims()
	cmp := compareResults(results)
	cmp.RunID, cmp.Samples, cmp.Features = id, n, d
	logger.Info().Bool("agree", cmp.Agree).Msg("comparison finished")

	return cmp.write(cmd.OutOrStdout(), format)
}

// compareResults measures every result against results[0].
func compareResults(results []*detector.Result) comparison {
	ref := results[0]
	cmp := comparison{Agree: true, Runs: make([]solverRun, len(results))}
	for i, res := range results {
		run := solverRun{
			Solver:         solvers[i].String(),
			MaxRatioDelta:  maxAbsDelta(ref.Ratios, res.Ratios),
			MaxScoreDelta:  maxAbsDelta(ref.Scores, res.Scores),
			SameAnomalies:  sameInts(ref.Indices, res.Indices),
			AnomaliesFound: res.Indices,
		}
		cmp.Agree = cmp.Agree && run.SameAnomalies
		cmp.Runs[i] = run
	}

	return cmp
}

func maxAbsDelta(a, b []float64) float64 {
	var m float64
	for i := range a {
		m = math.Max(m, math.Abs(a[i]-b[i]))
	}

	return m
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func (c comparison) write(w io.Writer, format string) error {
	switch format {
	case formatJSON:
		return writeJSON(w, c)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return err
		}
		return enc.Close()
	}

	if _, err := fmt.Fprintf(w, "%s\n", titleStyle.Render(fmt.Sprintf("RECONPCA compare %d×%d  run=%s", c.Samples, c.Features, c.RunID))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%s\n", headStyle.Render(fmt.Sprintf("%-9s %-12s %-12s %s", "SOLVER", "Δ RATIO", "Δ SCORE", "SAME"))); err != nil {
		return err
	}
	for _, r := range c.Runs {
		if _, err := fmt.Fprintf(w, "%-9s %-12.3e %-12.3e %v\n", r.Solver, r.MaxRatioDelta, r.MaxScoreDelta, r.SameAnomalies); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "agree: %v\n", c.Agree)

	return err
}
