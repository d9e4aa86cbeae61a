// SPDX-License-Identifier: MIT

package commands

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/reconpca/detector"
	"github.com/katalvlaran/reconpca/pca"
	"github.com/katalvlaran/reconpca/synth"
)

// Keys of the detect and compare commands.
const (
	keySamples       = "samples"
	keyFeatures      = "features"
	keyOutliers      = "outliers"
	keyShift         = "shift"
	keySeed          = "seed"
	keyContamination = "contamination"
	keySolver        = "solver"
	keyStrict        = "strict"
	keyOutput        = "output"
)

// defaultFlagContamination matches the default scenario: 5 outliers in 100 rows.
const defaultFlagContamination = 0.05

func newDetectCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Detect injected outliers in a seeded synthetic sample",
		Long: `detect builds a Gaussian sample with point outliers, runs the detector
and reports the flagged samples together with precision and recall against
the injected rows.`,
		Example: `  reconpca detect
  reconpca detect --samples 500 --features 8 --outliers 5 --contamination 0.01
  RECONPCA_SOLVER=jacobi reconpca detect --output json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDetect(v, cmd)
		},
	}

	f := cmd.Flags()
	addScenarioFlags(f)
	f.Float64(keyContamination, defaultFlagContamination, "fraction of samples to flag, in (0, 1]")
	f.String(keySolver, pca.DefaultSolver.String(), "decomposition backend (svd|eigensym|jacobi)")
	f.Bool(keyStrict, false, "enable the seeded series distinctness check")
	f.StringP(keyOutput, "o", formatTable, "report format (table|json|yaml)")

	return cmd
}

// addScenarioFlags declares the synthetic-sample flags shared by commands.
func addScenarioFlags(f *pflag.FlagSet) {
	f.Int(keySamples, 100, "number of samples (rows)")
	f.Int(keyFeatures, 5, "number of features (columns)")
	f.Int(keyOutliers, 5, "number of injected outliers")
	f.Float64(keyShift, synth.DefaultShift, "outlier displacement in standard deviations")
	f.Uint64(keySeed, detector.DefaultSeed, "seed for the sample and the strict-mode checks")
}

// scenarioFromFlags builds the synthetic sample described by the resolved flags.
func scenarioFromFlags(v *viper.Viper) (*synth.Scenario, error) {
	shift := v.GetFloat64(keyShift)
	if shift == 0 || math.IsNaN(shift) || math.IsInf(shift, 0) {
		return nil, fmt.Errorf("--%s: must be finite and non-zero", keyShift)
	}

	return synth.NewScenario(
		v.GetInt(keySamples), v.GetInt(keyFeatures), v.GetInt(keyOutliers),
		synth.WithSeed(v.GetUint64(keySeed)),
		synth.WithShift(shift),
	)
}

func runDetect(v *viper.Viper, cmd *cobra.Command) error {
	id := uuid.NewString()
	logger, err := newLogger(v, cmd, id)
	if err != nil {
		return err
	}
	format := v.GetString(keyOutput)
	if !validFormat(format) {
		return fmt.Errorf("--%s: unknown format %q", keyOutput, format)
	}
	solver, err := pca.ParseSolver(v.GetString(keySolver))
	if err != nil {
		return fmt.Errorf("--%s: %w", keySolver, err)
	}

	sc, err := scenarioFromFlags(v)
	if err != nil {
		return err
	}
	n, d := sc.X.Dims()
	logger.Info().
		Int("samples", n).
		Int("features", d).
		Ints("injected", sc.Outliers).
		Msg("scenario generated")

	opts := []detector.Option{
		detector.WithContamination(v.GetFloat64(keyContamination)),
		detector.WithSeed(v.GetUint64(keySeed)),
		detector.WithSolver(solver),
		detector.WithLogger(logger),
	}
	if v.GetBool(keyStrict) {
		opts = append(opts, detector.WithStrictInvariants())
	}
	cfg := detector.NewConfig(opts...)

	res, err := detector.Detect(sc.X, cfg)
	if err != nil {
		logger.Error().Err(err).Msg("detection failed")
		return err
	}

	rep := newReport(id, sc, cfg, res)
	logger.Info().
		Int("flagged", len(rep.Anomalies)).
		Float64("precision", rep.Precision).
		Float64("recall", rep.Recall).
		Msg("detection finished")

	return rep.write(cmd.OutOrStdout(), format)
}
