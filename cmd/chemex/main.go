// Command chemex simulates NMR relaxation-dispersion profiles (CEST, CPMG)
// from an experiment metadata file and a directory of measurement files.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aestelle/ChemEx/cest"
	"github.com/aestelle/ChemEx/cpmg"
	"github.com/aestelle/ChemEx/ingest"
	"github.com/aestelle/ChemEx/liouville"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "chemex",
		Short:         "Simulate NMR chemical-exchange relaxation-dispersion profiles",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newSimulateCmd())

	return root
}

func newSimulateCmd() *cobra.Command {
	var (
		configPath string
		dataDir    string
		outPath    string
	)
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Predict intensity profiles with default parameters",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck // stderr flush

			out := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close() //nolint:errcheck // best-effort flush on exit
				out = f
			}

			return simulate(logger, out, configPath, dataDir)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "experiment metadata YAML (required)")
	cmd.Flags().StringVar(&dataDir, "data", ".", "directory holding the measurement files")
	cmd.Flags().StringVar(&outPath, "out", "", "write the prediction table to this file instead of stdout")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}

func simulate(logger *zap.Logger, out io.Writer, configPath, dataDir string) error {
	cfg, err := ingest.LoadExperimentConfig(configPath)
	if err != nil {
		logger.Error("loading experiment config", zap.String("path", configPath), zap.Error(err))
		return err
	}

	matches, err := filepath.Glob(filepath.Join(dataDir, "*.out"))
	if err != nil {
		return err
	}
	if len(matches) == 0 {
		logger.Warn("no measurement files found", zap.String("dir", dataDir))
		return nil
	}

	topology := cfg.Topology()
	params := liouville.DefaultParams(topology)
	logger.Info("simulating",
		zap.String("type", cfg.Type),
		zap.Stringer("topology", topology),
		zap.Int("profiles", len(matches)))

	for _, path := range matches {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		data, err := ingest.ReadProfileData(path)
		if err != nil {
			logger.Error("reading profile", zap.String("profile", name), zap.Error(err))
			return err
		}
		if cfg.Error == "auto" {
			noise := ingest.EstimateNoise(data)
			for i := range data.IntensityErrs {
				data.IntensityErrs[i] = noise
			}
		}

		var predicted []float64
		if strings.HasPrefix(cfg.Type, "cpmg") {
			predicted, err = simulateCPMG(name, data, cfg, params)
		} else {
			predicted, err = simulateCEST(name, data, cfg, params)
		}
		if err != nil {
			logger.Error("simulating profile", zap.String("profile", name), zap.Error(err))
			return err
		}

		fmt.Fprintf(out, "# %s\n", name)
		for i := range predicted {
			fmt.Fprintf(out, "%12.3f %12.5e %12.5e %12.5e\n",
				data.Conditions[i], data.Intensities[i], data.IntensityErrs[i], predicted[i])
		}
	}

	return nil
}

func simulateCEST(name string, data ingest.ProfileData, cfg ingest.ExperimentConfig, params liouville.Set) ([]float64, error) {
	b1, err := cfg.Distribution()
	if err != nil {
		return nil, err
	}
	profile, err := cest.NewProfile(name, data.Conditions, data.Intensities, data.IntensityErrs, cest.Config{
		Nucleus:    cfg.Nucleus,
		HLarmorFrq: cfg.HLarmorFrq,
		CarrierPPM: cfg.CarrierPPM,
		TimeT1:     cfg.TimeT1,
		TimeD1:     cfg.TimeD1,
		B1Frq:      cfg.B1Frq,
		B1:         b1,
		Topology:   cfg.Topology(),
	})
	if err != nil {
		return nil, err
	}

	return profile.Simulate(params)
}

func simulateCPMG(name string, data ingest.ProfileData, cfg ingest.ExperimentConfig, params liouville.Set) ([]float64, error) {
	profile, err := cpmg.NewProfile(name, data.Conditions, data.Intensities, data.IntensityErrs, cpmg.Config{
		Nucleus:     cfg.Nucleus,
		HLarmorFrq:  cfg.HLarmorFrq,
		CarrierPPM:  cfg.CarrierPPM,
		TimeT2:      cfg.TimeT2,
		Temperature: cfg.Temperature,
		Topology:    cfg.Topology(),
	})
	if err != nil {
		return nil, err
	}

	return profile.Simulate(params)
}
