package cli

import (
	"encoding/json"
	"fmt"

	"github.com/rmera/bondangles/chemplot"
	"github.com/rmera/bondangles/histo"
	"github.com/spf13/cobra"
)

var (
	histoOut          string
	histoBins         int
	histoParticles    []int
	histoByIdentifier bool
	histoNormalize    bool
	histoPerParticle  bool
	histoJSON         bool
)

var histogramCmd = &cobra.Command{
	Use:   "histogram FILE",
	Short: "Plot the distribution of bond angles",
	Long: `Collect the bond angles at the given particles (default: all the particles
with at least 2 bonds) and plot their distribution over [0,180] degrees.
The plot format is taken from the extension of --out.

Examples:
  bondangles histogram water_box.extxyz --out angles.png
  bondangles histogram system.json --bins 90 --out angles.svg
  bondangles histogram system.json --per-particle --json`,
	Args: cobra.ExactArgs(1),
	RunE: runHistogram,
}

func init() {
	histogramCmd.Flags().StringVarP(&histoOut, "out", "o", "angles.png", "output plot file")
	histogramCmd.Flags().IntVarP(&histoBins, "bins", "n", 0, "number of bins (default from config)")
	histogramCmd.Flags().IntSliceVarP(&histoParticles, "particles", "p", nil, "particles to include (default: all with 2 or more bonds)")
	histogramCmd.Flags().BoolVarP(&histoByIdentifier, "by-identifier", "i", false, "particles are given by identifier")
	histogramCmd.Flags().BoolVar(&histoNormalize, "normalize", false, "plot fractions instead of counts")
	histogramCmd.Flags().BoolVar(&histoPerParticle, "per-particle", false, "also print the histogram of each particle")
	histogramCmd.Flags().BoolVar(&histoJSON, "json", false, "print the histograms as JSON")
}

func runHistogram(cmd *cobra.Command, args []string) error {
	S, err := loadSystem(args[0])
	if err != nil {
		return err
	}
	bins := histoBins
	if bins <= 0 {
		bins = cfg.HistogramBins
	}
	sels, err := selectCenters(S, histoParticles, histoByIdentifier)
	if err != nil {
		return fmt.Errorf("select particles: %w", err)
	}
	sets := make([]chemplot.AngleSet, 0, len(sels))
	for i, r := range batchAngles(S, sels) {
		if r.Err != nil {
			logger.Warn("particle skipped", "particle", sels[i].given, "error", r.Err)
			continue
		}
		set := chemplot.AngleSet{ID: sels[i].given, Angles: make([]float64, len(r.Angles))}
		for j, p := range r.Angles {
			set.Angles[j] = p.Angle
		}
		sets = append(sets, set)
	}
	total, each, err := chemplot.AngleHistogram(sets, bins, histoNormalize, "Bond angles", histoOut)
	if err != nil {
		return fmt.Errorf("plot histogram: %w", err)
	}
	logger.Info("histogram written", "file", histoOut, "particles", len(each), "angles", total.Total(), "bins", bins)
	out := []*histo.Data{total}
	if histoPerParticle {
		out = append(out, each...)
	}
	for _, D := range out {
		if histoJSON {
			err = json.NewEncoder(cmd.OutOrStdout()).Encode(D)
		} else {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), D.String())
		}
		if err != nil {
			return err
		}
	}
	return nil
}
