package cli

import (
	"fmt"

	angles "github.com/rmera/bondangles"
	"github.com/rmera/bondangles/chemjson"
	"github.com/spf13/cobra"
)

var (
	anglesParticle     int
	anglesByIdentifier bool
	anglesBondIDs      bool
	anglesPretty       bool
	anglesJSON         bool
)

var anglesCmd = &cobra.Command{
	Use:   "angles FILE",
	Short: "Angles between all the pairs of bonds at one particle",
	Long: `Compute the angle between every pair of bonds at the selected particle.

The particle is selected by its index (starting at 0) or, with --by-identifier,
by its particle identifier. Bonds are listed by index or, with --bond-ids, by
bond identifier.

Examples:
  bondangles angles water.xyz -p 0
  bondangles angles system.json -p 1042 --by-identifier --bond-ids
  bondangles angles crystal.extxyz.gz -p 12 --pretty`,
	Args: cobra.ExactArgs(1),
	RunE: runAngles,
}

func init() {
	anglesCmd.Flags().IntVarP(&anglesParticle, "particle", "p", 0, "particle to compute the angles for")
	anglesCmd.Flags().BoolVarP(&anglesByIdentifier, "by-identifier", "i", false, "select the particle by identifier")
	anglesCmd.Flags().BoolVarP(&anglesBondIDs, "bond-ids", "b", false, "list bonds by identifier")
	anglesCmd.Flags().BoolVar(&anglesPretty, "pretty", false, "render a table")
	anglesCmd.Flags().BoolVar(&anglesJSON, "json", false, "JSON output")
	anglesCmd.MarkFlagsMutuallyExclusive("pretty", "json")
	_ = anglesCmd.MarkFlagRequired("particle")
}

func runAngles(cmd *cobra.Command, args []string) error {
	S, err := loadSystem(args[0])
	if err != nil {
		return err
	}
	center, err := S.ResolveParticle(anglesParticle, anglesByIdentifier)
	if err != nil {
		return fmt.Errorf("select particle: %w", err)
	}
	pairs, err := S.BondAngles(center)
	if err != nil {
		return fmt.Errorf("particle %d: %w", anglesParticle, err)
	}
	T, err := angles.NewAngleTable(S, anglesParticle, pairs, angles.TableOptions{ParticleIDs: anglesByIdentifier, BondIDs: anglesBondIDs})
	if err != nil {
		return fmt.Errorf("build table: %w", err)
	}
	logger.Info("angles computed", "particle", anglesParticle, "index", center, "angles", len(T.Rows))
	return writeTable(cmd, T, anglesPretty, anglesJSON)
}

func writeTable(cmd *cobra.Command, T *angles.AngleTable, pretty, asJSON bool) error {
	out := cmd.OutOrStdout()
	switch {
	case asJSON:
		if jerr := chemjson.EncodeTable(T, out); jerr != nil {
			return jerr
		}
		return nil
	case pretty:
		return renderTable(out, T, cfg.AnglePrecision)
	default:
		return angles.WriteReport(out, T)
	}
}
