package cli

import (
	"bufio"
	"fmt"

	angles "github.com/rmera/bondangles"
	"github.com/rmera/bondangles/chemgraph"
	"github.com/rmera/bondangles/chemjson"
	"github.com/spf13/cobra"
)

var (
	batchParticles    []int
	batchByIdentifier bool
	batchBondIDs      bool
	batchPretty       bool
	batchJSON         bool
	batchStdin        bool
)

var batchCmd = &cobra.Command{
	Use:   "batch FILE",
	Short: "Bond angles for many particles at once",
	Long: `Compute the bond angles for several particles concurrently.

By default, every particle with at least 2 bonds is processed. A failure
for one particle is reported and does not stop the others.

Examples:
  bondangles batch protein.xyz
  bondangles batch system.json --particles 3,8,12 --json
  echo '{"Particles":[3,8],"BondIDs":true}' | bondangles batch system.json --stdin --json`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().IntSliceVarP(&batchParticles, "particles", "p", nil, "particles to process (default: all with 2 or more bonds)")
	batchCmd.Flags().BoolVarP(&batchByIdentifier, "by-identifier", "i", false, "particles are given by identifier")
	batchCmd.Flags().BoolVarP(&batchBondIDs, "bond-ids", "b", false, "list bonds by identifier")
	batchCmd.Flags().BoolVar(&batchPretty, "pretty", false, "render tables")
	batchCmd.Flags().BoolVar(&batchJSON, "json", false, "JSON output, one object per particle")
	batchCmd.Flags().BoolVar(&batchStdin, "stdin", false, "read the particle options as one JSON line from stdin")
	batchCmd.MarkFlagsMutuallyExclusive("pretty", "json")
	batchCmd.MarkFlagsMutuallyExclusive("stdin", "particles")
}

// selection is a particle as given by the user, and its index, or the
// error found when resolving it.
type selection struct {
	given int
	index int
	err   error
}

// selectCenters resolves the particles given by the user or, if none,
// selects all the particles with at least 2 bonds.
func selectCenters(S *angles.System, given []int, byIdentifier bool) ([]selection, error) {
	if len(given) == 0 {
		if err := S.Validate(); err != nil {
			return nil, err
		}
		topo := chemgraph.FromSystem(S)
		logger.Debug("bond graph", "fragments", len(topo.Fragments()))
		ids, err := S.Particles(byIdentifier)
		if err != nil {
			return nil, err
		}
		centers := topo.Centers(2)
		ret := make([]selection, len(centers))
		for i, c := range centers {
			id, _ := ids.Identifier(c)
			ret[i] = selection{given: id, index: c}
		}
		return ret, nil
	}
	ret := make([]selection, len(given))
	for i, g := range given {
		idx, err := S.ResolveParticle(g, byIdentifier)
		ret[i] = selection{given: g, index: idx, err: err}
	}
	return ret, nil
}

// batchAngles computes the angles for all the valid selections concurrently,
// and returns the results in the order of sels.
func batchAngles(S *angles.System, sels []selection) []angles.Result {
	valid := make([]int, 0, len(sels))
	for _, s := range sels {
		if s.err == nil {
			valid = append(valid, s.index)
		}
	}
	res := S.BondAnglesConc(valid)
	ret := make([]angles.Result, len(sels))
	k := 0
	for i, s := range sels {
		if s.err != nil {
			ret[i] = angles.Result{Center: -1, Err: s.err}
			continue
		}
		ret[i] = res[k]
		k++
	}
	return ret
}

func runBatch(cmd *cobra.Command, args []string) error {
	S, err := loadSystem(args[0])
	if err != nil {
		return err
	}
	given, byID, bondIDs := batchParticles, batchByIdentifier, batchBondIDs
	if batchStdin {
		o, jerr := chemjson.DecodeOptions(bufio.NewReader(cmd.InOrStdin()))
		if jerr != nil {
			return fmt.Errorf("read options: %w", jerr)
		}
		given, byID, bondIDs = o.Particles, o.ByIdentifier, o.BondIDs
	}
	sels, err := selectCenters(S, given, byID)
	if err != nil {
		return fmt.Errorf("select particles: %w", err)
	}
	out := cmd.OutOrStdout()
	opts := angles.TableOptions{ParticleIDs: byID, BondIDs: bondIDs}
	all := make([]float64, 0, 3*len(sels))
	failed := 0
	for i, r := range batchAngles(S, sels) {
		given := sels[i].given
		if r.Err == nil {
			var T *angles.AngleTable
			T, r.Err = angles.NewAngleTable(S, given, r.Angles, opts)
			if r.Err == nil {
				all = append(all, T.Angles()...)
				if err := writeTable(cmd, T, batchPretty, batchJSON); err != nil {
					return err
				}
				continue
			}
		}
		failed++
		logger.Warn("particle skipped", "particle", given, "error", r.Err)
		if batchJSON {
			if jerr := chemjson.EncodeFailure(given, r.Err, out); jerr != nil {
				return jerr
			}
			continue
		}
		if err := renderFailure(out, given, r.Err); err != nil {
			return err
		}
	}
	s := angles.Summarize(all)
	logger.Info("batch done", "particles", len(sels), "failed", failed, "angles", s.N, "mean", s.Mean, "stddev", s.StdDev)
	return nil
}
