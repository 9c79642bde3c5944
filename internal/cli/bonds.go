package cli

import (
	"fmt"
	"os"

	"github.com/rmera/bondangles/chemjson"
	"github.com/spf13/cobra"
)

var bondsOut string

var bondsCmd = &cobra.Command{
	Use:   "bonds FILE",
	Short: "Assign bonds and write a JSON system file",
	Long: `Read a system, assign bonds from covalent radii if it is an xyz file,
and write it as a JSON system file, which can then be edited and used as input.

Examples:
  bondangles bonds water.xyz --out water.json
  bondangles bonds crystal.extxyz.zst`,
	Args: cobra.ExactArgs(1),
	RunE: runBonds,
}

func init() {
	bondsCmd.Flags().StringVarP(&bondsOut, "out", "o", "", "output file (default: stdout)")
}

func runBonds(cmd *cobra.Command, args []string) error {
	S, err := loadSystem(args[0])
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if bondsOut != "" {
		f, err := os.Create(bondsOut)
		if err != nil {
			return fmt.Errorf("create %s: %w", bondsOut, err)
		}
		defer f.Close()
		out = f
	}
	if jerr := chemjson.EncodeSystem(S, out); jerr != nil {
		return jerr
	}
	logger.Info("bonds assigned", "particles", S.Len(), "bonds", len(S.Bonds))
	return nil
}
