package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	angles "github.com/rmera/bondangles"
	"github.com/rmera/bondangles/chemjson"
	"github.com/rmera/bondangles/clash"
)

// Particles closer than this, in A, are reported as overlapping.
const overlapDist = 0.5

// loadSystem reads a system from a .json file, or from an xyz file,
// in which case bonds are assigned from covalent radii.
func loadSystem(path string) (*angles.System, error) {
	ext := strings.ToLower(filepath.Ext(angles.TrimCompression(path)))
	var S *angles.System
	switch ext {
	case ".json":
		f, err := angles.OpenSource(path)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", path, err)
		}
		defer f.Close()
		var jerr *chemjson.Error
		S, jerr = chemjson.DecodeSystem(f)
		if jerr != nil {
			return nil, fmt.Errorf("read %s: %w", path, jerr)
		}
	case ".xyz", ".extxyz":
		var err error
		S, err = angles.XYZRead(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		S.Bonds, err = assignBonds(S)
		if err != nil {
			return nil, fmt.Errorf("assign bonds: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown file type %q, use .xyz, .extxyz or .json", ext)
	}
	S.DegenerateTol = cfg.DegenerateTolerance
	if err := checkOverlaps(S); err != nil {
		return nil, err
	}
	logger.Debug("system loaded", "file", path, "particles", S.Len(), "bonds", len(S.Bonds), "periodic", S.Cell != nil)
	return S, nil
}

func assignBonds(S *angles.System) (angles.Bonds, error) {
	return angles.AssignBonds(S.Positions, S.Symbols, S.CellMatrix(), cfg.BondTolerance)
}

// checkOverlaps warns about particles closer than overlapDist, counting
// periodic images if the system has a cell.
func checkOverlaps(S *angles.System) error {
	over, err := clash.Overlapping(S.Positions, S.CellMatrix(), overlapDist)
	if err != nil {
		return fmt.Errorf("overlap check: %w", err)
	}
	if len(over) > 0 {
		logger.Warn("overlapping particles, angles involving bonds between them can't be computed", "pairs", len(over), "first", over[0], "periodic", S.Cell != nil)
	}
	if d, pair, err := clash.Closest(S.Positions, S.CellMatrix()); err == nil && S.Len() > 1 {
		logger.Debug("closest contact", "distance", d, "particles", pair)
	}
	return nil
}
