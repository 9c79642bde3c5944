package angles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const waterxyz = `3
Lattice="12 0 0 0 12 0 0 0 15" Properties=species:S:1:pos:R:3
O 0.000 0.000 0.000
H 0.757 0.586 0.000
H -0.757 0.586 0.000
`

func TestXYZReadFrom(Te *testing.T) {
	S, err := XYZReadFrom(strings.NewReader(waterxyz))
	require.NoError(Te, err)
	assert.Equal(Te, 3, S.Len())
	assert.Equal(Te, []string{"O", "H", "H"}, S.Symbols)
	assert.Equal(Te, []float64{0.757, 0.586, 0}, S.Positions.Vec(nil, 1))
	require.NotNil(Te, S.Cell)
	assert.Equal(Te, 12.0, S.Cell.At(0, 0))
	assert.Equal(Te, 15.0, S.Cell.At(2, 2))
	assert.Equal(Te, 0.0, S.Cell.At(0, 1))
	assert.Nil(Te, S.ParticleIDs)
	assert.Empty(Te, S.Bonds)

	withids := "2\n\nC 0 0 0 11\nC 1.5 0 0 12\n"
	S, err = XYZReadFrom(strings.NewReader(withids))
	require.NoError(Te, err)
	assert.Nil(Te, S.Cell)
	assert.Equal(Te, []int{11, 12}, S.ParticleIDs)
}

func TestXYZReadFromErrors(Te *testing.T) {
	bad := []string{
		"",
		"three\n\n",
		"2\n",
		"2\n\nC 0 0 0\n",
		"1\n\nC 0 0\n",
		"1\n\nC 0 x 0\n",
		"1\nLattice=\"1 0 0 0 1 0\"\nC 0 0 0\n",
		"1\nLattice=\"1 0 0 0 1 0 0 0 1\nC 0 0 0\n",
	}
	for _, b := range bad {
		_, err := XYZReadFrom(strings.NewReader(b))
		assert.ErrorIs(Te, err, ErrFileFormat, "input %q", b)
	}
}

func TestXYZReadCompressed(Te *testing.T) {
	dir := Te.TempDir()
	plain := filepath.Join(dir, "water.xyz")
	require.NoError(Te, os.WriteFile(plain, []byte(waterxyz), 0o644))

	gzname := filepath.Join(dir, "water.xyz.gz")
	f, err := os.Create(gzname)
	require.NoError(Te, err)
	gz := gzip.NewWriter(f)
	_, err = gz.Write([]byte(waterxyz))
	require.NoError(Te, err)
	require.NoError(Te, gz.Close())
	require.NoError(Te, f.Close())

	zname := filepath.Join(dir, "water.xyz.zst")
	f, err = os.Create(zname)
	require.NoError(Te, err)
	zw, err := zstd.NewWriter(f)
	require.NoError(Te, err)
	_, err = zw.Write([]byte(waterxyz))
	require.NoError(Te, err)
	require.NoError(Te, zw.Close())
	require.NoError(Te, f.Close())

	for _, name := range []string{plain, gzname, zname} {
		S, err := XYZRead(name)
		require.NoError(Te, err, name)
		assert.Equal(Te, 3, S.Len(), name)
		assert.Equal(Te, "H", S.Symbols[2], name)
	}
	assert.Equal(Te, plain, TrimCompression(gzname))
	assert.Equal(Te, plain, TrimCompression(zname))

	_, err = XYZRead(filepath.Join(dir, "nothere.xyz"))
	assert.Error(Te, err)
	notgz := filepath.Join(dir, "fake.xyz.gz")
	require.NoError(Te, os.WriteFile(notgz, []byte(waterxyz), 0o644))
	_, err = XYZRead(notgz)
	assert.ErrorIs(Te, err, ErrFileFormat)
}
