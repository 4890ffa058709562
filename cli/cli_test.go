package cli

import (
	"bytes"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"adouble-savior/adouble/aderr"
	"adouble-savior/adouble/adentry"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// two entries: FinderInfo inline, resource fork appended after the header
func createSidecar(resourceFork []byte) []byte {
	header := []byte{
		0x00, 0x05, 0x16, 0x07,
		0x00, 0x02, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00,
		0x00, 0x02,
		0x00, 0x00, 0x00, 0x09,
		0x00, 0x00, 0x00, 0x32,
		0x00, 0x00, 0x00, 0x20,
		0x00, 0x00, 0x00, 0x02,
		0x00, 0x00, 0x00, 0x52,
		0x00, 0x00, 0x00, byte(len(resourceFork)),
	}
	finderInfo := bytes.Repeat([]byte{'F'}, 32)
	return lo.Flatten([][]byte{header, finderInfo, resourceFork})
}

func writeFile(t *testing.T, path string, bs []byte) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, bs, 0o644))
	return path
}

func TestLoadSidecar(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "._doc"), createSidecar([]byte("rsrc")))

	sidecar, err := LoadSidecar(path, LoadOptions{})
	require.NoError(t, err)
	defer sidecar.Close()

	assert.Equal(t, uint64(0x56), sidecar.Struct.Bounds().FileSize)
	finderInfo, ok := sidecar.Struct.Lookup(adentry.FinderInfo)
	require.True(t, ok)
	assert.Equal(t, bytes.Repeat([]byte{'F'}, 32), finderInfo)
}

func TestLoadSidecar_HeaderSizeExcludesResourceFork(t *testing.T) {
	path := writeFile(t, filepath.Join(t.TempDir(), "._doc"), createSidecar([]byte("rsrc")))

	sidecar, err := LoadSidecar(path, LoadOptions{HeaderSize: 0x52})
	require.NoError(t, err)
	defer sidecar.Close()

	assert.Equal(t, uint64(0x52), sidecar.Struct.Bounds().BufferLength)
	assert.Equal(t, uint64(0x56), sidecar.Struct.Bounds().FileSize)
}

func TestLoadSidecar_Rejected(t *testing.T) {
	// resource fork claims 4 bytes the file does not have
	bs := createSidecar([]byte("rsrc"))
	path := writeFile(t, filepath.Join(t.TempDir(), "._doc"), bs[:0x54])

	sidecar, err := LoadSidecar(path, LoadOptions{})
	assert.Nil(t, sidecar)
	assert.True(t, errors.Is(err, aderr.ErrEntryOutOfBounds), "got %v", err)

	_, err = LoadSidecar(filepath.Join(t.TempDir(), "._missing"), LoadOptions{})
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestSidecar_Extract(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "._doc"), createSidecar([]byte("rsrc")))
	sidecar, err := LoadSidecar(path, LoadOptions{})
	require.NoError(t, err)
	defer sidecar.Close()

	to := filepath.Join(dir, "rsrc.bin")
	n, err := sidecar.Extract(adentry.ResourceFork, to)
	require.NoError(t, err)
	assert.Equal(t, int64(4), n)
	bs, err := os.ReadFile(to)
	require.NoError(t, err)
	assert.Equal(t, []byte("rsrc"), bs)

	_, err = sidecar.Extract(adentry.Name, filepath.Join(dir, "name.bin"))
	assert.Error(t, err)
	assert.False(t, CheckExistence(filepath.Join(dir, "name.bin")))
}

func TestStartExtracting_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, filepath.Join(dir, "._doc"), createSidecar([]byte("rsrc")))
	to := writeFile(t, filepath.Join(dir, "finder.bin"), []byte("keep"))

	cmd := ExtractCmd{From: path, Entry: "finder_info", To: to}
	err := StartExtracting(cmd, LoadOptions{}, discardLogger)
	assert.Error(t, err)
	bs, _ := os.ReadFile(to)
	assert.Equal(t, []byte("keep"), bs)

	cmd.Force = true
	require.NoError(t, StartExtracting(cmd, LoadOptions{}, discardLogger))
	bs, _ = os.ReadFile(to)
	assert.Equal(t, bytes.Repeat([]byte{'F'}, 32), bs)
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger("debug")
	require.NoError(t, err)
	assert.NotNil(t, logger)

	_, err = NewLogger("loud")
	assert.Error(t, err)
}
