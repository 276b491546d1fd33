package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

// TestLoad_KeepsDefaults decodes a partial document over Default.
func TestLoad_KeepsDefaults(t *testing.T) {
	cfg, err := Load("", []byte(`{"op":"erode","in":"a.png"}`))
	require.NoError(t, err)
	require.Equal(t, "erode", cfg.Op)
	require.Equal(t, "a.png", cfg.In)
	require.Equal(t, "cross", cfg.Conn)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
	require.NoError(t, Validate(cfg))
}

// TestLoad_File reads a full document from disk.
func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ndmorph.json")
	doc := `{
  "op": "watershed",
  "in": "relief.tif",
  "markers": "seeds.png",
  "out": "basins.tif",
  "conn": "box",
  "label_markers": true,
  "logging": {"level": "debug", "format": "json"}
}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	require.Equal(t, Config{
		Op:           "watershed",
		In:           "relief.tif",
		Markers:      "seeds.png",
		Out:          "basins.tif",
		Conn:         "box",
		LabelMarkers: true,
		Logging:      Logging{Level: "debug", Format: "json"},
	}, cfg)
	require.NoError(t, Validate(cfg))
}

// TestLoad_Errors covers unknown fields, missing files and no source.
func TestLoad_Errors(t *testing.T) {
	_, err := Load("", []byte(`{"unknown":1}`))
	require.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"), nil)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = Load("", nil)
	require.ErrorIs(t, err, ErrNoSource)
}

// TestMerge overrides only the fields set in over.
func TestMerge(t *testing.T) {
	base := Default()
	base.Op = "erode"
	base.In = "a.json"

	got := Merge(base, Config{In: " b.json ", Logging: Logging{Format: "json"}})
	require.Equal(t, "erode", got.Op)
	require.Equal(t, "b.json", got.In)
	require.Equal(t, "cross", got.Conn)
	require.Equal(t, "info", got.Logging.Level)
	require.Equal(t, "json", got.Logging.Format)
	require.False(t, got.LabelMarkers)

	got = Merge(got, Config{Op: "watershed", Markers: "m.json", LabelMarkers: true})
	require.Equal(t, "watershed", got.Op)
	require.Equal(t, "m.json", got.Markers)
	require.True(t, got.LabelMarkers)
}

// TestValidate_Aggregates reports every invalid field in one error.
func TestValidate_Aggregates(t *testing.T) {
	cfg := Config{
		Op:      "open",
		Conn:    "diamond",
		Logging: Logging{Level: "loud", Format: "xml"},
	}
	err := Validate(cfg)
	require.Error(t, err)
	// op, in, conn, level, format
	require.Len(t, multierr.Errors(err), 5)
}

// TestValidate_WatershedRules checks the markers requirements.
func TestValidate_WatershedRules(t *testing.T) {
	cfg := Default()
	cfg.Op = "watershed"
	cfg.In = "a.json"
	require.ErrorContains(t, Validate(cfg), "requires markers")

	cfg.Markers = "m.json"
	require.NoError(t, Validate(cfg))

	cfg.Op = "dilate"
	cfg.LabelMarkers = true
	require.ErrorContains(t, Validate(cfg), "label_markers")
}
