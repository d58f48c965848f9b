package manifest

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManifestYAMLRoundTrip(t *testing.T) {
	m := &Manifest{
		SchemaVersion: "1.0",
		Plugin: PluginInfo{
			ID: "com.bbxsynth.beepvoice", Name: "BeepVoice", Vendor: "bbxsynth",
			Version: "1.0.0", Features: []string{"instrument", "synthesizer", "stereo"},
		},
		Build:      BuildInfo{GoSharedLibrary: "libbeepvoice.so"},
		Parameters: []Parameter{{ID: 1, Name: "Volume", MinValue: 0, MaxValue: 1, DefaultValue: 0.8}},
	}

	path := filepath.Join(t.TempDir(), "beepvoice.yaml")
	require.NoError(t, m.ExportYAML(path))

	loaded, err := LoadFromYAMLFile(path)
	require.NoError(t, err)
	assert.Equal(t, m.Plugin.ID, loaded.Plugin.ID)
	assert.Equal(t, m.Plugin.Features, loaded.Plugin.Features)
	assert.Equal(t, m.Parameters, loaded.Parameters)
}
