package args

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSerializeIsDeterministic(t *testing.T) {
	cfg, err := Resolve([]string{"-m", "hybrid", "-t", "93.5", "--vmaf", "-e", "svt-av1", "--log", "run"})
	require.NoError(t, err)

	first, err := json.Marshal(Serialize(cfg))
	require.NoError(t, err)
	second, err := json.Marshal(Serialize(cfg))
	require.NoError(t, err)
	assert.Equal(t, first, second)

	firstYAML, err := yaml.Marshal(Serialize(cfg))
	require.NoError(t, err)
	secondYAML, err := yaml.Marshal(Serialize(cfg))
	require.NoError(t, err)
	assert.Equal(t, firstYAML, secondYAML)
}

func TestSerializeFieldNamesFollowSchema(t *testing.T) {
	cfg, err := Resolve([]string{"-m", "hybrid"})
	require.NoError(t, err)

	fields := Serialize(cfg).Fields()
	options := Default().Options()
	require.Len(t, fields, len(options))
	require.Len(t, fields, 38)
	for i, opt := range options {
		assert.Equal(t, opt.Name, fields[i].Name)
	}
}

func TestSerializeJSONKeepsSetAndUnsetApart(t *testing.T) {
	cfg, err := Resolve([]string{"-m", "hybrid", "--log", "", "-p", "0", "-t", "80"})
	require.NoError(t, err)

	data, err := json.Marshal(Serialize(cfg))
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	require.Len(t, doc, 38)

	assert.Equal(t, "", doc["log"])
	assert.Equal(t, 0.0, doc["passes"])
	assert.Equal(t, 80.0, doc["target_quality"])

	for _, name := range []string{"input", "output", "temp_dir", "config", "scenes", "video_params",
		"vmaf_path", "vmaf_threads", "min_q", "max_q", "vmaf_filter"} {
		v, present := doc[name]
		assert.True(t, present, name)
		assert.Nil(t, v, name)
	}
}

func TestSerializeYAML(t *testing.T) {
	cfg, err := Resolve([]string{"-m", "hybrid", "-i", "in.mkv"})
	require.NoError(t, err)

	data, err := yaml.Marshal(Serialize(cfg))
	require.NoError(t, err)
	assert.Contains(t, string(data), "threshold: 35.0\n")
	assert.Contains(t, string(data), "log: null\n")

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal(data, &node))
	mapping := node.Content[0]
	require.Equal(t, yaml.MappingNode, mapping.Kind)
	require.Len(t, mapping.Content, 2*38)
	assert.Equal(t, "input", mapping.Content[0].Value)
	assert.Equal(t, "vmaf_filter", mapping.Content[len(mapping.Content)-2].Value)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "in.mkv", doc["input"])
	assert.Equal(t, "-c:a copy", doc["audio_params"])
	assert.Equal(t, "", doc["ffmpeg"])
	assert.Equal(t, 35.0, doc["threshold"])
	assert.Equal(t, 240, doc["extra_split"])
	assert.Equal(t, false, doc["quiet"])
	assert.Nil(t, doc["output"])
}

func TestFormatFloat(t *testing.T) {
	cases := map[float64]string{
		35:      "35.0",
		27.5:    "27.5",
		0:       "0.0",
		95.125:  "95.125",
		-3:      "-3.0",
		1e21:    "1e+21",
		1.5e-7:  "1.5e-07",
		1234567: "1234567.0",
	}
	for in, want := range cases {
		assert.Equal(t, want, formatFloat(in), "%v", in)
	}
}

func TestDocumentGetUnknownField(t *testing.T) {
	cfg, err := Resolve([]string{"-m", "hybrid"})
	require.NoError(t, err)

	_, ok := Serialize(cfg).Get("chunk-method")
	assert.False(t, ok)
}
