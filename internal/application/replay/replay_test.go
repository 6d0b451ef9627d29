package replay

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/coinhop/internal/application/system"
)

func createTestReplayData() ReplayData {
	return ReplayData{
		Version: Version,
		Stage:   "meadow",
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2},
		},
	}
}

func TestReplayer_GetInput(t *testing.T) {
	replayer := NewReplayer(createTestReplayData())

	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Left: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{Right: true, Jump: true}, input)

	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.Equal(t, system.InputState{}, input)

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 3, replayer.TotalFrames())
	assert.Equal(t, "meadow", replayer.Stage())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(createTestReplayData())

	for {
		if _, ok := replayer.GetInput(); !ok {
			break
		}
	}

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Left)
}

func TestRecorder(t *testing.T) {
	t.Run("records frames in order", func(t *testing.T) {
		rec := NewRecorder("meadow")

		rec.RecordFrame(system.InputState{Left: true})
		rec.RecordFrame(system.InputState{Jump: true})

		data := rec.Data()
		assert.Equal(t, Version, data.Version)
		assert.Equal(t, "meadow", data.Stage)
		assert.Equal(t, []FrameInput{{F: 0, L: true}, {F: 1, J: true}}, data.Frames)
	})

	t.Run("stop ignores further frames", func(t *testing.T) {
		rec := NewRecorder("meadow")
		rec.RecordFrame(system.InputState{})
		rec.Stop()
		rec.RecordFrame(system.InputState{})

		assert.False(t, rec.IsRecording())
		assert.Equal(t, 1, rec.FrameCount())
	})

	t.Run("save refuses empty recording", func(t *testing.T) {
		rec := NewRecorder("meadow")
		err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))
		assert.Error(t, err)
	})

	t.Run("saved file replays the same inputs", func(t *testing.T) {
		rec := NewRecorder("ledges")
		inputs := []system.InputState{{Right: true}, {Right: true, Jump: true}, {}, {Left: true}}
		for _, in := range inputs {
			rec.RecordFrame(in)
		}

		path := filepath.Join(t.TempDir(), GenerateFilename())
		require.NoError(t, rec.Save(path))

		data, err := LoadReplay(path)
		require.NoError(t, err)
		assert.Equal(t, "ledges", data.Stage)

		replayer := NewReplayer(*data)
		for _, want := range inputs {
			got, ok := replayer.GetInput()
			require.True(t, ok)
			assert.Equal(t, want, got)
		}
	})
}

func TestDecode(t *testing.T) {
	t.Run("omits false keys", func(t *testing.T) {
		var buf bytes.Buffer
		data := createTestReplayData()
		require.NoError(t, Encode(&buf, &data))

		assert.Contains(t, buf.String(), `"l": true`)
		assert.NotContains(t, buf.String(), `"r": false`)
	})

	t.Run("unsupported version", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{"version":"9.9","frames":[]}`))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "9.9")
	})

	t.Run("malformed json", func(t *testing.T) {
		_, err := Decode(strings.NewReader(`{`))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
		assert.Error(t, err)
	})
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.True(t, strings.HasPrefix(name, "replay_"))
	assert.True(t, strings.HasSuffix(name, ".json"))
}
