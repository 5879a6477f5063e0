// SPDX-License-Identifier: EPL-2.0

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ik5/threepm/formats/aiff"
	"github.com/ik5/threepm/formats/wav"
	"github.com/ik5/threepm/internal/mp3test"
)

func writeMP3(t *testing.T, dir string) string {
	t.Helper()

	data := mp3test.Stream(
		mp3test.Frame{Granules: [2][2]mp3test.Granule{
			{{Pairs: []int{1, -1, 0, 1}}, {Pairs: []int{0, 1}}},
			{{Quads: []int{0, 1, 0, -1}}, {}},
		}},
		mp3test.Frame{},
		mp3test.Frame{Granules: [2][2]mp3test.Granule{
			{{}, {Quads: []int{1, 1, 0, 0}}},
			{{Pairs: []int{-1, 0}}, {}},
		}},
	)
	path := filepath.Join(dir, "in.mp3")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

// runCmd runs the command without a config file.
func runCmd(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	args = append([]string{args[0], "-config", ""}, args[1:]...)
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Usage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 2, run(nil, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "usage:")

	stderr.Reset()
	assert.Equal(t, 2, run([]string{"explode"}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), `unknown command "explode"`)

	code, _, errOut := runCmd("pack", "only-one-arg")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "usage:")

	code, _, errOut = runCmd("pack", "-model", "zip", "a", "b")
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "unknown model")
}

func TestRun_PackUnpack(t *testing.T) {
	dir := t.TempDir()
	in := writeMP3(t, dir)
	packed := filepath.Join(dir, "out.3pm")

	code, out, errOut := runCmd("pack", "-metrics", in, packed)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "3 frames")
	assert.Contains(t, out, "threepm_frames_total 3")

	for _, name := range []string{"q.wav", "q.aiff"} {
		t.Run(name, func(t *testing.T) {
			dst := filepath.Join(dir, name)
			code, _, errOut := runCmd("unpack", packed, dst)
			require.Equal(t, 0, code, errOut)

			data, err := os.ReadFile(dst)
			require.NoError(t, err)

			var samples []int
			if strings.HasSuffix(name, ".wav") {
				info, err := wav.Read(bytes.NewReader(data))
				require.NoError(t, err)
				samples = info.Samples
			} else {
				info, err := aiff.Read(bytes.NewReader(data))
				require.NoError(t, err)
				samples = info.Samples
			}

			require.Len(t, samples, 3*2*576*2)
			assert.Equal(t, []int{1, 0, -1, 1, 0, 0, 1, 0}, samples[:8])
		})
	}
}

func TestRun_SymbolModel(t *testing.T) {
	dir := t.TempDir()
	in := writeMP3(t, dir)
	packed := filepath.Join(dir, "out.3pm")

	code, _, errOut := runCmd("pack", "-model", "symbol", in, packed)
	require.Equal(t, 0, code, errOut)

	dst := filepath.Join(dir, "q.wav")
	code, _, errOut = runCmd("unpack", "-model", "symbol", packed, dst)
	require.Equal(t, 0, code, errOut)
	_, err := os.Stat(dst)
	assert.NoError(t, err)
}

func TestRun_Info(t *testing.T) {
	dir := t.TempDir()
	in := writeMP3(t, dir)

	code, out, errOut := runCmd("info", in)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "frames: 3")
	assert.Contains(t, out, "stream:")
	assert.NotContains(t, out, "failed:")
}

func TestRun_InfoNoFrames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.mp3")
	require.NoError(t, os.WriteFile(path, bytes.Repeat([]byte{0x42}, 2000), 0o644))

	code, out, errOut := runCmd("info", path)
	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "no mpeg audio frames")
}

func TestRun_WAVNotMP3(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "junk.mp3")
	require.NoError(t, os.WriteFile(path, []byte("not mpeg"), 0o644))
	dst := filepath.Join(dir, "out.wav")

	code, _, errOut := runCmd("wav", path, dst)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "failed")

	_, err := os.Stat(dst)
	assert.True(t, os.IsNotExist(err), "failed render left %s behind", dst)
}

func TestRun_MissingInput(t *testing.T) {
	code, _, errOut := runCmd("pack", filepath.Join(t.TempDir(), "nope.mp3"), "out.3pm")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no such file")
}
