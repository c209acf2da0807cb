package vocab

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/fs"
)

func TestCount(t *testing.T) {
	cases := []struct {
		name   string
		input  string
		stats  Stats
		expect []TokenCount
	}{
		{
			name:   "example",
			input:  "a b a\nb c\n",
			stats:  Stats{Lines: 2, Tokens: 5},
			expect: []TokenCount{{"a", 2}, {"b", 2}, {"c", 1}},
		},
		{
			name:   "no trailing newline",
			input:  "a b\nb",
			stats:  Stats{Lines: 2, Tokens: 3},
			expect: []TokenCount{{"a", 1}, {"b", 2}},
		},
		{
			name:   "blank lines are skipped",
			input:  "\n   \n\ta\t\n\r\n",
			stats:  Stats{Lines: 1, Tokens: 1},
			expect: []TokenCount{{"a", 1}},
		},
		{
			name:   "crlf",
			input:  "a b\r\nb\r\n",
			stats:  Stats{Lines: 2, Tokens: 3},
			expect: []TokenCount{{"a", 1}, {"b", 2}},
		},
		{
			name:   "lone carriage return ends a line",
			input:  "a\rb c\r\rc\n",
			stats:  Stats{Lines: 3, Tokens: 4},
			expect: []TokenCount{{"a", 1}, {"b", 1}, {"c", 2}},
		},
		{
			name:   "file separator characters are trimmed",
			input:  "\x1ca b\x1f\n\x1d\x1e\n",
			stats:  Stats{Lines: 1, Tokens: 2},
			expect: []TokenCount{{"a", 1}, {"b", 1}},
		},
		{
			// splitting is on a single space, so doubled spaces give an empty token
			name:   "double space yields empty token",
			input:  "a  b\n",
			stats:  Stats{Lines: 1, Tokens: 3},
			expect: []TokenCount{{"a", 1}, {"", 1}, {"b", 1}},
		},
		{
			// tabs are not separators
			name:   "tab stays inside token",
			input:  "a\tb c\n",
			stats:  Stats{Lines: 1, Tokens: 2},
			expect: []TokenCount{{"a\tb", 1}, {"c", 1}},
		},
		{
			name:   "unicode",
			input:  "über straße über\n",
			stats:  Stats{Lines: 1, Tokens: 3},
			expect: []TokenCount{{"über", 2}, {"straße", 1}},
		},
		{
			name:  "empty",
			input: "",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			table := NewFrequencyTable()
			stats, err := table.Count(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.stats, stats)
			if diff := cmp.Diff(tt.expect, table.Entries(), cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, len(tt.expect), table.Len())
		})
	}
}

func TestCountInvalidUTF8(t *testing.T) {
	table := NewFrequencyTable()
	stats, err := table.Count(strings.NewReader("x y\n\n\xff \xfe x\n"))
	require.ErrorIs(t, err, ErrInvalidUTF8)
	assert.ErrorContains(t, err, "line 3")
	assert.Equal(t, Stats{Lines: 1, Tokens: 2}, stats)

	dir := fs.NewDir(t, "count", fs.WithFile("bad.en", "", fs.WithBytes([]byte("a b\r\xc3\x28\n"))))
	_, err = CountFile(NewFrequencyTable(), dir.Join("bad.en"), ReservedSymbols())
	require.ErrorIs(t, err, ErrInvalidUTF8)
	assert.ErrorContains(t, err, dir.Join("bad.en"))
	assert.ErrorContains(t, err, "line 2")
}

func TestCountLongLine(t *testing.T) {
	line := strings.Repeat("w ", 200_000) + "end\n"
	table := NewFrequencyTable()
	stats, err := table.Count(strings.NewReader(line))
	require.NoError(t, err)
	assert.Equal(t, 200_001, stats.Tokens)
	assert.Equal(t, 200_000, table.Frequency("w"))
	assert.Equal(t, 1, table.Frequency("end"))
}

func TestCountAccumulates(t *testing.T) {
	table := NewFrequencyTable()
	_, err := table.Count(strings.NewReader("a b a\n"))
	require.NoError(t, err)
	_, err = table.Count(strings.NewReader("b c\n"))
	require.NoError(t, err)

	combined := NewFrequencyTable()
	_, err = combined.Count(strings.NewReader("a b a\nb c\n"))
	require.NoError(t, err)

	if diff := cmp.Diff(combined.Entries(), table.Entries()); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRemoveReserved(t *testing.T) {
	table := tableFrom(t, "<unk> a <pad> <unk> b\n")
	removed := table.RemoveReserved(ReservedSymbols())
	assert.Equal(t, []TokenCount{{PadToken, 1}, {UnkToken, 2}}, removed)
	assert.Equal(t, []TokenCount{{"a", 1}, {"b", 1}}, table.Entries())
	assert.Zero(t, table.Frequency(UnkToken))

	assert.Empty(t, table.RemoveReserved(ReservedSymbols()))
}

func TestCountFile(t *testing.T) {
	var gz bytes.Buffer
	gw := gzip.NewWriter(&gz)
	_, err := gw.Write([]byte("a b a\n<eos> b c\n"))
	require.NoError(t, err)
	require.NoError(t, gw.Close())

	enc, err := zstd.NewWriter(nil)
	require.NoError(t, err)
	zst := enc.EncodeAll([]byte("a b a\n<eos> b c\n"), nil)
	require.NoError(t, enc.Close())

	dir := fs.NewDir(t, "count",
		fs.WithFile("train.en", "a b a\n<eos> b c\n"),
		fs.WithFile("train.en.gz", "", fs.WithBytes(gz.Bytes())),
		fs.WithFile("train.en.zst", "", fs.WithBytes(zst)),
	)

	for _, name := range []string{"train.en", "train.en.gz", "train.en.zst"} {
		t.Run(name, func(t *testing.T) {
			table := NewFrequencyTable()
			stats, err := CountFile(table, dir.Join(name), ReservedSymbols())
			require.NoError(t, err)
			assert.Equal(t, Stats{Lines: 2, Tokens: 6}, stats)
			assert.Equal(t, []TokenCount{{"a", 2}, {"b", 2}, {"c", 1}}, table.Entries())
		})
	}
}

func TestCountFileMissing(t *testing.T) {
	_, err := CountFile(NewFrequencyTable(), filepath.Join(t.TempDir(), "missing.en"), ReservedSymbols())
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenCorruptGzip(t *testing.T) {
	dir := fs.NewDir(t, "open", fs.WithFile("bad.en.gz", "not gzip"))
	_, err := Open(dir.Join("bad.en.gz"))
	require.Error(t, err)
}

func TestTrimCompression(t *testing.T) {
	cases := map[string]string{
		"train.en":     "train.en",
		"train.en.gz":  "train.en",
		"train.en.GZ":  "train.en",
		"train.de.zst": "train.de",
		"train.fr.bz2": "train.fr",
		"train.tar.xz": "train.tar.xz",
		"corpus":       "corpus",
		"corpus.gz":    "corpus",
	}

	for in, want := range cases {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, TrimCompression(in))
		})
	}
}
