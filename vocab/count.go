package vocab

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/jmorganca/buildvocab/format"
	"github.com/jmorganca/buildvocab/logutil"
)

// report a running line count every this many lines
const progressInterval = 1_000_000

// ErrInvalidUTF8 is returned by Count for a line that is not valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// Stats describes one counting pass.
type Stats struct {
	// Lines is the number of non-empty lines read.
	Lines int
	// Tokens is the number of tokens counted, including repeats.
	Tokens int
}

// isSpace reports the characters trimmed from both ends of a line. The ASCII
// separators U+001C to U+001F count as space alongside unicode.IsSpace.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= '\x1c' && r <= '\x1f')
}

// Count reads r line by line and adds its tokens to the table.
//
// Lines end at "\n", "\r\n" or a lone "\r". Each line is trimmed and empty
// lines are skipped. The remainder is split on the single space character
// only, so runs of spaces yield empty tokens and tabs stay inside tokens.
// Existing vocabularies depend on this, do not switch to strings.Fields.
//
// A line that is not valid UTF-8 stops the count with an error wrapping
// ErrInvalidUTF8.
func (t *FrequencyTable) Count(r io.Reader) (Stats, error) {
	var stats Stats
	var n int
	br := bufio.NewReader(r)
	for {
		chunk, err := br.ReadString('\n')
		chunk = strings.TrimSuffix(chunk, "\n")
		chunk = strings.TrimSuffix(chunk, "\r")
		if chunk != "" || !errors.Is(err, io.EOF) {
			for _, line := range strings.Split(chunk, "\r") {
				n++
				if !utf8.ValidString(line) {
					return stats, fmt.Errorf("line %d: %w", n, ErrInvalidUTF8)
				}

				if line = strings.TrimFunc(line, isSpace); line == "" {
					continue
				}

				stats.Lines++
				for _, token := range strings.Split(line, " ") {
					t.Add(token)
					stats.Tokens++
				}

				if stats.Lines%progressInterval == 0 {
					logutil.Trace("counting", "lines", stats.Lines, "types", t.Len())
				}
			}
		}

		if errors.Is(err, io.EOF) {
			return stats, nil
		} else if err != nil {
			return stats, err
		}
	}
}

// CountFile adds the tokens of the file at path to the table, then drops any
// token that collides with a reserved symbol. Compressed files are decoded
// transparently, see Open.
func CountFile(t *FrequencyTable, path string, symbols []Symbol) (Stats, error) {
	f, err := Open(path)
	if err != nil {
		return Stats{}, err
	}
	defer f.Close()

	slog.Info("counting tokens", "file", path)
	start := time.Now()

	stats, err := t.Count(f)
	if err != nil {
		return stats, fmt.Errorf("read %s: %w", path, err)
	}

	for _, removed := range t.RemoveReserved(symbols) {
		slog.Warn("reserved symbol found in corpus, dropping its counts", "file", path, "token", removed.Token, "count", removed.Count)
	}

	slog.Info("counted tokens",
		"file", path,
		"lines", format.HumanCount(stats.Lines),
		"tokens", format.HumanCount(stats.Tokens),
		"types", format.HumanCount(t.Len()))
	slog.Debug("count finished", "file", path, "elapsed", time.Since(start))
	return stats, nil
}
