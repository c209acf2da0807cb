package vocab

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Value is what a vocabulary maps a token to: either ID or IDWithCount.
type Value interface {
	Index() int
	isValue()
}

// ID is a bare token index. It encodes as a JSON number.
type ID int

func (id ID) Index() int { return int(id) }
func (ID) isValue()      {}

// IDWithCount is a token index with its corpus frequency. It encodes as a
// two element JSON array.
type IDWithCount struct {
	ID    int
	Count int
}

func (v IDWithCount) Index() int { return v.ID }
func (IDWithCount) isValue()     {}

func (v IDWithCount) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]int{v.ID, v.Count})
}

type Entry struct {
	Token string
	Value Value
}

// Vocabulary is an ordered token to Value mapping built by Rank.
type Vocabulary struct {
	entries []Entry
	index   map[string]int
}

func newVocabulary() *Vocabulary {
	return &Vocabulary{index: make(map[string]int)}
}

func (v *Vocabulary) add(token string, id, count int, storeFreqs bool) {
	var value Value = ID(id)
	if storeFreqs {
		value = IDWithCount{ID: id, Count: count}
	}

	v.index[token] = len(v.entries)
	v.entries = append(v.entries, Entry{Token: token, Value: value})
}

func (v *Vocabulary) Len() int {
	return len(v.entries)
}

// Entries returns a copy of the vocabulary in ID order.
func (v *Vocabulary) Entries() []Entry {
	return append([]Entry(nil), v.entries...)
}

func (v *Vocabulary) Lookup(token string) (Value, bool) {
	i, ok := v.index[token]
	if !ok {
		return nil, false
	}

	return v.entries[i].Value, true
}

// MarshalJSON encodes the vocabulary as a JSON object whose keys keep the
// vocabulary order. Tokens are written without HTML or non-ASCII escaping.
func (v *Vocabulary) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)

	// Encoder terminates every value with a newline
	encode := func(x any) error {
		if err := enc.Encode(x); err != nil {
			return err
		}

		b.Truncate(b.Len() - 1)
		return nil
	}

	b.WriteByte('{')
	for i, e := range v.entries {
		if i > 0 {
			b.WriteByte(',')
		}

		if err := encode(e.Token); err != nil {
			return nil, err
		}

		b.WriteByte(':')
		if err := encode(e.Value); err != nil {
			return nil, fmt.Errorf("token %q: %w", e.Token, err)
		}
	}
	b.WriteByte('}')

	return b.Bytes(), nil
}

// WriteTo writes the vocabulary as JSON indented by two spaces, without a
// trailing newline.
func (v *Vocabulary) WriteTo(w io.Writer) (int64, error) {
	data, err := v.MarshalJSON()
	if err != nil {
		return 0, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, data, "", "  "); err != nil {
		return 0, err
	}

	return out.WriteTo(w)
}

// WriteFile writes the vocabulary to path, replacing any existing file.
func (v *Vocabulary) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := v.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}
