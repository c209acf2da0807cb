package vocab

import (
	"cmp"
	"slices"
	"sort"
)

type RankOptions struct {
	// MinFreq drops tokens seen fewer than MinFreq times. Zero disables it.
	MinFreq int
	// MaxItems caps the number of corpus tokens. Reserved symbols do not
	// count against it. Zero disables it.
	MaxItems int
	// StoreFreqs makes every value an IDWithCount instead of a bare ID.
	StoreFreqs bool
	// ExcludeSymbols leaves the reserved symbols out of the vocabulary.
	ExcludeSymbols bool
}

// Rank turns a frequency table into a vocabulary. Unless excluded, symbols
// come first with their own IDs. Corpus tokens follow in descending frequency
// order, equal counts keeping first-seen order, and are numbered from
// len(symbols) upwards without gaps.
//
// Tokens spelled like a reserved symbol are never ranked as corpus tokens.
func Rank(t *FrequencyTable, symbols []Symbol, opts RankOptions) *Vocabulary {
	v := newVocabulary()

	next := 0
	if !opts.ExcludeSymbols {
		for _, s := range symbols {
			v.add(s.Name, s.ID, 0, opts.StoreFreqs)
		}
		next = len(symbols)
	}

	reserved := symbolNames(symbols)
	entries := slices.DeleteFunc(t.Entries(), func(e TokenCount) bool {
		_, ok := reserved[e.Token]
		return ok
	})

	slices.SortStableFunc(entries, func(a, b TokenCount) int {
		return cmp.Compare(b.Count, a.Count)
	})

	if opts.MinFreq > 0 {
		// entries are sorted, so the survivors form a prefix
		n := sort.Search(len(entries), func(i int) bool {
			return entries[i].Count < opts.MinFreq
		})
		entries = entries[:n]
	}

	if opts.MaxItems > 0 && len(entries) > opts.MaxItems {
		entries = entries[:opts.MaxItems]
	}

	for i, e := range entries {
		v.add(e.Token, next+i, e.Count, opts.StoreFreqs)
	}

	return v
}
