package vocab

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// TokenCount is a token and the number of times it was seen.
type TokenCount struct {
	Token string
	Count int
}

// FrequencyTable counts token occurrences. Iteration follows the order in
// which tokens were first seen, which is the tie-break order used by Rank.
//
// A table may be reused across several inputs to accumulate their counts.
type FrequencyTable struct {
	counts *linkedhashmap.Map
}

func NewFrequencyTable() *FrequencyTable {
	return &FrequencyTable{counts: linkedhashmap.New()}
}

// Add records one occurrence of token.
func (t *FrequencyTable) Add(token string) {
	t.AddN(token, 1)
}

// AddN records n occurrences of token.
func (t *FrequencyTable) AddN(token string, n int) {
	var count int
	if v, ok := t.counts.Get(token); ok {
		count = v.(int)
	}

	t.counts.Put(token, count+n)
}

// Frequency returns the count of token, or 0 if it was never seen.
func (t *FrequencyTable) Frequency(token string) int {
	if v, ok := t.counts.Get(token); ok {
		return v.(int)
	}

	return 0
}

// Len returns the number of distinct tokens.
func (t *FrequencyTable) Len() int {
	return t.counts.Size()
}

// Entries returns the table contents in first-seen order.
func (t *FrequencyTable) Entries() []TokenCount {
	entries := make([]TokenCount, 0, t.counts.Size())
	it := t.counts.Iterator()
	for it.Next() {
		entries = append(entries, TokenCount{Token: it.Key().(string), Count: it.Value().(int)})
	}

	return entries
}

// RemoveReserved deletes every token spelled like one of symbols and returns
// the deleted entries in symbol order.
func (t *FrequencyTable) RemoveReserved(symbols []Symbol) []TokenCount {
	var removed []TokenCount
	for _, s := range symbols {
		if v, ok := t.counts.Get(s.Name); ok {
			removed = append(removed, TokenCount{Token: s.Name, Count: v.(int)})
			t.counts.Remove(s.Name)
		}
	}

	return removed
}
