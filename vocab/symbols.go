package vocab

const (
	PadToken = "<pad>"
	BOSToken = "<bos>"
	EOSToken = "<eos>"
	UnkToken = "<unk>"
)

// Symbol is a special token bound to a fixed ID.
type Symbol struct {
	Name string
	ID   int
}

// ReservedSymbols returns the special tokens that open every vocabulary, in
// ID order. A new slice is returned on each call.
func ReservedSymbols() []Symbol {
	return []Symbol{
		{Name: PadToken, ID: 0},
		{Name: BOSToken, ID: 1},
		{Name: EOSToken, ID: 2},
		{Name: UnkToken, ID: 3},
	}
}

func symbolNames(symbols []Symbol) map[string]struct{} {
	names := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		names[s.Name] = struct{}{}
	}
	return names
}
