package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jmorganca/buildvocab/vocab"
)

// Language returns the language tag of a corpus file: the last extension of
// its name once any compression extension is removed.
// "train.tok.en.gz" is "en", "corpus" has none.
func Language(path string) string {
	name := vocab.TrimCompression(filepath.Base(path))
	return strings.TrimPrefix(filepath.Ext(name), ".")
}

// BaseName returns the file name of path up to its first dot.
func BaseName(path string) string {
	name := filepath.Base(path)
	if i := strings.IndexByte(name, '.'); i >= 0 {
		return name[:i]
	}
	return name
}

// OutputName is the per-file vocabulary name for path:
// {base}[-min{minFreq}][-max{maxItems}tokens].vocab[.{lang}]
func OutputName(path string, minFreq, maxItems int) string {
	var sb strings.Builder
	sb.WriteString(BaseName(path))
	if minFreq > 0 {
		fmt.Fprintf(&sb, "-min%d", minFreq)
	}
	if maxItems > 0 {
		fmt.Fprintf(&sb, "-max%dtokens", maxItems)
	}

	sb.WriteString(".vocab")
	if lang := Language(path); lang != "" {
		sb.WriteString(".")
		sb.WriteString(lang)
	}
	return sb.String()
}
