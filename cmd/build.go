package cmd

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/jmorganca/buildvocab/format"
	"github.com/jmorganca/buildvocab/vocab"
)

type BuildOptions struct {
	vocab.RankOptions

	// OutputDir receives per-file vocabularies.
	OutputDir string
	// Single, when set, accumulates every input into one vocabulary written
	// to this path.
	Single string
	// Symbols defaults to vocab.ReservedSymbols.
	Symbols []vocab.Symbol
}

// Result describes one written vocabulary.
type Result struct {
	Inputs []string
	Output string
	Stats  vocab.Stats
	// Types is the number of distinct corpus tokens before filtering.
	Types int
	// Entries is the number of vocabulary entries written.
	Entries int
}

// Build counts, ranks and writes vocabularies for paths, one per input file
// or a single combined one. Inputs are processed in order; ctx is checked
// before each file.
func Build(ctx context.Context, paths []string, opts BuildOptions) ([]Result, error) {
	if opts.Symbols == nil {
		opts.Symbols = vocab.ReservedSymbols()
	}

	if opts.Single != "" {
		r, err := buildCombined(ctx, paths, opts)
		if err != nil {
			return nil, err
		}
		return []Result{r}, nil
	}

	return buildPerFile(ctx, paths, opts)
}

func buildPerFile(ctx context.Context, paths []string, opts BuildOptions) ([]Result, error) {
	results := make([]Result, 0, len(paths))
	outputs := make(map[string]string)
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return results, err
		}

		output := filepath.Join(opts.OutputDir, OutputName(path, opts.MinFreq, opts.MaxItems))
		if prev, ok := outputs[output]; ok {
			slog.Warn("output name collides with an earlier input, it will be overwritten", "output", output, "previous", prev, "input", path)
		}
		outputs[output] = path

		table := vocab.NewFrequencyTable()
		stats, err := vocab.CountFile(table, path, opts.Symbols)
		if err != nil {
			return results, err
		}

		entries, err := writeVocabulary(table, output, opts)
		if err != nil {
			return results, err
		}

		results = append(results, Result{
			Inputs:  []string{path},
			Output:  output,
			Stats:   stats,
			Types:   table.Len(),
			Entries: entries,
		})
	}

	return results, nil
}

// buildCombined sums the counts of every input into one table before ranking.
func buildCombined(ctx context.Context, paths []string, opts BuildOptions) (Result, error) {
	result := Result{Inputs: paths, Output: opts.Single}

	table := vocab.NewFrequencyTable()
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		stats, err := vocab.CountFile(table, path, opts.Symbols)
		if err != nil {
			return result, err
		}

		result.Stats.Lines += stats.Lines
		result.Stats.Tokens += stats.Tokens
	}

	entries, err := writeVocabulary(table, opts.Single, opts)
	if err != nil {
		return result, err
	}

	result.Types = table.Len()
	result.Entries = entries
	return result, nil
}

func writeVocabulary(table *vocab.FrequencyTable, output string, opts BuildOptions) (int, error) {
	v := vocab.Rank(table, opts.Symbols, opts.RankOptions)
	if err := v.WriteFile(output); err != nil {
		return 0, err
	}

	slog.Info("wrote vocabulary", "output", output, "entries", format.HumanCount(v.Len()))
	return v.Len(), nil
}
