package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/jmorganca/buildvocab/envconfig"
	"github.com/jmorganca/buildvocab/format"
	"github.com/jmorganca/buildvocab/version"
	"github.com/jmorganca/buildvocab/vocab"
)

func BuildHandler(cmd *cobra.Command, args []string) error {
	var opts BuildOptions
	var err error

	flags := cmd.Flags()
	if opts.OutputDir, err = flags.GetString("output-dir"); err != nil {
		return err
	}

	if opts.Single, err = flags.GetString("single"); err != nil {
		return err
	}

	if opts.StoreFreqs, err = flags.GetBool("store-freqs"); err != nil {
		return err
	}

	if opts.MinFreq, err = flags.GetInt("min-freq"); err != nil {
		return err
	}

	if opts.MaxItems, err = flags.GetInt("max-items"); err != nil {
		return err
	}

	if opts.ExcludeSymbols, err = flags.GetBool("exclude-symbols"); err != nil {
		return err
	}

	summary, err := flags.GetBool("summary")
	if err != nil {
		return err
	}

	if opts.StoreFreqs || opts.ExcludeSymbols {
		slog.Warn("vocabulary will not load in consumers expecting bare IDs after the reserved symbols",
			"store-freqs", opts.StoreFreqs, "exclude-symbols", opts.ExcludeSymbols)
	}

	if path := envconfig.ConfigFile(); path != "" {
		slog.Debug("using config file", "path", path)
	}

	opts.Symbols = vocab.ReservedSymbols()
	results, err := Build(cmd.Context(), args, opts)
	if err != nil {
		return err
	}

	if summary {
		writeSummary(cmd.OutOrStdout(), results)
	}

	return nil
}

func writeSummary(w io.Writer, results []Result) {
	var data [][]string
	for _, r := range results {
		data = append(data, []string{
			strings.Join(r.Inputs, ","),
			r.Output,
			format.HumanCount(r.Stats.Lines),
			format.HumanCount(r.Stats.Tokens),
			format.HumanCount(r.Types),
			fmt.Sprintf("%d", r.Entries),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"INPUT", "OUTPUT", "LINES", "TOKENS", "TYPES", "ENTRIES"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")
	table.AppendBulk(data)
	table.Render()
}

func envUsage() string {
	vars := envconfig.AsMap()
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var sb strings.Builder
	sb.WriteString("\nEnvironment Variables:\n")
	for _, k := range keys {
		fmt.Fprintf(&sb, "      %-28s %s\n", vars[k].Name, vars[k].Description)
	}
	return sb.String()
}

func NewCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "build-vocab [flags] FILE...",
		Short: "Build frequency-ranked vocabularies from tokenized text",
		Long: `Build a token to ID vocabulary from whitespace-tokenized text files.

IDs are assigned by descending token frequency after the reserved symbols
` + fmt.Sprintf("%s, %s, %s and %s", vocab.PadToken, vocab.BOSToken, vocab.EOSToken, vocab.UnkToken) + `. Each input produces its own
{base}[-min{N}][-max{N}tokens].vocab.{lang} file unless --single is given.`,
		Args:    cobra.MinimumNArgs(1),
		Version: version.Version,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Disable usage printing on errors
			cmd.SilenceUsage = true
		},
		RunE: BuildHandler,
	}

	flags := rootCmd.Flags()
	flags.StringP("output-dir", "o", envconfig.OutputDir, "Output directory for per-file vocabularies")
	flags.StringP("single", "s", "", "Accumulate all inputs into one vocabulary written to `path`")
	flags.BoolP("store-freqs", "f", envconfig.StoreFreqs, "Store frequencies alongside IDs (incompatible with bare-ID loaders)")
	flags.IntP("min-freq", "m", envconfig.MinFreq, "Drop tokens seen fewer than this many times")
	flags.IntP("max-items", "M", envconfig.MaxItems, "Keep at most this many corpus tokens (0 keeps all)")
	flags.BoolP("exclude-symbols", "x", envconfig.ExcludeSymbols, "Do not add reserved symbols (incompatible with bare-ID loaders)")
	flags.Bool("summary", false, "Print a table of the written vocabularies")

	rootCmd.SetUsageTemplate(rootCmd.UsageTemplate() + envUsage())
	return rootCmd
}
