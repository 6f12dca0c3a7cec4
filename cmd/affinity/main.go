// Command affinity is a thin front end over the poet package: it builds
// a word-affinity graph from a corpus file and prints either a generated
// poem or graph statistics.
//
// # Usage
//
//	# Insert bridge words into a phrase
//	affinity generate --corpus corpus.txt Test the system.
//
//	# Show the size of the derived graph
//	affinity stats --corpus corpus.txt
package main

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/affinity/poet"
)

var (
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	corpusPath string

	rootCmd = &cobra.Command{
		Use:   "affinity",
		Short: "Generate text variants from a word-affinity graph",
		Long: `affinity derives a word-adjacency graph from a text corpus and uses it
to insert "bridge" words between adjacent words of an input phrase,
choosing bridges that maximize two-hop adjacency weight in the graph.`,
	}
	generateCmd = &cobra.Command{
		Use:   "generate [words...]",
		Short: "Insert bridge words between adjacent input words",
		Args:  cobra.MinimumNArgs(1),
		Run:   runGenerate,
	}
	statsCmd = &cobra.Command{
		Use:   "stats",
		Short: "Print the order and size of the corpus-derived graph",
		Run:   runStats,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&corpusPath, "corpus", "", "path to the corpus text file (required)")
	_ = rootCmd.MarkPersistentFlagRequired("corpus")
	rootCmd.AddCommand(generateCmd, statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadPoet builds a Poet from the --corpus file, exiting with a logged
// error when the file cannot be read.
func loadPoet() *poet.Poet {
	p, err := poet.NewFromFile(corpusPath)
	if err != nil {
		log.Error().Err(err).Str("corpus", corpusPath).Msg("failed to load corpus")
		os.Exit(1)
	}
	log.Debug().
		Str("corpus", corpusPath).
		Int("words", p.VertexCount()).
		Int("adjacencies", p.EdgeCount()).
		Msg("affinity graph built")

	return p
}

func runGenerate(_ *cobra.Command, args []string) {
	p := loadPoet()
	os.Stdout.WriteString(p.Generate(strings.Join(args, " ")) + "\n")
}

func runStats(_ *cobra.Command, _ []string) {
	p := loadPoet()
	log.Info().
		Str("corpus", corpusPath).
		Int("words", p.VertexCount()).
		Int("adjacencies", p.EdgeCount()).
		Msg("graph statistics")
}
