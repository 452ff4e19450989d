// Package cli builds the cobra command for the orfscan binary and binds
// its flags into Viper.
package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"orfscan/internal/version"
)

const longHelp = `Scan nucleotide FASTA for open reading frames.

orfscan reads the six reading frames of every record (three offsets on the
forward strand, three on the reverse complement), locates start→stop codon
spans in each, and translates the qualifying ones. Spans in one frame never
overlap: scanning resumes after each consumed stop codon, and a start codon
with no downstream stop yields nothing.

Sequences arguments are FASTA paths; gzip input is detected automatically
and '-' reads stdin.`

// NewRootCmd returns the configured root command. runE receives the parsed
// positional arguments (FASTA paths) once flags are bound.
func NewRootCmd(runE func(cmd *cobra.Command, args []string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "orfscan [flags] <sequences.fa ...>",
		Short:         "Six-frame ORF scanner for nucleotide FASTA",
		Long:          longHelp,
		Version:       version.Version,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runE,
	}

	fl := cmd.Flags()
	fl.StringP("table", "t", "standard", `codon table: "standard", "vertebrate-mitochondrial", "bacterial", or an NCBI id`)
	fl.IntP("min-protein-length", "m", 1, "minimum translated length in amino acids")
	fl.String("on-untranslatable", "skip", "ORFs with ambiguous codons: skip | abort")
	fl.Bool("strict", false, "reject ambiguity codes at sequence load (A/C/G/T only)")
	fl.Int("threads", 0, "worker threads (0 = all CPUs)")
	fl.StringP("output", "o", "text", "output format: text | json | fasta")
	fl.Bool("pretty", false, "codon-aligned block under each text row")
	fl.Bool("no-header", false, "suppress header line in text/TSV")
	fl.BoolP("quiet", "q", false, "suppress the summary report")
	fl.Bool("verbose", false, "debug logging")
	fl.Int("no-orf-exit-code", 0, "exit code when no ORFs are found")

	_ = viper.BindPFlags(fl)
	viper.SetEnvPrefix("ORFSCAN")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	return cmd
}
