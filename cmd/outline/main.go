// Outline splits textbook text into titled sections and retrieval chunks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Version is set at build time
	Version = "dev"

	// Global flags
	format    string
	verbose   bool
	pdftotext bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "outline",
	Short: "Segment textbooks into sections and chunks",
	Long: `Outline recovers the section structure of extracted textbook text and
splits it into overlapping chunks for retrieval.

Input is a file (txt, md, html, csv, pdf, docx, pptx) or "-" for plain text
on stdin.

Examples:
  # Show the detected sections of a PDF
  outline segment biology.pdf

  # Section-aware chunks as YAML
  outline chunk biology.pdf --format yaml

  # Whole-document chunks from stdin
  cat notes.txt | outline chunk - --whole --chunk-size 400 --overlap 40`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "text", "Output format (json, yaml, text)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log segmentation phases to stderr")
	rootCmd.PersistentFlags().BoolVar(&pdftotext, "pdftotext", true, "Fall back to pdftotext for unreadable PDFs")

	rootCmd.AddCommand(segmentCmd)
	rootCmd.AddCommand(chunkCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "outline %s\n", Version)
	},
}
