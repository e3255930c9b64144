package main

import (
	"github.com/spf13/cobra"

	"github.com/Samrudhp/EduSummaryV2/internal/outline"
	"github.com/Samrudhp/EduSummaryV2/internal/segment"
)

var segmentCmd = &cobra.Command{
	Use:   "segment <file|->",
	Short: "Detect the sections of a document",
	Long: `Detect the titled sections of a document. Headings are recognised from
surface features such as numbering, capitalisation and length; text without
usable headings is split by content into 3 to 8 sections.

Examples:
  outline segment chapter.txt
  outline segment book.pdf --format json
  pbpaste | outline segment -`,
	Args: cobra.ExactArgs(1),
	RunE: runSegment,
}

type segmentOutput struct {
	Strategy segment.Strategy  `json:"strategy" yaml:"strategy"`
	Sections []outline.Section `json:"sections" yaml:"sections"`
}

func runSegment(cmd *cobra.Command, args []string) error {
	text, err := readInput(cmd.InOrStdin(), args[0])
	if err != nil {
		return err
	}

	log := newLogger(cmd.ErrOrStderr())
	res, err := segment.Segment(text, segment.WithObserver(segment.LogEvents(log)))
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), segmentOutput{Strategy: res.Strategy, Sections: res.Sections})
}
