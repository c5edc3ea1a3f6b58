package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/lyricsync/pkg/lrc"
)

// NewStampCommand creates the stamp command.
func NewStampCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stamp <time>",
		Short: "Print the canonical [mm:ss.xx] tag for a time",
		Long: `Print the canonical tag for a time given as milliseconds, a duration or a tag.

Example:
  lyricsync stamp 83450      # [01:23.45]
  lyricsync stamp 1m5s       # [01:05.00]
  lyricsync stamp 1:23.4     # [01:23.04]`,
		Args: cobra.ExactArgs(1),
		RunE: runStamp,
	}
}

func runStamp(cmd *cobra.Command, args []string) error {
	ms, err := parseTimeArg(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), lrc.FormatTag(ms))
	return nil
}
