package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"blinkdeploys/tokenscope/pkg/cli"
)

var compressFlags struct {
	stats  bool
	format string
}

var compressCmd = &cobra.Command{
	Use:   "compress [file]",
	Short: "Compress text for prompting",
	Long: `Run a file (or stdin) through the compression pipeline and print the
compressed text.

With --stats the compression result is printed instead: token counts
before and after, the reduction and the techniques that ran.

Examples:
  tokenscope compress notes.txt > notes.min.txt
  cat notes.txt | tokenscope compress --stats --format json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompress,
}

func init() {
	rootCmd.AddCommand(compressCmd)

	compressCmd.Flags().BoolVar(&compressFlags.stats, "stats", false, "print the compression result instead of the text")
	compressCmd.Flags().StringVarP(&compressFlags.format, "format", "f", "text", "output format for --stats: text, json, csv")
}

func runCompress(cmd *cobra.Command, args []string) error {
	path := "-"
	if len(args) == 1 {
		path = args[0]
	}

	format, err := cli.ParseFormat(compressFlags.format)
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := cli.SetupSignalHandler()
	defer stop()

	a, err := newApp(ctx, cfg, true)
	if err != nil {
		return cli.NewCommandError("compress", err)
	}
	defer a.Close(context.Background())

	text, err := readInput(path, cmd.InOrStdin())
	if err != nil {
		return cli.NewCommandError("compress", err)
	}

	result, err := a.processor.Compress(ctx, text)
	if err != nil {
		return cli.NewCommandError("compress", err)
	}

	if compressFlags.stats {
		return cli.NewFormatter(format).FormatTo(cmd.OutOrStdout(), result)
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), result.CompressedText)
	return err
}
