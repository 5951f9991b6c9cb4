/*
Package cli provides command-line helpers for the tokenscope command.

Output Formatting:

Reports, compression results and the pricing catalog can be written as
styled text, JSON or CSV:

	format, err := cli.ParseFormat(flagValue)
	if err != nil {
		return err
	}
	if err := cli.NewFormatter(format).FormatTo(os.Stdout, report); err != nil {
		return err
	}

CSV output is row-per-model; a report writes its cost analysis, the
catalog writes its price list.

Progress Reporting:

When several files are analyzed, progress goes to stderr so stdout stays
parseable:

	progress := cli.NewProgressReporter(os.Stderr)
	progress.Start(int64(len(files)))
	progress.Increment()
	progress.Finish()

Signal Handling:

For graceful shutdown on SIGINT/SIGTERM:

	ctx, stop := cli.SetupSignalHandler()
	defer stop()
*/
package cli
