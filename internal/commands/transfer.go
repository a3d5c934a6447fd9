package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/exchange"
	"github.com/cleared-dev/tally/internal/importer"
	"github.com/cleared-dev/tally/internal/store"
)

func newExportCommand() *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all expenses as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !strings.EqualFold(format, "csv") {
				return fmt.Errorf("unsupported export format %q", format)
			}
			return withApp(cmd, func(a *app) error {
				if output == "" || output == "-" {
					return exchange.WriteExpenses(cmd.OutOrStdout(), a.store.All())
				}
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("creating %s: %w", output, err)
				}
				if err := exchange.WriteExpenses(f, a.store.All()); err != nil {
					f.Close()
					return err
				}
				if err := f.Close(); err != nil {
					return fmt.Errorf("closing %s: %w", output, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Exported %d expenses to %s\n", a.store.Len(), output)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "csv", "export format")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

func newImportCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import expenses from a CSV file, or every CSV in import/",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := importer.DefaultRegistry().Get(format)
			if parser == nil {
				return fmt.Errorf("unknown import format %q (want one of %s)",
					format, strings.Join(importer.DefaultRegistry().Formats(), ", "))
			}
			return withApp(cmd, func(a *app) error {
				if len(args) == 1 {
					return importFile(cmd.OutOrStdout(), a, parser, args[0])
				}
				return importPending(cmd.OutOrStdout(), a, parser)
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "tally", "input format (tally, chase)")

	return cmd
}

// importPending imports every CSV waiting in <dir>/import and moves each one
// to import/processed once its rows are in the store.
func importPending(out io.Writer, a *app, parser importer.Parser) error {
	files, err := importer.Scan(a.dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "No files to import.")
		return nil
	}
	for _, fi := range files {
		if err := importFile(out, a, parser, fi.Path); err != nil {
			return err
		}
		if err := importer.MarkProcessed(a.dir, fi.Name); err != nil {
			return err
		}
	}
	return nil
}

// importFile adds every parsed row through the store, so each one is
// validated and gets a fresh id. Invalid rows are skipped with a warning.
func importFile(out io.Writer, a *app, parser importer.Parser, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	rows, err := parser.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	added, skipped := 0, 0
	for i, p := range rows {
		if _, err := a.store.Add(p); err != nil {
			var verr *store.ValidationError
			if !errors.As(err, &verr) {
				return err
			}
			a.log.WithError(err).WithField("file", path).WithField("row", i+1).Warn("skipping invalid row")
			skipped++
			continue
		}
		added++
	}

	fmt.Fprintf(out, "Imported %d expenses from %s", added, path)
	if skipped > 0 {
		fmt.Fprintf(out, " (%d skipped)", skipped)
	}
	fmt.Fprintln(out)
	return nil
}
