package commands

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/aggregate"
	"github.com/cleared-dev/tally/internal/filter"
	"github.com/cleared-dev/tally/internal/model"
)

// summaryTop is how many categories the summary breaks out.
const summaryTop = 3

// filterFlags are the --category and --range flags shared by report commands.
type filterFlags struct {
	category  string
	dateRange string
}

func (f *filterFlags) register(cmd *cobra.Command, withCategory bool) {
	if withCategory {
		cmd.Flags().StringVarP(&f.category, "category", "c", filter.AllCategories, "category to show, or all")
	}
	cmd.Flags().StringVarP(&f.dateRange, "range", "r", string(filter.RangeAll), "date range: all, today, thisWeek, thisMonth")
}

// visible returns the store records passing the filters as of now.
func (f *filterFlags) visible(a *app, now time.Time) ([]model.Expense, error) {
	dateRange, err := filter.ParseDateRange(f.dateRange)
	if err != nil {
		return nil, err
	}
	category := f.category
	if category == "" {
		category = filter.AllCategories
	}
	return filter.SelectVisibleAt(a.store.All(), category, dateRange, now), nil
}

func newTabWriter(out io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
}

func newListCommand() *cobra.Command {
	var f filterFlags

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List expenses, newest first",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				records, err := f.visible(a, time.Now())
				if err != nil {
					return err
				}
				return printList(cmd.OutOrStdout(), a, records)
			})
		},
	}
	f.register(cmd, true)

	return cmd
}

func printList(out io.Writer, a *app, records []model.Expense) error {
	if len(records) == 0 {
		fmt.Fprintln(out, "No expenses found.")
		return nil
	}

	symbol := a.cfg.Display.CurrencySymbol
	tw := newTabWriter(out)
	fmt.Fprintln(tw, "DATE\tCATEGORY\tDESCRIPTION\tAMOUNT\tID")
	for _, e := range aggregate.SortedByDateDescending(records) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			formatDate(e.Date),
			a.cats.Lookup(e.Category).Label,
			e.Description,
			formatAmount(symbol, e.Amount),
			e.ID,
		)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	noun := "items"
	if len(records) == 1 {
		noun = "item"
	}
	fmt.Fprintf(out, "\n%d %s, total %s\n", len(records), noun, formatAmount(symbol, aggregate.Total(records)))
	return nil
}

func newTotalsCommand() *cobra.Command {
	var f filterFlags

	cmd := &cobra.Command{
		Use:   "totals",
		Short: "Show spending per category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				records, err := f.visible(a, time.Now())
				if err != nil {
					return err
				}
				total := aggregate.Total(records)
				return printCategoryTotals(cmd.OutOrStdout(), a, aggregate.CategoryTotals(records), total)
			})
		},
	}
	f.register(cmd, true)

	return cmd
}

func printCategoryTotals(out io.Writer, a *app, totals []aggregate.CategoryTotal, total decimal.Decimal) error {
	if len(totals) == 0 {
		fmt.Fprintln(out, "No expenses found.")
		return nil
	}

	symbol := a.cfg.Display.CurrencySymbol
	tw := newTabWriter(out)
	fmt.Fprintln(tw, "CATEGORY\tTOTAL\tSHARE")
	for _, ct := range totals {
		fmt.Fprintf(tw, "%s\t%s\t%s%%\n",
			a.cats.Lookup(ct.Category).Label,
			formatAmount(symbol, ct.Total),
			aggregate.Share(ct.Total, total).StringFixed(1),
		)
	}
	fmt.Fprintf(tw, "Total\t%s\t\n", formatAmount(symbol, total))
	return tw.Flush()
}

func newSummaryCommand() *cobra.Command {
	var f filterFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the total and the top categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				records, err := f.visible(a, time.Now())
				if err != nil {
					return err
				}
				printSummary(cmd.OutOrStdout(), a, records)
				return nil
			})
		},
	}
	f.register(cmd, false)

	return cmd
}

func printSummary(out io.Writer, a *app, records []model.Expense) {
	symbol := a.cfg.Display.CurrencySymbol
	total := aggregate.Total(records)

	fmt.Fprintf(out, "Total spent: %s across %d expenses\n", formatAmount(symbol, total), len(records))
	top := aggregate.Top(aggregate.CategoryTotals(records), summaryTop)
	if len(top) == 0 {
		return
	}
	fmt.Fprintln(out, "Top categories:")
	for i, ct := range top {
		fmt.Fprintf(out, "  %d. %s %s (%s%%)\n",
			i+1,
			a.cats.Lookup(ct.Category).Label,
			formatAmount(symbol, ct.Total),
			aggregate.Share(ct.Total, total).StringFixed(1),
		)
	}
}

func newCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the expense categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				tw := newTabWriter(cmd.OutOrStdout())
				fmt.Fprintln(tw, "CATEGORY\tICON\tCOLOR")
				for _, info := range a.cats.All() {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", info.Label, info.Icon, info.Color)
				}
				return tw.Flush()
			})
		},
	}
}
