package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/tally/internal/model"
	"github.com/cleared-dev/tally/internal/store"
)

func newAddCommand() *cobra.Command {
	var category, date string

	cmd := &cobra.Command{
		Use:   "add <description> <amount>",
		Short: "Record a new expense",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = model.DateOf(time.Now()).String()
			}
			return withApp(cmd, func(a *app) error {
				id, err := a.store.Add(store.Params{
					Description: args[0],
					Amount:      args[1],
					Category:    category,
					Date:        date,
				})
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&category, "category", "c", "", "expense category (required)")
	_ = cmd.MarkFlagRequired("category")
	cmd.Flags().StringVarP(&date, "date", "d", "", "expense date, YYYY-MM-DD (default today)")

	return cmd
}

func newEditCommand() *cobra.Command {
	var p store.Params

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of an existing expense",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				current, ok := a.store.Get(args[0])
				if !ok {
					return &store.NotFoundError{ID: args[0]}
				}

				// Unset flags keep the current value; Update replaces every field.
				next := store.ParamsOf(current)
				flags := cmd.Flags()
				if flags.Changed("description") {
					next.Description = p.Description
				}
				if flags.Changed("amount") {
					next.Amount = p.Amount
				}
				if flags.Changed("category") {
					next.Category = p.Category
				}
				if flags.Changed("date") {
					next.Date = p.Date
				}

				if err := a.store.Update(args[0], next); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Updated %s\n", args[0])
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&p.Description, "description", "", "new description")
	cmd.Flags().StringVar(&p.Amount, "amount", "", "new amount")
	cmd.Flags().StringVarP(&p.Category, "category", "c", "", "new category")
	cmd.Flags().StringVarP(&p.Date, "date", "d", "", "new date, YYYY-MM-DD")

	return cmd
}

func newDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Remove an expense",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, func(a *app) error {
				if err := a.store.Delete(args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			})
		},
	}
}
