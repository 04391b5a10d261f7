package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reel/internal/ipc"
)

func newFactsCommand(ctx *commandContext) *cobra.Command {
	factsCmd := &cobra.Command{
		Use:   "facts",
		Short: "Inspect and create facts",
	}

	factsCmd.AddCommand(newFactsListCommand(ctx))
	factsCmd.AddCommand(newFactsAddCommand(ctx))
	factsCmd.AddCommand(newFactsGenerateCommand(ctx))

	return factsCmd
}

func newFactsListCommand(ctx *commandContext) *cobra.Command {
	var category string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored facts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.FactList(category)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				if len(resp.Facts) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No facts stored")
					return nil
				}
				table := renderTable(
					[]string{"ID", "Category", "Content", "Created"},
					buildFactRows(resp.Facts),
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Filter by category")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newFactsAddCommand(ctx *commandContext) *cobra.Command {
	var category string

	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Store a manually supplied fact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.FactCreate(args[0], category)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Stored fact %d (%s)\n", resp.Fact.ID, resp.Fact.Category)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Category label (defaults to General)")
	return cmd
}

func newFactsGenerateCommand(ctx *commandContext) *cobra.Command {
	var count int
	var categories []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Draw new facts from the curated pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.FactGenerate(count, categories)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				out := cmd.OutOrStdout()
				if len(resp.Facts) == 0 {
					fmt.Fprintln(out, "No facts generated")
					return nil
				}
				fmt.Fprintf(out, "Generated %d facts\n", len(resp.Facts))
				table := renderTable(
					[]string{"ID", "Category", "Content", "Created"},
					buildFactRows(resp.Facts),
					[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(out, table)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&count, "count", "n", 1, "How many facts to generate")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Restrict to categories (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
