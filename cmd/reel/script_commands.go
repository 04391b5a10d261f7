package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reel/internal/ipc"
	"reel/internal/scripts"
)

func newScriptsCommand(ctx *commandContext) *cobra.Command {
	scriptsCmd := &cobra.Command{
		Use:   "scripts",
		Short: "Inspect and generate scripts",
	}

	scriptsCmd.AddCommand(newScriptsListCommand(ctx))
	scriptsCmd.AddCommand(newScriptsGenerateCommand(ctx))
	scriptsCmd.AddCommand(newScriptFormatsCommand())

	return scriptsCmd
}

func newScriptsListCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored scripts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ScriptList()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				if len(resp.Scripts) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No scripts stored")
					return nil
				}
				table := renderTable(
					[]string{"ID", "Fact", "Format", "Duration", "Sections", "Created"},
					buildScriptRows(resp.Scripts),
					[]columnAlignment{alignRight, alignRight, alignLeft, alignRight, alignRight, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newScriptsGenerateCommand(ctx *commandContext) *cobra.Command {
	var format string
	var targetLength string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "generate <fact-id> [fact-id...]",
		Short: "Generate scripts from stored facts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			factIDs, err := parseIDArgs(args)
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.ScriptGenerate(ipc.ScriptGenerateRequest{
					FactIDs:      factIDs,
					Format:       format,
					TargetLength: targetLength,
				})
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Generated %d of %d scripts\n", len(resp.Scripts), len(factIDs))
				table := renderTable(
					[]string{"Fact", "OK", "Error"},
					buildOutcomeRows(resp.Outcomes),
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				)
				fmt.Fprintln(out, table)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "Script format (Conversational, Educational, Entertaining)")
	cmd.Flags().StringVar(&targetLength, "target-length", "", "Target video length, e.g. \"60 seconds\"")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newScriptFormatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "formats",
		Short:       "List available script formats",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, 3)
			for _, info := range scripts.Formats() {
				rows = append(rows, []string{info.Name, info.Description})
			}
			table := renderTable(
				[]string{"Format", "Description"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
