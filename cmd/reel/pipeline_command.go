package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reel/internal/ipc"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var factCount int
	var categories []string
	var format string
	var targetLength string
	var resolution string
	var voice string
	var style string
	var publish bool
	var privacy string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full fact-to-published pipeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.PipelineRun(ipc.PipelineRunRequest{
					FactCount:    factCount,
					Categories:   categories,
					Format:       format,
					TargetLength: targetLength,
					Resolution:   resolution,
					VoiceType:    voice,
					VisualStyle:  style,
					Publish:      publish,
					Privacy:      privacy,
				})
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Pipeline finished in %.1fs\n", resp.DurationSeconds)
				summary := renderTable(
					[]string{"Stage", "Count"},
					[][]string{
						{"Facts", fmt.Sprintf("%d", len(resp.Facts))},
						{"Scripts", fmt.Sprintf("%d", len(resp.Scripts))},
						{"Videos", fmt.Sprintf("%d", len(resp.Videos))},
						{"Published", fmt.Sprintf("%d", len(resp.Published))},
					},
					[]columnAlignment{alignLeft, alignRight},
				)
				fmt.Fprintln(out, summary)

				for _, record := range resp.Published {
					fmt.Fprintf(out, "  %s -> %s\n", record.Title, record.ExternalURL)
				}
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&factCount, "count", "n", 1, "How many facts to generate")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "Restrict facts to categories (repeatable)")
	cmd.Flags().StringVar(&format, "format", "", "Script format")
	cmd.Flags().StringVar(&targetLength, "target-length", "", "Target video length, e.g. \"60 seconds\"")
	cmd.Flags().StringVar(&resolution, "resolution", "", "Output resolution")
	cmd.Flags().StringVar(&voice, "voice", "", "Narration voice type")
	cmd.Flags().StringVar(&style, "style", "", "Visual style preset")
	cmd.Flags().BoolVar(&publish, "publish", false, "Publish ready videos after assembly")
	cmd.Flags().StringVar(&privacy, "privacy", "", "Privacy setting for published videos")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
