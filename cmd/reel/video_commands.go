package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reel/internal/ipc"
	"reel/internal/videos"
)

func newVideosCommand(ctx *commandContext) *cobra.Command {
	videosCmd := &cobra.Command{
		Use:   "videos",
		Short: "Inspect and assemble videos",
	}

	videosCmd.AddCommand(newVideosListCommand(ctx))
	videosCmd.AddCommand(newVideosAssembleCommand(ctx))
	videosCmd.AddCommand(newVideoStylesCommand())

	return videosCmd
}

func newVideosListCommand(ctx *commandContext) *cobra.Command {
	var status string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List assembled videos",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.VideoList(status)
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				if len(resp.Videos) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No videos assembled")
					return nil
				}
				table := renderTable(
					[]string{"ID", "Script", "Title", "Status", "Duration", "Resolution", "Detail"},
					buildVideoRows(resp.Videos),
					[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignRight, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (Ready, Failed)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newVideosAssembleCommand(ctx *commandContext) *cobra.Command {
	var resolution string
	var voice string
	var style string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "assemble <script-id> [script-id...]",
		Short: "Assemble videos from stored scripts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			scriptIDs, err := parseIDArgs(args)
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.VideoAssemble(ipc.VideoAssembleRequest{
					ScriptIDs:   scriptIDs,
					Resolution:  resolution,
					VoiceType:   voice,
					VisualStyle: style,
				})
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Assembled %d of %d videos\n", len(resp.Videos), len(scriptIDs))
				table := renderTable(
					[]string{"Script", "OK", "Error"},
					buildOutcomeRows(resp.Outcomes),
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				)
				fmt.Fprintln(out, table)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&resolution, "resolution", "", "Output resolution, e.g. 1080p")
	cmd.Flags().StringVar(&voice, "voice", "", "Narration voice type")
	cmd.Flags().StringVar(&style, "style", "", "Visual style preset")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newVideoStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "styles",
		Short:       "List available visual styles",
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := make([][]string, 0, 4)
			for _, info := range videos.Styles() {
				rows = append(rows, []string{info.Name, info.Description})
			}
			table := renderTable(
				[]string{"Style", "Description"},
				rows,
				[]columnAlignment{alignLeft, alignLeft},
			)
			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}
}
