package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reel/internal/ipc"
)

func newPublishCommand(ctx *commandContext) *cobra.Command {
	var privacy string
	var force bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "publish <video-id> [video-id...]",
		Short: "Publish assembled videos to the platform",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			videoIDs, err := parseIDArgs(args)
			if err != nil {
				return err
			}
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.Publish(ipc.PublishRequest{
					VideoIDs: videoIDs,
					Privacy:  privacy,
					Force:    force,
				})
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Published %d of %d videos\n", len(resp.Published), len(videoIDs))
				table := renderTable(
					[]string{"Video", "OK", "Error"},
					buildOutcomeRows(resp.Outcomes),
					[]columnAlignment{alignRight, alignLeft, alignLeft},
				)
				fmt.Fprintln(out, table)
				for _, record := range resp.Published {
					fmt.Fprintf(out, "  %s -> %s\n", record.Title, record.ExternalURL)
				}
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&privacy, "privacy", "", "Privacy setting (Public, Unlisted, Private)")
	cmd.Flags().BoolVar(&force, "force", false, "Publish again even if the video was already published")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newPublishedCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "published",
		Short: "List publish records",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				resp, err := client.PublishedList()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, resp)
				}
				if len(resp.Published) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "Nothing published yet")
					return nil
				}
				table := renderTable(
					[]string{"ID", "Video", "Title", "Privacy", "URL", "Published"},
					buildPublishedRows(resp.Published),
					[]columnAlignment{alignRight, alignRight, alignLeft, alignLeft, alignLeft, alignLeft},
				)
				fmt.Fprintln(cmd.OutOrStdout(), table)
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of a table")
	return cmd
}
