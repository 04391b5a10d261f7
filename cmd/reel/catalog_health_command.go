package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"reel/internal/ipc"
)

func newCatalogHealthCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "catalog-health",
		Short: "Show catalog database diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withClient(func(client *ipc.Client) error {
				health, err := client.DatabaseHealth()
				if err != nil {
					return err
				}
				if asJSON {
					return writeJSON(cmd, health)
				}

				stdout := cmd.OutOrStdout()
				colorize := shouldColorize(stdout)
				for _, line := range renderSectionHeader("Catalog Health", colorize) {
					fmt.Fprintln(stdout, line)
				}

				fmt.Fprintln(stdout, renderStatusLine("Database", boolKind(health.DatabaseExists), health.DBPath, colorize))
				fmt.Fprintln(stdout, renderStatusLine("Readable", boolKind(health.DatabaseReadable), "", colorize))
				fmt.Fprintln(stdout, renderStatusLine("Schema", statusInfo, health.SchemaVersion, colorize))
				if len(health.MissingTables) > 0 {
					fmt.Fprintln(stdout, renderStatusLine("Tables", statusError, "missing: "+strings.Join(health.MissingTables, ", "), colorize))
				} else {
					fmt.Fprintln(stdout, renderStatusLine("Tables", statusOK, strings.Join(health.TablesPresent, ", "), colorize))
				}
				fmt.Fprintln(stdout, renderStatusLine("Integrity", boolKind(health.IntegrityCheck), "", colorize))
				fmt.Fprintln(stdout, renderStatusLine("Records", statusInfo, fmt.Sprintf("%d total", health.TotalRecords), colorize))
				if health.Error != "" {
					fmt.Fprintln(stdout, renderStatusLine("Error", statusError, health.Error, colorize))
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit JSON instead of status lines")
	return cmd
}

func boolKind(ok bool) statusKind {
	if ok {
		return statusOK
	}
	return statusError
}
