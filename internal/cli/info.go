package cli

import (
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(&cobra.Command{
		Use:   "info",
		Short: "Show the server's name and version",
		Run: func(cmd *cobra.Command, args []string) {
			info, err := newClient().Info(cmd.Context())
			if err != nil {
				exitErr("info", err)
			}
			printJSON(cmd.OutOrStdout(), info)
		},
	})
}
