package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"agenda/internal/store"
)

func init() {
	cmd := &cobra.Command{
		Use:   "dbcheck",
		Short: "List SQLite tables and the stored item count",
		Run:   runDBCheck,
	}

	cmd.Flags().String("db", "", "SQLite database path (overrides config)")

	RootCmd.AddCommand(cmd)
}

func runDBCheck(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		exitErr("load config", err)
	}
	if v, _ := cmd.Flags().GetString("db"); v != "" {
		cfg.DBPath = v
	}

	db, err := store.OpenDB(cfg.DBPath)
	if err != nil {
		exitErr("open db", err)
	}
	defer db.Close()

	tables, err := store.Tables(db)
	if err != nil {
		exitErr("list tables", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Tables:")
	for _, name := range tables {
		fmt.Fprintln(out, " -", name)
	}

	// missing before the first serve has run migrations
	n, err := store.CountItems(db)
	if err != nil {
		fmt.Fprintln(out, "Agenda items: n/a")
		return
	}
	fmt.Fprintln(out, "Agenda items:", n)
}
