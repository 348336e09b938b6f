package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"agenda/internal/model"
)

func init() {
	ls := &cobra.Command{
		Use:   "ls",
		Short: "List agenda items",
		Run:   runLs,
	}
	ls.Flags().String("day", "", "Only items on this day (exact match)")

	get := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one agenda item",
		Args:  cobra.ExactArgs(1),
		Run:   runGetItem,
	}

	add := &cobra.Command{
		Use:   "add",
		Short: "Add an agenda item",
		Run:   runAdd,
	}
	add.Flags().String("title", "", "Talk title (required)")
	add.Flags().String("author", "", "Speaker")
	add.Flags().String("day", "", "Day")
	add.Flags().String("time", "", "Time slot")
	add.MarkFlagRequired("title")

	clearCmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every agenda item",
		Run:   runClear,
	}

	RootCmd.AddCommand(ls, get, add, clearCmd)
}

func runLs(cmd *cobra.Command, args []string) {
	day, _ := cmd.Flags().GetString("day")
	c := newClient()

	var (
		items []model.AgendaItem
		err   error
	)
	if cmd.Flags().Changed("day") {
		items, err = c.ListByDay(cmd.Context(), day)
	} else {
		items, err = c.List(cmd.Context())
	}
	if err != nil {
		exitErr("ls", err)
	}
	printJSON(cmd.OutOrStdout(), items)
}

func runGetItem(cmd *cobra.Command, args []string) {
	item, err := newClient().Get(cmd.Context(), args[0])
	if err != nil {
		exitErr("get", err)
	}
	printJSON(cmd.OutOrStdout(), item)
}

func runAdd(cmd *cobra.Command, args []string) {
	title, _ := cmd.Flags().GetString("title")
	author, _ := cmd.Flags().GetString("author")
	day, _ := cmd.Flags().GetString("day")
	at, _ := cmd.Flags().GetString("time")

	res, err := newClient().Create(cmd.Context(), model.NewAgendaItemWithFields(title, author, day, at))
	if err != nil {
		exitErr("add", err)
	}
	printJSON(cmd.OutOrStdout(), map[string]any{
		"ok":      true,
		"id":      res.ID,
		"message": res.Message,
	})
}

func runClear(cmd *cobra.Command, args []string) {
	if err := newClient().DeleteAll(cmd.Context()); err != nil {
		exitErr("clear", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), `{"ok":true}`)
}
