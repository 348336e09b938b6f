// Package cli implements the agenda command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"agenda/internal/client"
	"agenda/internal/shared"
)

var (
	configPath string
	serverURL  string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "agenda",
	Short: "Conference agenda service",
	Long:  "Serves and manages conference agenda items over a small JSON HTTP API.",
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to YAML config (default: $AGENDA_CONFIG, else defaults + env)")
	RootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "", "Agenda API base URL (default: $AGENDA_SERVER or http://localhost:8080)")
}

func loadConfig() (*shared.ServerConfig, error) {
	path := configPath
	if path == "" {
		path = os.Getenv("AGENDA_CONFIG")
	}
	return shared.LoadServerConfig(path)
}

func newClient() *client.Client {
	if serverURL != "" {
		return client.New(serverURL)
	}
	if env := os.Getenv("AGENDA_SERVER"); env != "" {
		return client.New(env)
	}
	return client.New("http://localhost:8080")
}

func printJSON(w io.Writer, v any) {
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Fprintln(w, string(b))
}

func exitErr(msg string, err error) {
	fmt.Fprintf(os.Stderr, "error: %s: %v\n", msg, err)
	os.Exit(1)
}
