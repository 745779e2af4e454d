package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/glint-go/glint/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ╔═╗┬  ┬┌┐┌┌┬┐
  ║ ╦│  │││││ │
  ╚═╝┴─┘┴┘└┘ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "glint",
		Short: "Server-driven dashboard interactions for Go",
		Long: `Glint renders admin dashboards on the server and drives their
client-side behavior over a WebSocket patch stream.

Pages are plain Go functions that build a document tree. Feature
bindings attach interaction behavior by CSS selector:

  • Sortable tables and debounced search
  • Validated forms and toast notifications
  • Tooltips, dropdown menus, sidebar chrome
  • Locale-aware currency and date formatting
  • Prometheus metrics on every session`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		serveCmd(),
		renderCmd(),
		initCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		errors.PrintError(err)
		os.Exit(1)
	}
}

// printBanner prints the Glint ASCII art banner.
func printBanner() {
	fmt.Print(banner)
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
