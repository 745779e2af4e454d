package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/glint-go/glint/internal/demo"
	"github.com/glint-go/glint/internal/errors"
	"github.com/glint-go/glint/pkg/dom"
	"github.com/glint-go/glint/pkg/page"
)

func renderCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "render [path]",
		Short: "Render a dashboard page to HTML",
		Long: `Render one demo page as a static HTML document.

The output is the exact markup the server would deliver on first
load, before any live session attaches. Useful for smoke tests and
snapshot diffing.

Examples:
  glint render
  glint render /leads
  glint render /settings --output=settings.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) == 1 {
				path = args[0]
			}
			return runRender(path, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Write HTML to a file instead of stdout")

	return cmd
}

func runRender(path, output string) error {
	fn, ok := demo.Pages()[path]
	if !ok {
		return errors.New("E200").
			WithDetail(fmt.Sprintf("No page registered at %q. Available: %s", path, strings.Join(pagePaths(), ", ")))
	}
	doc, err := fn(page.Location{Path: path})
	if err != nil {
		return errors.New("E240").Wrap(err)
	}

	html := dom.RenderDocument(doc)
	if output == "" {
		fmt.Print(html)
		return nil
	}
	if err := os.WriteFile(output, []byte(html), 0o644); err != nil {
		return err
	}
	success("wrote %s (%d bytes)", output, len(html))
	return nil
}

func pagePaths() []string {
	paths := make([]string, 0, len(demo.Pages()))
	for p := range demo.Pages() {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
