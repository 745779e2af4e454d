package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/glint-go/glint/internal/config"
)

func initCmd() *cobra.Command {
	var (
		name  string
		force bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a glint.json config file",
		Long: `Write a glint.json with default settings to the current directory.

The file documents every knob the server reads: listen address,
session timeouts, locale and date layout, search debounce window,
responsive breakpoint, alert auto-hide delay, logging, and metrics.

Examples:
  glint init
  glint init --name=crm-admin`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(name, force)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Project name (default: directory name)")
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing glint.json")

	return cmd
}

func runInit(name string, force bool) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	if config.Exists(wd) && !force {
		warn("glint.json already exists, use --force to overwrite")
		return nil
	}

	cfg := config.New()
	cfg.Name = name
	if cfg.Name == "" {
		cfg.Name = filepath.Base(wd)
	}
	if err := cfg.SaveTo(filepath.Join(wd, config.ConfigFileName)); err != nil {
		return err
	}

	success("created %s", config.ConfigFileName)
	info("edit it and start the server with 'glint serve'")
	return nil
}
