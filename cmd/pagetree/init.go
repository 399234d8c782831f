package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pagetree-ai/pagetree-go/internal/config"
	"github.com/pagetree-ai/pagetree-go/internal/home"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the pagetree home directory and a default config file",
	RunE: func(cmd *cobra.Command, args []string) error {
		h, err := home.New(homeDir)
		if err != nil {
			return err
		}
		if err := h.EnsureExists(); err != nil {
			return err
		}

		if h.ConfigExists() && !initForce {
			return fmt.Errorf("config already exists at %s (use --force to overwrite)", h.ConfigPath())
		}
		if err := config.WriteDefault(h.ConfigPath()); err != nil {
			return err
		}

		fmt.Printf("wrote %s\n", h.ConfigPath())
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
}
