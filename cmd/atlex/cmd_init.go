package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbaskett248/atlex/config"
)

var (
	initCmd = &cobra.Command{
		Use:   "init",
		Short: "Write a default " + config.FileName + " in the current directory",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
	initForce bool
)

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing settings file")
}

func runInit(cmd *cobra.Command, args []string) error {
	if !initForce {
		if _, err := os.Stat(config.FileName); err == nil {
			return fmt.Errorf("%s already exists, use --force to overwrite", config.FileName)
		}
	}
	if err := config.Default().Write(config.FileName); err != nil {
		return err
	}

	fmt.Println("wrote " + config.FileName)
	return nil
}
