package main

import (
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config <folder>",
	Short: "Check that config/config.xml sets DECAutoName to false",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigCheck,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfigCheck(cmd *cobra.Command, args []string) error {
	return runCheck(cmd, newValidator().ConfigCheck(args[0]))
}
