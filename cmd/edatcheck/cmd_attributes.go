package main

import (
	"github.com/spf13/cobra"
)

var attributesCmd = &cobra.Command{
	Use:   "attributes <folder>",
	Short: "Check the migration attributes for an Eaton UPSName",
	Args:  cobra.ExactArgs(1),
	RunE:  runAttributesCheck,
}

func init() {
	rootCmd.AddCommand(attributesCmd)
}

func runAttributesCheck(cmd *cobra.Command, args []string) error {
	return runCheck(cmd, newValidator().AttributesCheck(args[0]))
}
