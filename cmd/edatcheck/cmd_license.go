package main

import (
	"github.com/spf13/cobra"
)

var licenseCmd = &cobra.Command{
	Use:   "license <folder>",
	Short: "Check that lic/ holds the license file for this machine",
	Args:  cobra.ExactArgs(1),
	RunE:  runLicenseCheck,
}

func init() {
	rootCmd.AddCommand(licenseCmd)
}

func runLicenseCheck(cmd *cobra.Command, args []string) error {
	return runCheck(cmd, newValidator().LicenseCheck(args[0]))
}
