package main

import (
	"github.com/spf13/cobra"

	"github.com/vertti/edatcheck/pkg/check"
	"github.com/vertti/edatcheck/pkg/licensecheck"
)

var macCmd = &cobra.Command{
	Use:   "mac",
	Short: "Show the detected MAC address and the license file it expects",
	Args:  cobra.NoArgs,
	RunE:  runMac,
}

func init() {
	rootCmd.AddCommand(macCmd)
}

func runMac(cmd *cobra.Command, _ []string) error {
	result := check.Result{Name: "mac"}
	mac, err := newMACSource().Primary()
	if err != nil {
		result.AddDetail(err.Error())
		result.Fail("Could not determine MAC address of an Ethernet adapter.",
			&check.Error{Kind: check.KindNetworkLookupFailure, Err: err})
	} else {
		result.AddDetailf("license file: %s", licensecheck.FileName(mac))
		result.Foundf("MAC address %s", mac)
	}
	return runChecks(cmd, []check.Result{result})
}
