package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vertti/edatcheck/pkg/check"
	"github.com/vertti/edatcheck/pkg/licensecheck"
	"github.com/vertti/edatcheck/pkg/netcheck"
	"github.com/vertti/edatcheck/pkg/output"
	"github.com/vertti/edatcheck/pkg/validator"
)

// ErrCheckFailed is returned when a check did not find what it expected.
var ErrCheckFailed = errors.New("check failed")

// newMACSource returns the configured MAC override or interface discovery.
func newMACSource() licensecheck.MACSource {
	if mac, ok := appCfg.MAC(); ok {
		logger.Debug().Str("mac", mac.String()).Msg("using configured MAC address")
		return netcheck.Fixed(mac)
	}
	return &netcheck.Resolver{
		Lister:  netcheck.RealInterfaceLister{},
		Exclude: appCfg.Network.Exclude,
		Logger:  logger,
	}
}

func newValidator() *validator.Validator {
	return validator.New(
		validator.WithLogger(logger),
		validator.WithMACSource(newMACSource()),
	)
}

func newPrinter(cmd *cobra.Command) *output.Printer {
	return output.New(cmd.OutOrStdout(), output.ColorMode(appCfg.Output.Color))
}

// runChecks prints results and returns ErrCheckFailed if any is not FOUND.
// The returned error causes Cobra to exit with code 1.
func runChecks(cmd *cobra.Command, results []check.Result) error {
	p := newPrinter(cmd)
	p.PrintResults(results)
	if len(results) > 1 {
		p.PrintSummary(validator.Summary(results))
	}

	if !validator.AllFound(results) {
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return ErrCheckFailed
	}
	return nil
}

// runCheck executes a single check and prints its result.
func runCheck(cmd *cobra.Command, c check.Checker) error {
	return runChecks(cmd, []check.Result{c.Run()})
}
