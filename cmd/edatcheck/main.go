package main

import (
	"os"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/vertti/edatcheck/pkg/config"
	"github.com/vertti/edatcheck/pkg/logging"
)

// Version is set at build time via ldflags
var Version = "dev"

var (
	configFile   string
	logLevel     string
	colorMode    string
	macOverride  string
	excludeIface []string
)

// Loaded by loadConfig before every command.
var (
	appCfg config.Config
	logger = zerolog.Nop()
)

var knownSubcommands = []string{"validate", "config", "license", "attributes", "mac", "completion", "help", "--help", "-h", "--version", "-v"}

func main() {
	os.Args = transformArgs(os.Args, isDir)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "edatcheck",
	Short:             "Validate an EDAT installation folder",
	Long:              "edatcheck checks that an EDAT installation folder has DEC auto naming disabled, a license for this machine and Eaton migration attributes.",
	Version:           Version,
	PersistentPreRunE: loadConfig,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "path to config file (default: search "+config.FileName+" up from current directory)")
	pf.StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	pf.StringVar(&colorMode, "color", "auto", "colorize output (auto, always, never)")
	pf.StringVar(&macOverride, "mac", "", "use this MAC address instead of detecting it")
	pf.StringSliceVar(&excludeIface, "exclude-iface", nil, "additional interface name fragments to ignore when detecting the MAC address")
}

// transformArgs rewrites "edatcheck <folder>" to "edatcheck validate <folder>"
// when the first argument is an existing directory.
func transformArgs(args []string, isDir func(string) bool) []string {
	if len(args) < 2 {
		return args
	}
	first := args[1]
	if strings.HasPrefix(first, "-") || slices.Contains(knownSubcommands, first) {
		return args
	}
	if !isDir(first) {
		return args
	}
	return append([]string{args[0], "validate"}, args[1:]...)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	path, err := config.FindFile(wd, configFile)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.Sources(path, cmd.Flags())...)
	if err != nil {
		return err
	}

	l, err := logging.New(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Output.Color == "never")
	if err != nil {
		return err
	}

	appCfg, logger = cfg, l
	logger.Debug().Str("config", path).Str("color", cfg.Output.Color).Msg("configuration loaded")
	return nil
}
