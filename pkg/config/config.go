package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/v2"

	"github.com/vertti/edatcheck/pkg/netcheck"
)

const (
	// FileName is the configuration file looked up from the working directory.
	FileName = ".edatcheck.yaml"
	// EnvPrefix prefixes environment variables, e.g. EDATCHECK_LOG_LEVEL.
	EnvPrefix = "EDATCHECK_"
)

var validate = validator.New()

// Default returns the configuration used when no source overrides it.
func Default() Config {
	return Config{
		Log:     LogConfig{Level: "error"},
		Output:  OutputConfig{Color: "auto"},
		Network: NetworkConfig{Exclude: []string{}},
		License: LicenseConfig{MAC: ""},
	}
}

// DefaultAsMap flattens Default for koanf's confmap provider.
func DefaultAsMap() map[string]any {
	def := Default()
	return map[string]any{
		"log.level":       def.Log.Level,
		"output.color":    def.Output.Color,
		"network.exclude": def.Network.Exclude,
		"license.mac":     def.License.MAC,
	}
}

// Load merges sources in order (later sources win), unmarshals and
// validates the result.
func Load(sources ...Source) (Config, error) {
	k := koanf.New(".")
	for _, s := range sources {
		if err := s.Load(k); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", s.Name(), err)
		}
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Output.Color = strings.ToLower(strings.TrimSpace(cfg.Output.Color))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				msgs = append(msgs, fmt.Sprintf("%s: invalid value %q (%s)", fe.Namespace(), fmt.Sprint(fe.Value()), fe.Tag()))
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.License.MAC != "" {
		if _, err := netcheck.ParseMAC(c.License.MAC); err != nil {
			return fmt.Errorf("invalid config: license.mac: %w", err)
		}
	}
	return nil
}

// MAC returns the configured MAC override, if any.
func (c Config) MAC() (netcheck.MACAddress, bool) {
	if c.License.MAC == "" {
		return "", false
	}
	mac, err := netcheck.ParseMAC(c.License.MAC)
	if err != nil {
		return "", false
	}
	return mac, true
}
