package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Source loads configuration values into a koanf instance.
type Source interface {
	Name() string
	Load(k *koanf.Koanf) error
}

// DefaultSource provides the hardcoded defaults.
type DefaultSource struct{}

func (s *DefaultSource) Name() string { return "defaults" }

func (s *DefaultSource) Load(k *koanf.Koanf) error {
	return k.Load(confmap.Provider(DefaultAsMap(), "."), nil)
}

// FileSource loads a YAML file. An empty path is skipped.
type FileSource struct {
	Path string
}

func (s *FileSource) Name() string { return "file:" + s.Path }

func (s *FileSource) Load(k *koanf.Koanf) error {
	if s.Path == "" {
		return nil
	}
	if _, err := os.Stat(s.Path); err != nil {
		return fmt.Errorf("error checking config file %s: %w", s.Path, err)
	}
	return k.Load(file.Provider(s.Path), yaml.Parser())
}

// EnvSource loads EDATCHECK_* variables. Underscores map to dots and
// network.exclude is split on commas:
//
//	EDATCHECK_LOG_LEVEL=debug           -> log.level
//	EDATCHECK_NETWORK_EXCLUDE=veth,tun  -> network.exclude
type EnvSource struct {
	Prefix string
}

func (s *EnvSource) Name() string { return "env" }

func (s *EnvSource) Load(k *koanf.Koanf) error {
	prefix := s.Prefix
	if prefix == "" {
		prefix = EnvPrefix
	}
	return k.Load(env.ProviderWithValue(prefix, ".", func(key, value string) (string, any) {
		key = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(key, prefix)), "_", ".")
		if key == "network.exclude" {
			return key, splitList(value)
		}
		return key, value
	}), nil)
}

// flagKeys maps CLI flag names to config keys.
var flagKeys = map[string]string{
	"log-level":     "log.level",
	"color":         "output.color",
	"exclude-iface": "network.exclude",
	"mac":           "license.mac",
}

// FlagSource loads flags the user set explicitly.
type FlagSource struct {
	Flags *pflag.FlagSet
}

func (s *FlagSource) Name() string { return "flags" }

func (s *FlagSource) Load(k *koanf.Koanf) error {
	if s.Flags == nil {
		return nil
	}
	return k.Load(posflag.ProviderWithFlag(s.Flags, ".", k, func(f *pflag.Flag) (string, any) {
		key, ok := flagKeys[f.Name]
		if !ok || !f.Changed {
			return "", nil
		}
		if f.Value.Type() == "stringSlice" {
			v, _ := s.Flags.GetStringSlice(f.Name)
			return key, v
		}
		return key, f.Value.String()
	}), nil)
}

// Sources returns the standard chain: defaults, file, env, flags.
func Sources(path string, flags *pflag.FlagSet) []Source {
	return []Source{
		&DefaultSource{},
		&FileSource{Path: path},
		&EnvSource{Prefix: EnvPrefix},
		&FlagSource{Flags: flags},
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
