package config

// Config is the root configuration of edatcheck.
type Config struct {
	Log     LogConfig     `koanf:"log"`
	Output  OutputConfig  `koanf:"output"`
	Network NetworkConfig `koanf:"network"`
	License LicenseConfig `koanf:"license"`
}

// LogConfig holds logging related configuration.
type LogConfig struct {
	Level string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
}

// OutputConfig holds result printing configuration.
type OutputConfig struct {
	Color string `koanf:"color" validate:"oneof=auto always never"`
}

// NetworkConfig tunes MAC address discovery.
type NetworkConfig struct {
	Exclude []string `koanf:"exclude" validate:"dive,required"` // extra interface-name fragments to skip
}

// LicenseConfig holds license check configuration.
type LicenseConfig struct {
	MAC string `koanf:"mac"` // explicit MAC, bypasses interface discovery
}
