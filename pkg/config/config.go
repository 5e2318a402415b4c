package config

type Config interface {
	Listen() string
	DatabasePath() string
	DefaultBrand() string
	SessionSecret() string
	Debug() bool

	SetListen(string)
	SetDatabasePath(string)
	SetDefaultBrand(string)
	SetSessionSecret(string)
	SetDebug(bool)

	// Load reads the configuration from the source.
	Load() error
	// Save saves the configuration to the source.
	Save() error
}
