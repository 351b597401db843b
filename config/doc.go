// Package config loads larc configuration.
//
// It uses Viper to read a YAML file (larc.yml or config.yml) and binds
// environment variables on top, optionally loading a .env file first via
// godotenv.
//
// # Usage
//
//	var cfg config.Config
//	err := config.LoadConfig("larc", &cfg)
//	cfg.ApplyDefaults()
//	err = cfg.Validate()
//
// Environment variables override file values using underscore-separated
// paths under the LARC_ prefix (e.g. LARC_IP_MAX_EXPAND).
package config
