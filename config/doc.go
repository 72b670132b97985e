// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// Feed credentials may be supplied through the environment (or a .env file)
// instead of the YAML file.
package config
