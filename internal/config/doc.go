// Package config resolves runtime configuration from environment variables
// and an optional .env file, built on spf13/viper. Flags defined in cmd
// override everything resolved here.
package config
