// Package config loads the application configuration from defaults, an
// optional YAML file, and EDA_* environment variables, in that order.
package config
