// Package config loads the service configuration from an optional
// config.yaml and ECOMMERCE_* environment variables, applies defaults and
// validates the result.
package config
