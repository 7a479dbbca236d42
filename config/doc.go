// Package config handles application configuration loading and validation.
//
// Defaults cover the common case of fetching incident messages once;
// a YAML file and command line flags overlay them. Validation uses
// struct tags.
package config
