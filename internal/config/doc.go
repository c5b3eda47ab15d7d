// Package config loads emojiscan configuration from local and global YAML
// files with precedence rules. CLI code maps flags and files into engine
// configuration.
package config
