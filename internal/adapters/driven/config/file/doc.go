// Package file provides the file-based configuration adapter.
// Settings persist to a TOML file under the acta config directory and
// are exposed through the driven.ConfigStore port.
package file
