// Package config manages user-level settings stored at ~/.aury/config.yaml.
// It loads, reads, and writes keys such as the preferred package manager, the
// default theme, and an on-disk templates directory override.
package config
