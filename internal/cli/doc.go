// Package cli defines the Cobra command tree for the aury-web CLI. Each file
// registers one top-level command with the root command. Commands parse
// flags, ask questions and print results; the work itself lives in the
// project, generate, theme, dockergen and docs packages.
package cli
