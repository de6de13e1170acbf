// Package project creates new projects and reads the metadata file
// (.aury/project.yaml) that marks a directory as one.
//
// Create drives the whole init flow: template materialization, git
// initialization, .gitignore merge, dependency install and component
// install. Every external command goes through a runner.CommandRunner so the
// flow can be exercised without spawning processes.
package project
