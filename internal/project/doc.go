// Package project reads and writes the dandiya.toml manifest that drives
// batch generation.
package project
