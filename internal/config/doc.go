// Package config loads and merges gitred configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (GITRED_SINCE_DAYS, GITRED_MIN_LINES, GITRED_MIN_PCT, GITRED_FORMAT)
//  3. Config file ($XDG_CONFIG_HOME/gitred/config.yaml)
//  4. Built-in defaults
//
// Use [Load] to obtain a merged [Config] and [SetField] to update a single
// key by name.
package config
