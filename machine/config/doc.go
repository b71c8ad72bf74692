// Package config handles loading and caching of experiment presets.
//
// A preset is a JSON file describing one bean machine experiment: slot
// count, bean count, mode, seed, and how many times to repeat the run.
// Manager loads presets from a directory, validates them, and caches the
// result so repeated lookups don't touch the filesystem.
package config
