// Package config loads runtime settings for the healthmate CLI.
//
// Sources are applied in order, later overriding earlier:
//
//  1. Built-in defaults (LoadDefaults)
//  2. A JSON file named by -c/-config
//  3. Command-line flags (-a, -d, -l, -t, -i)
//
// Each stage only parses the flags it owns (see flagx.FilterArgs), so the
// JSON-path flags and the value flags can coexist on one command line.
package config
