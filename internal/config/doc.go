// Package config handles configuration loading and merging for eg.
//
// # Configuration Precedence
//
// Configuration values are resolved in the following order (highest to lowest priority):
//
//  1. CLI flags (--examples-dir, --custom-dir, --use-color/--no-color, --pager-cmd, --squeeze)
//  2. The egrc file (~/.egrc, or the path given with --config-file)
//  3. Hardcoded defaults
//
// A source only wins for a field it actually sets. An explicit false is a
// setting; a flag the user never passed, or a key missing from the egrc, is not.
//
// Colors and substitutions are not settable from the command line. Colors are
// merged field by field from the egrc over the defaults. Substitutions come
// from the egrc as a whole list when it has any, else from the defaults.
//
// # egrc Format
//
// The egrc is YAML, or TOML when its name ends in ".toml":
//
//	examples_dir: ~/eg/examples
//	custom_dir: ~/eg/custom
//	use_color: true
//	pager_cmd: less -R
//	squeeze: false
//	color:
//	  pound: "\x1b[32m"
//	  pound_reset: "\x1b[0m"
//	substitutions:
//	  - ["\n\n\n", "\n\n", true]
//	  - ["    ", ""]
//
// # Environment Variables
//
//   - EG_DEBUG: Set to any non-empty value to enable debug output
package config
