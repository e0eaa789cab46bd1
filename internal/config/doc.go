// SPDX-License-Identifier: MIT

// Package config loads the mgraph configuration: built-in defaults, an
// optional YAML file, then MGRAPH_* environment overrides. Command-line
// flags are applied by the caller, after which Validate checks the result.
//
// Example file:
//
//	log:
//	  level: info       # debug|info|warn|error|off
//	  format: console   # json|console
//	  file: ""          # empty = stderr
//	shell:
//	  prompt: mgraph
//	  plain: false
//	  max_paths: 0      # 0 = list every simple path
//	  global_name: _all_
package config
