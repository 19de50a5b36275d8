// Package confloader loads chainmap-driver configuration with koanf.
//
// Priority (highest to lowest):
//
//  1. Overrides (command-line flags)
//  2. Environment variables (CHAINMAP_ prefix)
//  3. Configuration file (YAML)
//  4. Default values already set in the target
package confloader
