// Package config loads vuecrm's TOML configuration.
//
// # Configuration Discovery
//
// ResolvePath picks the file in this order:
//
//  1. The --config flag, when given
//  2. $VUECRM_CONFIG, when set
//  3. ~/.config/vuecrm/config.toml
//
// A missing file is not an error: Load returns Default(). Fields that are
// absent or blank in the file keep their defaults.
//
// # Default Values
//
//   - prefs_path: ~/.config/vuecrm/prefs.toml
//   - appearance_file: ~/.config/vuecrm/color-scheme
//   - log_file: ~/.local/state/vuecrm/vuecrm.log
//   - log_level: info
//   - seed_file: (embedded sample data)
//   - contacts_page_size: 8
//   - creators_page_size: 9
//
// # TOML Format
//
//	prefs_path = "~/.config/vuecrm/prefs.toml"
//	appearance_file = "~/.config/vuecrm/color-scheme"
//	log_level = "debug"
//	contacts_page_size = 10
//
// Tilde expansion is performed for every path field. Non-positive page sizes
// are ignored.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures (e.g., cannot determine home directory)
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
package config
