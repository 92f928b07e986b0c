// Package configs manages jpas configuration.
//
// Configuration lives at two levels:
//
//   - Project config: jpas.json in the working directory, written by
//     `jpas init`. Its only option, save_other_gpg_recipients, is reserved
//     and not acted on.
//   - User settings: config.toml under the user's config directory
//     (~/.config/jpas/config.toml on Linux), overridable with JPAS_CONFIG.
//
// # User Settings
//
// The user settings file selects the gpg executable:
//
//	[gpg]
//	program = "/usr/local/bin/gpg2"
//
// A missing file means defaults: gpg is looked up on PATH.
package configs
