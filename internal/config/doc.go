// Package config loads Vitrine's application configuration.
//
// Settings come from three layers, later ones winning:
//
//  1. Built-in defaults (Default)
//  2. ~/.config/vitrine/config.toml, or the file passed with --config
//  3. VITRINE_* environment variables, with "." in a key replaced by "_"
//     (VITRINE_API_QUERY, VITRINE_GALLERY_PAGE_SIZE)
//
// A missing config file is not an error. A file that exists but cannot be
// parsed, or a value that fails Validate, is.
//
// Example config.toml:
//
//	[api]
//	base_url = "https://api.vam.ac.uk"
//	query = "theatre"
//	fetch_size = 30
//	timeout = "10s"
//
//	[gallery]
//	page_size = 12
//
//	[speech]
//	command = "espeak-ng -s 150"
//
//	[log]
//	level = "info"
//	file = "~/.local/state/vitrine/vitrine.log"
//
//	[announce]
//	history_file = "~/.local/state/vitrine/announcements.log"
//
// Display preferences (theme, contrast, text size, narration) are user state
// rather than configuration and live in package prefs.
package config
