// Package config loads roster configuration.
//
// # Resolution Order
//
//  1. Built-in defaults
//  2. The TOML file (~/.config/roster/config.toml unless a path is given);
//     a missing file is not an error
//  3. A .env file in the working directory, if any
//  4. ROSTER_DATA, ROSTER_SOURCE_URL, ROSTER_PAGE_SIZE, ROSTER_LOG_DIR
//
// # TOML Format
//
//	data_path = "~/.local/share/roster/advocates.json"
//	source_url = "https://www.judiciary.go.ug/print_all_advocates.php"
//	page_size = 50
//	max_visible_pages = 7
//	log_dir = "~/.local/share/roster/logs"
//
// Every field is optional. Blank strings and non-positive numbers fall back
// to the defaults shown above. Paths get tilde expansion and are made
// absolute.
//
// # Error Handling
//
// Load fails on unreadable files, invalid TOML ("parse config: ...") and a
// ROSTER_PAGE_SIZE that is not a positive integer.
package config
