// Package app is the composition root for roster.
//
// Each command loads the config (TOML plus ROSTER_* environment overrides),
// builds a zap logger, and then:
//
//   - Run loads the dataset into a state.Engine and starts the browser.
//     The browser owns the terminal, so it logs JSON to the log file.
//   - Scrape fetches the published roll, retrying with exponential backoff,
//     and writes the dataset.
//   - List prints one filtered page without the browser.
//   - Tail prints the end of the browser log.
//
// A missing dataset is reported with a hint to run `roster scrape`.
//
//	Run()
//	  ├─> config.Load()      file, .env, environment
//	  ├─> logging.New()      JSON log
//	  ├─> prefs.Load()       theme and layout
//	  ├─> roster.Load()      dataset
//	  ├─> state.NewEngine()  query state, seeded from flags
//	  └─> ui.Run()           blocks until quit
package app
