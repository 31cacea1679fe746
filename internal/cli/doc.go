// Package cli implements the sx command-line interface.
//
// The root command runs the explorer panel; subcommands cover the pieces
// that are useful without a terminal UI:
//
//	sx [dir]             - Open the explorer panel
//	sx sample            - Print CPU and memory samples
//	sx init              - Create .sx.yaml config
//	sx version           - Print version information
//	sx completion <sh>   - Generate shell completion
//
// # Configuration
//
// Every command resolves config the same way: --config if given, then
// .sx.yaml in the working directory, then ~/.config/sx/config.yaml, then
// built-in defaults. SX_* environment variables override file values, and
// command flags override both.
//
// # Logging
//
// Set SX_DEBUG=1 for debug output. While the panel owns the terminal, log
// output goes to sx-debug.log in the working directory instead of stderr.
package cli
