// Parses flags, loads configuration, and runs package steps against a build.
//
// The tool accepts the following global flags:
//
//	-q, --quiet     Suppress informational output.
//	-v, --verbose   Add timestamps and call sites to log output.
//	-d, --debug     Enable debug output.
//	-c, --config    Configuration file.
//	    --state     Build context state file.
//
// Flags override build-time defaults set via linker flags and values from the
// configuration file. After parsing, the global logger is reconfigured to
// reflect the final level and verbosity before any command runs.
//
// Every command that changes the build context loads it from the state file,
// runs, and writes it back, whether or not the command succeeded. Promotions
// and set changes made before a failure are therefore kept.
//
// Example usage:
//
//	cruxpkg init --distribution alpine --version v3.1
//	cruxpkg setup
//	cruxpkg ensure build-essential python2-dev git
//	cruxpkg ensure --strict python2
//	cruxpkg finish
package cli
