// Package config turns dirguard's command line into a typed configuration
// and loads the ambient runtime settings.
//
// # Reconciliation options
//
// The reconciliation is driven by order-independent key=value tokens:
//
//	check-folder-for-files=DIR            directory to scan (required)
//	required-files-file=FILE              expected-list file (required)
//	suffix=.java,.kt                      suffix filter, comma separated
//	generate-required-files-file=true     write FILE instead of checking it
//	on-error-create-file=FILE             snapshot of the listing on mismatch
//
// Parsing never fails. Malformed tokens and unknown keys are skipped, and
// a repeated key keeps its last value:
//
//	parsed := config.Parse(os.Args[1:])
//	if parsed.HasMissingRequired() {
//	    // report parsed.MissingRequired()
//	}
//	cfg, err := parsed.Resolve()
//
// # Runtime settings
//
// LoadSettings merges defaults, an optional .dirguard.yaml and environment
// variables:
//
//	DIRGUARD_VERBOSE      Verbosity level (a number or a run of 'v's)
//	DIRGUARD_NO_COLOR     Disable colored output (true/false)
//	DIRGUARD_OUTPUT       Mismatch report format: text|json|yaml
//	DIRGUARD_LOG_FORMAT   Log encoding: json|console
//
// The config file is looked up in the working directory, then in
// $XDG_CONFIG_HOME/dirguard and $XDG_CONFIG_HOME.
package config
