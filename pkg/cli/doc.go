// Package cli implements the command-line interface for the Cursor version bypass tool.
//
// # Overview
//
// The bypass CLI locates Cursor's product.json, decides whether the recorded version
// needs raising, and rewrites that single field after taking a timestamped backup.
//
// # Commands
//
// run - Perform the bypass (also the default when no command is given):
//
//	bypass [--no-fetch | --hint VERSION] [--config FILE]
//
// Fetches the latest published version, then updates product.json when its version is
// below 1.5.4 or differs from the latest one. Exits with status 1 on failure.
//
// check - Dry run:
//
//	bypass check [--output FILE] [--format yaml|json|table]
//
// Prints the decision (current, latest, target, update required) and the messages a run
// would show, without writing anything.
//
// paths - Show product.json locations:
//
//	bypass paths [--format yaml|json|table]
//
// compare - Compare two versions:
//
//	bypass compare 1.5 1.5.1
//
// # Global Flags
//
//	--config        config.ini with WindowsPaths.cursor_path / MacPaths.product_json_path
//	--manifest-url  Version history location
//	--no-fetch      Skip the version history request
//	--hint          Use a fixed latest version
//	--timeout       Version history request timeout (default: 10s)
//	--lang          Message language: en, zh_cn, zh_tw
//	--log-level     Structured log level on stderr (default: warn)
//	--no-color      Disable ANSI colours
//	--metrics-file  Write Prometheus metrics in text format after a run
//
// # Environment Variables
//
//	BYPASS_CONFIG        Same as --config
//	BYPASS_MANIFEST_URL  Same as --manifest-url
//	BYPASS_LANG          Same as --lang; LANG is used when neither is set
//	LOG_LEVEL            Same as --log-level
//	NO_COLOR             Same as --no-color
//	LOCALAPPDATA         Windows install root
//
// # Exit Codes
//
//	0  Success, including when no update was needed
//	1  Failure (reported on stdout) or invalid arguments
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/NVIDIA/version-bypass/pkg/cli.version=1.0.0'"
package cli
