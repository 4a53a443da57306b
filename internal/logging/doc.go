// Package logging provides opt-in file-based logging with rotation for lexindex.
// When the --debug flag is set, comprehensive logs are written to ~/.lexindex/logs/
// for debugging and troubleshooting.
//
// In MCP serve mode logs go to the file only: stdout carries the JSON-RPC
// stream and must never see a log line.
package logging
