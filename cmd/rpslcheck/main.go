// Package main provides the CLI entrypoint for rpslcheck.
//
// rpslcheck parses RPSL objects from files or stdin and:
//   - Validates them against the built-in (or additional) class schemas
//   - Prints their canonical rendering
//   - Prints their primary keys
//   - Lists the known classes
package main

func main() {
	Execute()
}
