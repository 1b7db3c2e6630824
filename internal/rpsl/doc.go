// Package rpsl parses, validates and renders RPSL objects: the folded
// "attribute: value" text used by routing registries.
//
// A value may continue on following lines that start with a space, a '+' or
// a tab. The leading character of each continuation line is kept as a fold
// marker so that Render reproduces the original folding:
//
//	inetnum:        192.0.2.0 # first address
//	+               - # separator
//	+               192.0.2.1
//
// Parsing never fails. Malformed input gives an *Object whose Messages
// report what went wrong; callers check Messages().HasErrors().
//
// Strict parsing checks attribute cardinality and cleans every known
// attribute. Relaxed parsing skips the cardinality checks and cleans only
// primary and lookup keys, which is all an indexing pass needs.
package rpsl
