// Package diagnostic provides the ordered error, warning and info messages
// collected while an RPSL object is parsed and validated.
//
// Key capabilities:
//   - Structural errors raised by the attribute extractor
//   - Cardinality errors for missing, unknown or repeated attributes
//   - Field errors reported by field cleaners
//   - Warnings that never block acceptance of an object
package diagnostic
