// Package fields provides field cleaners for RPSL attribute values and a
// catalog that resolves them by type name, as referenced from schema files.
//
// A cleaner receives the normalized value, returns its canonical form, and
// reports rejections through the object's messages. Cleaners are stateless
// and safe for concurrent use.
package fields
