// Package match finds the nearest known name for a misspelled one.
//
// The validator uses it to point at the attribute a user most likely meant
// when an object carries an attribute its class does not allow, for example
// "desc" on a route object is reported together with a hint for "descr".
package match
