// Package schema compiles RPSL field declarations into immutable per-class
// metadata and holds the registry that maps a class name to its schema.
//
// A schema is compiled once, when its class is registered, and is shared by
// reference between all parses afterwards. Nothing in an ObjectSchema changes
// after Compile returns, so concurrent parses need no locking.
//
// # Declaration order
//
// The first declared field names the object class. Declaration order is kept
// for the allowed attributes and decides the join order of composite primary
// keys:
//
//	route:  primary key
//	descr:  optional, multiple
//	origin: primary key
//
// gives the primary key "<route>,<origin>".
package schema
