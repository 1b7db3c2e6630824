// Package schemafile loads RPSL class declarations from YAML and compiles
// them into a schema registry.
//
// # File format
//
//	version: "1"
//	classes:
//	  - class: route
//	    fields:
//	      - name: route
//	        type: ipv4-prefix
//	        flags: primary_key
//	      - name: descr
//	        flags: [optional, multiple]
//	      - name: origin
//	        type: as-number
//	        flags: primary_key
//	      - name: member-of
//	        type: route-set-name
//	        list: true
//	        flags: [optional, multiple]
//
// The first field must be named like the class. Field types resolve through
// a fields.Catalog and default to "text". A class may name a hook from the
// objects package. The built-in declarations are embedded and compiled once
// per process by Default.
package schemafile
