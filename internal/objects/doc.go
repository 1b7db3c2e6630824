// Package objects holds the class-specific validation hooks that run after
// field cleaning, and resolves them by the names used in schema files.
package objects
