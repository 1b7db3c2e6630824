// Package batch parses streams of RPSL objects, such as registry dumps or
// import files, where objects are separated by blank lines.
//
// Objects are parsed concurrently. Each object is independent: a structural
// error or an unknown class in one object never affects another, and
// results are returned in input order.
package batch
