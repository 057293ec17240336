// Package nameindex maps sequence names to the destinations that requested
// them. An Index is built once from an ordered list of name files and is
// read-only afterwards.
package nameindex
