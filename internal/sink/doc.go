// Package sink writes routed records to output files.
//
// Layering, outermost first: encoder → optional gzip (pgzip) → bufio → file.
// Files are either truncated or opened in append mode; appending to a gzip
// output adds a new gzip member, which readers decompress as a concatenation.
package sink
