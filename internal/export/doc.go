// Package export serializes scan results to csv, json or xlsx files.
//
// Files are written atomically: the encoded output goes to a temporary file in
// the target directory, which replaces the target only after a successful
// write and sync. A failed export leaves any previous file untouched.
package export
