// Package generator materializes a template's file tree under an output
// root: paths are rewritten through the placeholder engine, text files
// are rendered, and binary files are copied byte-for-byte. The first
// failing file aborts the run; there is no rollback.
package generator
