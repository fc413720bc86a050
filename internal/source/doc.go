// Package source holds the concrete template.Source implementations:
// a local directory, an fs.FS, and a shallow git clone staged into a
// temporary directory. Construction helpers live in the top-level
// scaffold package.
package source
