// Package render holds the rendering context and the placeholder engine
// that rewrites template paths and file contents. The engine recognises
// three placeholder forms applied in a fixed order: pongo2 expression
// spans, the literal ${projectName}/${packageName} tokens, and the
// __packageDir__ directory token.
package render
