// Package emoji decides which Unicode scalar values count as emoji-like and
// extracts maximal runs of them from text. The set of scalars is a Table of
// closed code-point intervals; matching works on decoded runes, so
// supplementary-plane characters are always seen as single values.
package emoji
