// Package engine contains the core scanning logic for emojiscan. It walks a
// directory tree, selects web-asset files, loads them as UTF-8 text, and
// hands each file's distinct emoji runs to the caller. This package is
// internal; external consumers should use the stable facade in pkg/core.
package engine
