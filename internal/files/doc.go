// Package files provides the shared file-writing primitives used by the
// exporter and reporter.
//
// WriteAtomic is the single write path for artifacts: content goes to a
// temp file next to the target, is synced, and is renamed into place, so
// a failed write leaves either the previous file or nothing.
package files
