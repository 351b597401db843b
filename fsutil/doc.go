// Package fsutil holds small filesystem helpers: walking a tree, searching
// parent directories, naming backups and peeking at file heads.
package fsutil
