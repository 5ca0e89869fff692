// Package filemanager holds the capability matrix for every file manager this
// project knows how to drive. The matrix is declarative data consulted by one
// generic synthesis algorithm; behavior differences between programs live in
// the table, not in per-program code paths.
package filemanager
