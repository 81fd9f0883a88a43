// Package flatfile manages small comma-delimited text files that start with a
// fixed header row.
//
// Every operation opens the file, reads or writes it completely and closes it
// before returning. There is no locking: one process is expected to own the
// data directory at a time. Files are assumed to hold at most a few hundred
// rows, so reads load the whole file.
//
// All I/O failures are returned wrapped in common.ErrStorage.
package flatfile
