// Package logtail reads the tail of the roster log file.
//
// Read keeps a ring buffer of the last maxLines lines, so memory stays
// O(maxLines) no matter how large the log grows. It returns lines in
// chronological order and treats a missing file as empty.
//
//	lines, err := logtail.Read(cfg.LogPath(), 50)
//
// Level pulls the level out of a JSON entry so `roster log` can color it.
package logtail
