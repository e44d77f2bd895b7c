// Package archive provides read-only access to zip-compatible asset archives.
//
// A [Reader] parses the central directory and verifies every local file
// header when it is opened, so a truncated or tampered archive fails at
// [Open] instead of on first read. Entries are read whole into memory; the
// buffer is sized from the entry's declared uncompressed size and bounded by
// [WithMaxFileSize].
//
// Stored and deflated entries are supported, as are Zstandard entries
// (method 93, and the older method 20) through a pooled decoder.
//
//	r, err := archive.Open("assets.zip")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//
//	entries, err := r.Entries()
//	if err != nil {
//	    return err
//	}
//	for _, e := range entries {
//	    data, err := r.ReadEntry(e)
//	    ...
//	}
//
// A Reader is not safe for concurrent use.
package archive
