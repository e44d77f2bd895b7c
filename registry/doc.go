// Package registry provides a name-keyed, insertion-ordered collection of
// decoded resource handles populated from an archive.
//
// A [Registry] owns every handle inserted into it. Handles are released
// through the disposer given to [New] when they are removed, when an insert
// is rejected as a duplicate, and when the registry is destroyed. Names are
// compared by content and are unique; indices are 0-based and always dense,
// so after any sequence of inserts and removals At(i) succeeds exactly for
// 0 <= i < Len().
//
//	textures := registry.New(texture.Dispose, registry.WithName("textures"))
//	defer textures.Destroy()
//
//	report, err := textures.Populate(reader, registry.MatchSuffix(".png", ".jpg"), texture.Decode)
//	if err != nil {
//	    return err // archive-level failure
//	}
//	for _, d := range report.Diagnostics {
//	    log.Warn("skipped asset", "err", d)
//	}
//
// A Registry does no locking. Populate it fully before sharing it with
// readers; concurrent mutation during lookups must be excluded by the caller.
package registry
