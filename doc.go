// Package zipassets loads named resources, such as textures, out of a zip
// archive into an ordered registry.
//
// The building blocks live in subpackages:
//   - [archive]: opens a zip archive, verifies it, and reads whole entries
//   - [registry]: a name-unique, insertion-ordered collection that owns its handles
//   - [texture]: decodes image payloads into drawable textures
//   - [render]: the window textures are drawn into
//
// # Quick Start
//
// Load every PNG and JPEG from an archive:
//
//	textures, report, err := zipassets.LoadTextures("./assets.zip")
//	if err != nil {
//	    return err
//	}
//	defer textures.Destroy()
//	for _, diag := range report.Diagnostics {
//	    log.Println(diag)
//	}
//	hero, err := textures.Get("hero.png")
//
// Entries that fail to read or decode are skipped and reported; they never
// abort the load. Only a missing or corrupt archive fails it.
//
// # Other resource types
//
// Any handle type works with a registry. Supply a decoder and a disposer:
//
//	r, err := archive.Open("./assets.zip")
//	if err != nil {
//	    return err
//	}
//	defer r.Close()
//	sounds := registry.New(func(s *Sound) { s.Free() })
//	report, err := sounds.Populate(r, registry.MatchSuffix(".ogg"), DecodeSound)
package zipassets
