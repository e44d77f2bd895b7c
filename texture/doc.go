// Package texture decodes image payloads into drawable textures.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognised by content, not by file
// name. Decoded pixels are held in a [gg.ImageBuf] so they can be drawn by
// the render package.
//
// [Decode] and [Dispose] plug directly into a registry:
//
//	textures := registry.New(texture.Dispose)
//	report, err := textures.Populate(reader, registry.MatchSuffix(".png"), texture.Decode)
package texture
