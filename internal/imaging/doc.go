// Package imaging loads images and reduces them to the statistics the terrain
// classifiers consume.
//
// The classifiers never see pixels. This package decodes an image file, picks
// an optional named region, and reduces every color channel to its arithmetic
// mean over all pixels of that region.
//
// # Coordinate System
//
// Regions are expressed relative to the image bounds, so images whose bounds
// do not start at (0,0) are handled the same as any other. Named regions
// split the image at integer midpoints; for odd sizes the right and bottom
// halves receive the extra row or column.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. ChannelMeans, MeanColorOf and
// SubImage do not modify their input and can be called concurrently.
//
// # Color Representation
//
// Means are computed on 8-bit components. Images with an alpha channel are
// averaged on their premultiplied components, which equals the straight
// components for fully opaque pixels.
//
// # Error Handling
//
// Functions return errors for:
//   - File I/O errors and undecodable files during loading
//   - Images with no pixels
//   - Unknown region names
package imaging
