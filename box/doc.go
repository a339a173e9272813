// Package box defines the integer value types consumed by package region:
// Box, a half-open corner-pair rectangle, and Rectangle, an origin+extent
// rectangle in the style of image.Rectangle.
//
// Both types are plain integer math, total and pure; neither validates
// corner ordering on construction. A Box built with x2 < x1 (or y2 < y1)
// is simply empty, not an error.
package box
