// Package render draws a grid.Field and a computed path to an image:
// the renderer collaborator that turns search output into a PNG artifact.
//
// What:
//
//   - Rounded cell tiles: dark obstacle tiles with a red cross, light
//     free tiles, optional per-cell coordinate labels.
//   - The path as a connected polyline with white-edged dot markers,
//     step-index badges, and direction arrowheads.
//   - A green square at the start, a gold five-pointed star at the
//     goal, captions for both, and an optional legend band.
//   - Mathematical orientation: y grows upward, (0,0) bottom-left.
//
// Why:
//
//   - The search engine only produces cell sequences; a picture of the
//     arena and the route is how a human checks the plan at a glance.
//   - The engine never imports this package: rendering consumes
//     (field, start, goal, path) and nothing flows back.
//
// Entry points:
//
//   - Render   → image.Image for further composition.
//   - WritePNG → encode to any io.Writer.
//   - SavePNG  → write an image file.
//
// Errors:
//
//   - ErrNilField:        nil field pointer.
//   - ErrBadOptions:      CellSize or Margin out of range.
//   - ErrCellOutOfBounds: a path cell or marker outside the field.
package render
