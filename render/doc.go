// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render drains tessel shape expressions into pixels.
//
// The package sits on the consumer side of the tessel.Shape contract: a
// renderer pulls the shape's triangle stream once per Render call,
// batches consecutive triangles that share a texture, and draws them in
// emission order (painter's algorithm: later triangles paint over
// earlier ones).
//
// # Coordinate Mapping
//
// Shapes live in GPU clip space: x and y in [-1, 1], y up, origin in the
// center. A Target maps that square onto its pixel grid, y flipped, with
// no aspect correction; callers wanting square units on a non-square
// target scale their shapes accordingly.
//
// # Implementations
//
//   - Software: CPU rasterizer over a Target's *image.RGBA. Barycentric
//     coverage, bilinear texture sampling, source-over blending. No
//     antialiasing and no z-buffer; order is the only depth mechanism.
//
// GPU-backed implementations plug in behind the same Renderer interface;
// the shape side never knows which one is draining it.
package render
