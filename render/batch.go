// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/tessel"

// Batch is a run of consecutive triangles sharing one texture binding
// (nil for flat-colored runs). Batching preserves emission order
// exactly: a GPU backend issues one draw call per batch, a CPU backend
// just avoids re-checking the texture per triangle.
type Batch struct {
	Texture *tessel.Texture
	Tris    []tessel.RendTri
}

// Batches drains the shape once and groups its stream into maximal runs
// of triangles with identical texture handles. Identity is pointer
// identity: two textures with equal pixels still split a batch.
func Batches(shape tessel.Shape) []Batch {
	var out []Batch
	for rt := range shape.Triangles() {
		if n := len(out); n > 0 && out[n-1].Texture == rt.Texture {
			out[n-1].Tris = append(out[n-1].Tris, rt)
			continue
		}
		out = append(out, Batch{Texture: rt.Texture, Tris: []tessel.RendTri{rt}})
	}
	return out
}
