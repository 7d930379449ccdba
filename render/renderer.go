// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "github.com/gogpu/tessel"

// Renderer drains a shape's triangle stream into a target.
//
// Renderers are stateless between Render calls: the same renderer can
// draw different shapes to different targets in any order. Rendering
// never modifies the shape; the stream is restartable, so the typical
// pattern is one Render per frame of the same shape expression.
//
// Thread safety: renderers are NOT safe for concurrent use. Use one per
// goroutine or synchronize externally.
type Renderer interface {
	// Render draws the shape to the target in emission order.
	// The target is not cleared first; call Target.Clear for that.
	Render(target *Target, shape tessel.Shape) error

	// Flush completes any pending work. For CPU renderers this is a
	// no-op; GPU implementations submit and await command buffers here.
	Flush() error
}
