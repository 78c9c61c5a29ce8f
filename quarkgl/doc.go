// Package quarkgl is a small, predictable software 3D pipeline.
//
// It renders flat-colored polygonal models into a caller-provided Target and is
// meant for visualization, not games. There is no GPU abstraction and no scene graph:
// a Scene is a flat list of independently positioned models.
//
// Pipeline (fixed, once per frame):
//
//	FrameState + Scene → Transform → Projection → Visibility → Near-plane reject → Rasterization.
//
// Rotation is one global X→Y→Z Euler rotation shared by every model. The camera
// orbits the world origin and projection only offsets points by the camera position
// before scaling, so depth is the raw camera-relative Z.
//
// Two raster paths exist. With the depth buffer on (and wireframe off) faces are
// split into triangles and filled pixel by pixel against a per-pixel depth buffer.
// Otherwise faces are traced as closed paths and filled or stroked in draw order.
//
// The renderer reuses its scratch buffers between frames and is not safe for
// concurrent use.
package quarkgl
