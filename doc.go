// Package logo renders the animated warpzone logo for [Ebitengine].
//
// Textured unit quads are placed in 3D by a fixed per-element chain of
// rotations and translations evaluated at time t, projected through a
// perspective camera and composited additively on a black background. The
// whole frame is a pure function of t and the display size.
//
// # Scenes
//
// The logo scene draws three counter-spinning radial arms and a swinging text
// panel. When the events scene is enabled, the two alternate every
// [SwitchInterval] seconds with a hard cut:
//
//	set := logo.NewSceneSet(true)
//	scene := set.Select(t) // logo on even intervals, events on odd
//
// # Backends
//
// Two backends draw the same [Frame]:
//
//   - [StackBackend] replays the camera and element steps on a [MatrixStack]
//     and submits a CPU-projected grid with DrawTriangles.
//   - [ShaderBackend] hands each element's model-view-projection matrix to a
//     Kage program that maps every covered pixel back onto the quad.
//
// [NewBackend] picks the one matching a [Variant].
//
// # Running
//
// [Run] loads the textures, builds the backend and blocks in the Ebitengine
// loop:
//
//	cfg := logo.DesktopConfig()
//	cfg.AssetDir = "assets"
//	if err := logo.Run(cfg); err != nil {
//		log.Fatal(err)
//	}
//
// The cmd/warpzone and cmd/warpzone-pi commands wrap Run with flags.
//
// # Logging
//
// The package is silent by default. Install a [log/slog] logger with
// [SetLogger] to receive start-up, screenshot and debug records.
//
// [Ebitengine]: https://ebitengine.org
package logo
