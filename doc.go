// Package ember is a small convenience layer for putting pixels on the
// screen. It wraps window creation and the event loop (package glint),
// gpu rendering and compute through webgpu (package forge) and a cpu
// addressable pixel buffer with software compositing (package soft).
//
// A window owns at most one rendering context, either a gpu context or
// a pixel buffer. The typical shape of a program is
//
//	runner, err := ember.CreateRunner()
//	// handle err
//	defer runner.Terminate()
//
//	win, err := runner.NewWindow("hello", geom.Vec2i{800, 600}).Build()
//	// handle err
//
//	pb, err := ember.CreatePixelBuffer(win).Build()
//	// handle err
//
//	for runner.Poll(glint.PollModePoll) {
//		// write pixels, then
//		_ = pb.Present()
//	}
package ember
