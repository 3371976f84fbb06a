// Package input turns raw controller state into navigation signals.
//
// # Pipeline
//
// Each display tick runs the same short pipeline on a single goroutine:
//
//	Source.Poll()         raw axes/buttons of the first connected device
//	    │
//	Sampler.Sample()      sanitize into an immutable Frame (or no frame)
//	    │
//	EdgeDetector.Advance  rising edges against the previous processed frame
//	    │
//	DeriveDirections      stick, hat and d-pad folded into four directions
//	    │
//	RepeatGate.Allow      at most one move per throttle window
//
// Nothing in this package blocks or returns an error for bad input. Non-finite
// axis readings become 0, missing buttons read as released, and an absent
// device produces no frame for that tick.
//
// # Button layout
//
// Frames use the standard gamepad layout: 0 A (confirm), 1 B (cancel),
// 2 X (play), 3 Y (view toggle), 4/5 shoulder buttons (tab shift), 9 Start
// (quick menu), 12-15 d-pad up/down/left/right. Device backends remap their
// native numbering onto these indices before handing state to the Sampler.
//
// # Concurrency
//
// Sampler, EdgeDetector and RepeatGate are not safe for concurrent use. They
// are owned by the UI update loop, which is the only caller.
package input
