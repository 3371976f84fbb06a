// Package nav implements the navigation state machine of the shell.
//
// A Controller owns one session's State: current tab, library view mode,
// focus per collection, selected item and quick-menu flag. Transitions are
// methods on the Controller; side effects leave through the Actions
// interface and are never performed inline.
//
// Gamepad input reaches the Controller through an Engine, which per tick
// samples the device, detects press edges, asks the repeat gate whether a
// held direction may move, then calls Controller.Step. Step applies rules in
// a fixed order:
//
//  1. directional move (home strip: left/right only; library: grid or list)
//  2. confirm (A): open module, or select the focused item
//  3. play (X): open the selected item
//  4. cancel (B): close menu, else clear selection, else go home
//  5. tab shift (LB/RB), clamped at both ends
//  6. quick menu (Start)
//  7. view toggle (Y), library only
//
// Keyboard input calls the same transition methods directly.
//
// The Gate keeps the Engine idle until Activate is called.
package nav
