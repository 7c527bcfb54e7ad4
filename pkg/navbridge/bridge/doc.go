// Package bridge connects a leaf screen's counter back to the container
// that pushed it.
//
// Three strategies are available, selected by Strategy:
//
//   - channel: Listen wires the counter to a Stream and runs as the
//     container's listening effect, forwarding every value until cancelled.
//   - weakref: AttachWeak is called by the view layer when it builds the
//     leaf view and dispatches straight into the top-level container through
//     a weak pointer, skipping any container in between.
//   - delegate: Scoped gives the counter a Handle that expires with the
//     screen. The container routes the value to whichever screen owns the
//     leaf.
//
// Listen and Scoped share the Wiring signature so a container can pick one
// at runtime:
//
//	wire, ok := strategy.Wiring()
//	if ok {
//	    wire(ctx, counter, func() { send(pushed) }, func(n int) { send(selected(n)) })
//	}
package bridge
