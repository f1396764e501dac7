// Package display aggregates heterogeneous physical monitors into one or
// more addressable virtual coordinate spaces and answers point-containment
// queries against them.
//
// A topology snapshot (every attached monitor plus a composition mode)
// arrives from platform detection or user configuration. Compose turns it
// into an immutable VirtualSpace; Registry publishes the current space with
// a single atomic pointer swap so that readers never observe a half-updated
// topology. Composition and lookup are pure functions of the snapshot; the
// layout engine in pkg/geometry never touches this package.
package display
