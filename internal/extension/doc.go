// Package extension implements the three-level lifecycle orchestration for
// host-application extensions: Point (one declared capability), Package (one
// named extension contributing a sequence of points), and Manager (the
// registry of all enabled extensions).
//
// Every extension moves through two phases. The link phase wires an
// extension into the host without activating behavior; the load phase
// activates it. The Manager drives both phases across the enabled set in
// name-sorted order, enforces at-most-once linking per extension, and
// isolates failures so one misbehaving extension never aborts the batch.
// Each per-extension result is collected into a Report so callers can
// inspect partial failures instead of digging through logs.
package extension
