// Package habit provides the core of a compounding habit tracker. A user
// marks daily "Do" and "Do Not" items, each day earns a net point balance,
// and the balance compounds into a progress value over selectable windows.
//
// The core functionalities include:
//   - Document Model: the canonical persisted unit holding the habit lists,
//     the per-day checklists keyed by "YYYY-MM-DD", and the last-viewed
//     selection, with structural edits that keep every historical day
//     aligned to the current lists.
//   - Normalization: a pure repair function that turns a document of
//     unknown shape into a valid one, never failing, so stale or
//     hand-edited state always loads.
//   - Series Engine: derivation of a compounding value series over a week,
//     month, year, or all-time window, with exact decimal arithmetic.
//   - Sync Coordination: directional flow between the local canonical
//     document and a remote store under last-write-wins, with debounced,
//     fingerprint-deduplicated uploads.
//
// This package serves as the foundational logic for the `habits`
// command-line tool, ensuring that all operations are consistent and based
// on a single source of truth.
package habit
