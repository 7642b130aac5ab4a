// Package viewmodel keeps the in-memory collections the terminal renders.
//
// A List holds the last collection loaded from the server plus the sort and
// filter state. Derived is the only view renderers read: it sorts and
// filters a snapshot of the collection on every call. Mutations never patch
// the collection locally; they call the server and then reload everything.
//
// Overlapping loads resolve last-wins: whichever response arrives last
// replaces the collection, even if it was issued first. WithStaleGuard turns
// on a per-list sequence number that drops responses older than the newest
// issued load.
package viewmodel
