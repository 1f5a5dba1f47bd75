package blemgmt

// LinkStack is the narrow view of the wireless stack this module
// consumes: a fixed set of peer profile slots plus the split-link
// bonding primitives. The real stack lives in firmware; sim provides
// an in-memory implementation for tools and tests.
type LinkStack interface {
	// ProfileCount returns the fixed number of profile slots.
	ProfileCount() int

	// ActiveProfile returns the index of the slot used for outbound traffic.
	ActiveProfile() int

	// ProfileIsOpen reports whether the slot is open for connections.
	ProfileIsOpen(index int) bool

	// ProfileIsConnected reports whether the slot's peer is connected.
	ProfileIsConnected(index int) bool

	// ProfileAddress returns the bonded peer address of a slot, or
	// AddrNone when the slot has never been bonded.
	ProfileAddress(index int) Addr

	// SelectProfile makes the slot active for subsequent traffic.
	SelectProfile(index int) error

	// DisconnectProfile drops the slot's connection and removes its bond.
	DisconnectProfile(index int) error

	// ClearAllBonds removes every stored bond, split bonds included.
	ClearAllBonds()

	// PeripheralBonded reports whether a split peripheral holds a bond
	// to its central half.
	PeripheralBonded() bool

	// PeripheralConnected reports whether a split central currently has
	// its peripheral half connected.
	PeripheralConnected() bool
}
