// Package sim provides an in-memory link stack with a fixed number of
// profile slots. It backs the example tool and the package tests; no
// radio is involved.
package sim

import (
	"fmt"
	"sync"

	blemgmt "github.com/cormoran/zmk-module-ble-management"
)

type slot struct {
	open      bool
	connected bool
	addr      blemgmt.Addr
}

// LinkStack implements blemgmt.LinkStack over plain memory.
type LinkStack struct {
	mu     sync.Mutex
	slots  []slot
	active int

	peripheralBonded    bool
	peripheralConnected bool

	failSelect     bool
	failDisconnect bool
}

func NewLinkStack(profiles int) *LinkStack {
	return &LinkStack{slots: make([]slot, profiles)}
}

// Bond marks slot index as bonded to addr, open and connected.
// Out-of-range indices are ignored.
func (l *LinkStack) Bond(index int, addr blemgmt.Addr) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.slots) {
		return
	}
	l.slots[index] = slot{open: true, connected: true, addr: addr}
}

// SetConnected flips the connected flag of a bonded slot.
func (l *LinkStack) SetConnected(index int, connected bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.slots) {
		return
	}
	l.slots[index].connected = connected
}

// SetSplitState sets the split bonding and connection flags.
func (l *LinkStack) SetSplitState(bonded, connected bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.peripheralBonded = bonded
	l.peripheralConnected = connected
}

// FailSelect makes SelectProfile report failure until reset.
func (l *LinkStack) FailSelect(fail bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failSelect = fail
}

// FailDisconnect makes DisconnectProfile report failure until reset.
func (l *LinkStack) FailDisconnect(fail bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.failDisconnect = fail
}

func (l *LinkStack) ProfileCount() int {
	return len(l.slots)
}

func (l *LinkStack) ActiveProfile() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.active
}

func (l *LinkStack) ProfileIsOpen(index int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.slots) {
		return false
	}
	return l.slots[index].open
}

func (l *LinkStack) ProfileIsConnected(index int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.slots) {
		return false
	}
	return l.slots[index].connected
}

func (l *LinkStack) ProfileAddress(index int) blemgmt.Addr {
	l.mu.Lock()
	defer l.mu.Unlock()

	if index < 0 || index >= len(l.slots) {
		return blemgmt.AddrNone
	}
	return l.slots[index].addr
}

func (l *LinkStack) SelectProfile(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failSelect {
		return fmt.Errorf("select failure injected")
	}
	if index < 0 || index >= len(l.slots) {
		return fmt.Errorf("profile %d out of range", index)
	}
	l.active = index
	return nil
}

func (l *LinkStack) DisconnectProfile(index int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.failDisconnect {
		return fmt.Errorf("disconnect failure injected")
	}
	if index < 0 || index >= len(l.slots) {
		return fmt.Errorf("profile %d out of range", index)
	}
	l.slots[index] = slot{}
	return nil
}

func (l *LinkStack) ClearAllBonds() {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := range l.slots {
		l.slots[i] = slot{}
	}
	l.peripheralBonded = false
	l.peripheralConnected = false
}

func (l *LinkStack) PeripheralBonded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.peripheralBonded
}

func (l *LinkStack) PeripheralConnected() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.peripheralConnected
}
