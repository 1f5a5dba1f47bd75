package profile

import (
	blemgmt "github.com/cormoran/zmk-module-ble-management"
	"github.com/cormoran/zmk-module-ble-management/names"
)

// Control performs the mutating profile operations. Every failure is
// reported as a false result and logged; nothing here escalates.
type Control struct {
	link   blemgmt.LinkStack
	names  *names.Store
	logger blemgmt.Logger
}

func NewControl(link blemgmt.LinkStack, names *names.Store) *Control {
	return &Control{link: link, names: names, logger: blemgmt.GetLogger()}
}

// SetName binds name to the peer bonded on slot index. False when the
// index is out of range, the slot has no bonded peer, or the binding
// could not be stored.
func (c *Control) SetName(index int, name string) bool {
	if !c.validIndex(index) {
		return false
	}

	addr := c.link.ProfileAddress(index)
	if addr.IsNone() {
		c.logger.Warnf("profile %d has no bonded address", index)
		return false
	}

	if err := c.names.Upsert(addr, name); err != nil {
		c.logger.Warnf("failed to store name for profile %d: %s", index, err)
		return false
	}
	return true
}

// Switch makes slot index the active profile for outbound traffic.
func (c *Control) Switch(index int) bool {
	if !c.validIndex(index) {
		return false
	}

	if err := c.link.SelectProfile(index); err != nil {
		c.logger.Warnf("failed to select profile %d: %s", index, err)
		return false
	}
	return true
}

// Unpair drops the bond on slot index. The name binding is cleared
// before the disconnect so a failed disconnect cannot leave a name
// bound to a peer that is no longer meaningfully paired.
func (c *Control) Unpair(index int) bool {
	if !c.validIndex(index) {
		return false
	}

	if addr := c.link.ProfileAddress(index); !addr.IsNone() {
		c.names.Clear(addr)
	}

	if err := c.link.DisconnectProfile(index); err != nil {
		c.logger.Warnf("failed to unpair profile %d: %s", index, err)
		return false
	}
	return true
}

func (c *Control) validIndex(index int) bool {
	if index < 0 || index >= c.link.ProfileCount() {
		c.logger.Warnf("invalid profile index: %d", index)
		return false
	}
	return true
}
