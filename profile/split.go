package profile

import (
	blemgmt "github.com/cormoran/zmk-module-ble-management"
)

// Split reports split-keyboard topology and resets split bonding.
type Split struct {
	cfg    blemgmt.Config
	link   blemgmt.LinkStack
	logger blemgmt.Logger
}

func NewSplit(cfg blemgmt.Config, link blemgmt.LinkStack) *Split {
	return &Split{cfg: cfg, link: link, logger: blemgmt.GetLogger()}
}

// Info reflects the build-time role flags plus live bonding state from
// the link stack. A non-split build reports everything false.
func (s *Split) Info() blemgmt.SplitInfo {
	info := blemgmt.SplitInfo{}
	if !s.cfg.Split {
		return info
	}

	info.IsSplit = true
	switch {
	case s.cfg.Central:
		info.IsCentral = true
		info.PeripheralConnected = s.link.PeripheralConnected()
	case s.cfg.Peripheral:
		info.IsPeripheral = true
		info.CentralBonded = s.link.PeripheralBonded()
	}
	return info
}

// ForgetBond clears every stored bond to reset the split link. A build
// without split support refuses without touching the link stack; that
// is a capability check, not a runtime failure.
func (s *Split) ForgetBond() bool {
	if !s.cfg.Split {
		s.logger.Warn("split link support not enabled")
		return false
	}

	s.link.ClearAllBonds()
	return true
}
