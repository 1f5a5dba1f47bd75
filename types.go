package blemgmt

// ProfileInfo describes one profile slot as seen by a configuration
// tool. It is rebuilt from live link-stack state on every query and
// never persisted.
type ProfileInfo struct {
	Index       int    `json:"index"`
	IsOpen      bool   `json:"is_open"`
	IsConnected bool   `json:"is_connected"`
	IsActive    bool   `json:"is_active"`
	Address     string `json:"address,omitempty"`
	Name        string `json:"name,omitempty"`
}

// SplitInfo reports split-keyboard topology and live bonding state.
type SplitInfo struct {
	IsSplit             bool `json:"is_split"`
	IsCentral           bool `json:"is_central"`
	IsPeripheral        bool `json:"is_peripheral"`
	PeripheralConnected bool `json:"peripheral_connected"`
	CentralBonded       bool `json:"central_bonded"`
}

// Config mirrors the build-time role configuration of the firmware.
// A non-split build leaves everything false.
type Config struct {
	Split      bool
	Central    bool
	Peripheral bool
}
