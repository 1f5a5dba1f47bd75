// Package rpc defines the request/response envelopes of the profile
// management protocol and the dispatcher that routes them. Envelopes
// are JSON documents carrying exactly one variant, mirroring a tagged
// union on the wire.
package rpc

// Request is the envelope a configuration tool sends. Exactly one
// variant must be set; anything else is answered with an
// "Unsupported request type" error.
type Request struct {
	GetProfiles     *GetProfilesRequest     `json:"get_profiles,omitempty"`
	SetProfileName  *SetProfileNameRequest  `json:"set_profile_name,omitempty"`
	SwitchProfile   *SwitchProfileRequest   `json:"switch_profile,omitempty"`
	UnpairProfile   *UnpairProfileRequest   `json:"unpair_profile,omitempty"`
	GetSplitInfo    *GetSplitInfoRequest    `json:"get_split_info,omitempty"`
	ForgetSplitBond *ForgetSplitBondRequest `json:"forget_split_bond,omitempty"`
}

type GetProfilesRequest struct{}

type SetProfileNameRequest struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
}

type SwitchProfileRequest struct {
	Index int `json:"index"`
}

type UnpairProfileRequest struct {
	Index int `json:"index"`
}

type GetSplitInfoRequest struct{}

type ForgetSplitBondRequest struct{}
