package rpc

import (
	blemgmt "github.com/cormoran/zmk-module-ble-management"
)

// Response carries exactly one variant: the result matching the
// request kind, or an error.
type Response struct {
	GetProfiles     *GetProfilesResponse     `json:"get_profiles,omitempty"`
	SetProfileName  *SetProfileNameResponse  `json:"set_profile_name,omitempty"`
	SwitchProfile   *SwitchProfileResponse   `json:"switch_profile,omitempty"`
	UnpairProfile   *UnpairProfileResponse   `json:"unpair_profile,omitempty"`
	GetSplitInfo    *GetSplitInfoResponse    `json:"get_split_info,omitempty"`
	ForgetSplitBond *ForgetSplitBondResponse `json:"forget_split_bond,omitempty"`
	Error           *ErrorResponse           `json:"error,omitempty"`
}

type GetProfilesResponse struct {
	Profiles    []blemgmt.ProfileInfo `json:"profiles"`
	MaxProfiles int                   `json:"max_profiles"`
	ActiveIndex int                   `json:"active_index"`
}

type SetProfileNameResponse struct {
	Success bool `json:"success"`
}

type SwitchProfileResponse struct {
	Success bool `json:"success"`
}

type UnpairProfileResponse struct {
	Success bool `json:"success"`
}

type GetSplitInfoResponse struct {
	Info blemgmt.SplitInfo `json:"info"`
}

type ForgetSplitBondResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}
