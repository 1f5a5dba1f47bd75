package rpc

import (
	"sync"

	jsoniter "github.com/json-iterator/go"

	blemgmt "github.com/cormoran/zmk-module-ble-management"
	"github.com/cormoran/zmk-module-ble-management/profile"
)

// Diagnostics carried by error responses.
const (
	decodeFailedMsg  = "Failed to decode request"
	unsupportedMsg   = "Unsupported request type"
	encodeFailedJSON = `{"error":{"message":"Failed to encode response"}}`
)

// Dispatcher routes decoded requests to the profile services and
// shapes exactly one response per request.
type Dispatcher struct {
	mu      sync.Mutex
	query   *profile.Query
	control *profile.Control
	split   *profile.Split
	logger  blemgmt.Logger
}

func NewDispatcher(query *profile.Query, control *profile.Control, split *profile.Split) *Dispatcher {
	return &Dispatcher{
		query:   query,
		control: control,
		split:   split,
		logger:  blemgmt.GetLogger(),
	}
}

// Handle decodes one raw request, executes it, and encodes the
// response. It never returns an empty buffer: malformed input and
// unknown kinds come back as error responses. Calls are serialized so
// one request is fully processed before the next starts.
func (d *Dispatcher) Handle(raw []byte) []byte {
	d.mu.Lock()
	defer d.mu.Unlock()

	var req Request
	if err := jsoniter.Unmarshal(raw, &req); err != nil {
		d.logger.Warnf("failed to decode request: %s", err)
		return encode(errorResponse(decodeFailedMsg))
	}

	return encode(d.route(&req))
}

func (d *Dispatcher) route(req *Request) Response {
	switch {
	case req.GetProfiles != nil:
		list := d.query.Profiles()
		return Response{GetProfiles: &GetProfilesResponse{
			Profiles:    list.Profiles,
			MaxProfiles: list.MaxProfiles,
			ActiveIndex: list.ActiveIndex,
		}}

	case req.SetProfileName != nil:
		ok := d.control.SetName(req.SetProfileName.Index, req.SetProfileName.Name)
		return Response{SetProfileName: &SetProfileNameResponse{Success: ok}}

	case req.SwitchProfile != nil:
		ok := d.control.Switch(req.SwitchProfile.Index)
		return Response{SwitchProfile: &SwitchProfileResponse{Success: ok}}

	case req.UnpairProfile != nil:
		ok := d.control.Unpair(req.UnpairProfile.Index)
		return Response{UnpairProfile: &UnpairProfileResponse{Success: ok}}

	case req.GetSplitInfo != nil:
		return Response{GetSplitInfo: &GetSplitInfoResponse{Info: d.split.Info()}}

	case req.ForgetSplitBond != nil:
		ok := d.split.ForgetBond()
		return Response{ForgetSplitBond: &ForgetSplitBondResponse{Success: ok}}

	default:
		d.logger.Warn("unsupported request type")
		return errorResponse(unsupportedMsg)
	}
}

func errorResponse(msg string) Response {
	return Response{Error: &ErrorResponse{Message: msg}}
}

func encode(resp Response) []byte {
	out, err := jsoniter.Marshal(resp)
	if err != nil {
		// Response types hold nothing jsoniter can reject; keep the
		// one-response guarantee anyway.
		return []byte(encodeFailedJSON)
	}
	return out
}
