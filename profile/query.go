// Package profile implements the services a configuration tool drives
// through the rpc dispatcher: slot listing, mutating profile
// operations, and split-link status.
package profile

import (
	blemgmt "github.com/cormoran/zmk-module-ble-management"
	"github.com/cormoran/zmk-module-ble-management/names"
)

// List is the full slot listing returned to a configuration tool.
type List struct {
	Profiles    []blemgmt.ProfileInfo `json:"profiles"`
	MaxProfiles int                   `json:"max_profiles"`
	ActiveIndex int                   `json:"active_index"`
}

// Query joins live link-stack slot state with stored display names.
type Query struct {
	link  blemgmt.LinkStack
	names *names.Store
}

func NewQuery(link blemgmt.LinkStack, names *names.Store) *Query {
	return &Query{link: link, names: names}
}

// Profiles returns one entry per slot, never-bonded slots included.
// Link-stack reads cannot fail, so neither can this.
func (q *Query) Profiles() List {
	count := q.link.ProfileCount()
	active := q.link.ActiveProfile()

	list := List{
		Profiles:    make([]blemgmt.ProfileInfo, count),
		MaxProfiles: count,
		ActiveIndex: active,
	}

	for i := 0; i < count; i++ {
		p := &list.Profiles[i]
		p.Index = i
		p.IsOpen = q.link.ProfileIsOpen(i)
		p.IsConnected = q.link.ProfileIsConnected(i)
		p.IsActive = i == active

		addr := q.link.ProfileAddress(i)
		if !addr.IsNone() {
			p.Address = addr.String()
			p.Name = q.names.Lookup(addr)
		}
	}
	return list
}
