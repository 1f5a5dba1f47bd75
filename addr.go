package blemgmt

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// Link-layer address types.
const (
	AddrTypePublic byte = 0x00
	AddrTypeRandom byte = 0x01
)

// Addr identifies a remote peer on the link layer: a 48-bit hardware
// address plus an address type. The zero value is the "none" sentinel
// used for empty profile slots; values compare with ==.
type Addr struct {
	Type byte
	Val  [6]byte
}

// AddrNone is the unset sentinel.
var AddrNone = Addr{}

// IsNone reports whether a is the unset sentinel.
func (a Addr) IsNone() bool {
	return a == AddrNone
}

// String renders the address the way the link stack logs it,
// e.g. "c4:f1:22:0a:0b:0c (random)".
func (a Addr) String() string {
	typ := "public"
	if a.Type == AddrTypeRandom {
		typ = "random"
	}
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x (%s)",
		a.Val[0], a.Val[1], a.Val[2], a.Val[3], a.Val[4], a.Val[5], typ)
}

// Bytes returns the six address bytes.
func (a Addr) Bytes() []byte {
	out := make([]byte, len(a.Val))
	copy(out, a.Val[:])
	return out
}

// ParseAddr parses "xx:xx:xx:xx:xx:xx" optionally followed by
// " (public)" or " (random)". A bare address is taken as random,
// which is what keyboard peers bond with in practice.
func ParseAddr(s string) (Addr, error) {
	s = strings.ToLower(strings.TrimSpace(s))

	typ := AddrTypeRandom
	if i := strings.IndexByte(s, ' '); i >= 0 {
		switch strings.Trim(s[i+1:], "()") {
		case "public":
			typ = AddrTypePublic
		case "random":
			typ = AddrTypeRandom
		default:
			return AddrNone, fmt.Errorf("unknown address type %q", s[i+1:])
		}
		s = strings.TrimSpace(s[:i])
	}

	hexStr := strings.Replace(s, ":", "", -1)
	if len(hexStr) != 12 {
		return AddrNone, fmt.Errorf("invalid address %q", s)
	}

	out, err := hex.DecodeString(hexStr)
	if err != nil {
		return AddrNone, fmt.Errorf("invalid address %q: %s", s, err)
	}

	a := Addr{Type: typ}
	copy(a.Val[:], out)
	return a, nil
}

// MustParseAddr is ParseAddr for hardwired addresses; it panics on error.
func MustParseAddr(s string) Addr {
	a, err := ParseAddr(s)
	if err != nil {
		panic(err)
	}
	return a
}
