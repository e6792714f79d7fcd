package sdpscan

import "github.com/pkg/errors"

// AddressType is the <addrtype> token of origin and connection lines.
type AddressType int

const (
	// AddressTypeIP4 indicates an IPv4 address.
	AddressTypeIP4 AddressType = iota + 1

	// AddressTypeIP6 indicates an IPv6 address.
	AddressTypeIP6
)

// Set according to currently registered with IANA
// https://tools.ietf.org/html/rfc4566#section-8.2.7
const (
	addressTypeIP4Str = "IP4"
	addressTypeIP6Str = "IP6"
)

// NewAddressType converts a raw addrtype token into an AddressType.
func NewAddressType(raw string) (AddressType, error) {
	switch raw {
	case addressTypeIP4Str:
		return AddressTypeIP4, nil
	case addressTypeIP6Str:
		return AddressTypeIP6, nil
	default:
		return AddressType(Unknown), errors.Wrapf(ErrInvalidAddressType, "`%s`", raw)
	}
}

func (t AddressType) String() string {
	switch t {
	case AddressTypeIP4:
		return addressTypeIP4Str
	case AddressTypeIP6:
		return addressTypeIP6Str
	default:
		return unknownStr
	}
}
