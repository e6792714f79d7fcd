package sdpscan

import (
	"strings"

	"github.com/pkg/errors"
)

// Connection is the parsed c= line.
// c=<nettype> <addrtype> <connection-address>
// https://tools.ietf.org/html/rfc4566#section-5.7
type Connection struct {
	NetworkType NetworkType
	AddressType AddressType

	// Address is kept verbatim and may carry a multicast `/<ttl>` or
	// `/<number of addresses>` suffix.
	Address string
}

func parseConnection(value string) (*Connection, error) {
	fields := strings.SplitN(value, " ", 3)
	if len(fields) < 3 {
		return nil, errors.Wrapf(ErrInvalidConnection, "`c=%s`", value)
	}

	networkType, err := NewNetworkType(fields[0])
	if err != nil {
		return nil, err
	}

	addressType, err := NewAddressType(fields[1])
	if err != nil {
		return nil, err
	}

	return &Connection{
		NetworkType: networkType,
		AddressType: addressType,
		Address:     fields[2],
	}, nil
}
