package sdpscan

import "github.com/pkg/errors"

// NetworkType is the <nettype> token of origin and connection lines.
type NetworkType int

const (
	// NetworkTypeIN indicates the internet network type, the only value
	// currently registered with IANA.
	// https://tools.ietf.org/html/rfc4566#section-8.2.6
	NetworkTypeIN NetworkType = iota + 1
)

const networkTypeINStr = "IN"

// NewNetworkType converts a raw nettype token into a NetworkType.
func NewNetworkType(raw string) (NetworkType, error) {
	switch raw {
	case networkTypeINStr:
		return NetworkTypeIN, nil
	default:
		return NetworkType(Unknown), errors.Wrapf(ErrInvalidNetworkType, "`%s`", raw)
	}
}

func (t NetworkType) String() string {
	switch t {
	case NetworkTypeIN:
		return networkTypeINStr
	default:
		return unknownStr
	}
}
