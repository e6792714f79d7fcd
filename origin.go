package sdpscan

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Origin is the parsed o= line.
// o=<username> <sess-id> <sess-version> <nettype> <addrtype> <unicast-address>
// https://tools.ietf.org/html/rfc4566#section-5.2
type Origin struct {
	Username string

	SessionID uint64

	// SessionVersion is kept verbatim: it is an opaque version token,
	// compared for equality rather than used arithmetically.
	SessionVersion string

	NetworkType    string
	AddressType    string
	UnicastAddress string
}

func parseOrigin(value string) (Origin, error) {
	var o Origin

	fields := strings.Split(value, " ")
	if len(fields) < 6 {
		return o, errors.Wrapf(ErrInvalidOrigin, "`o=%s`", value)
	}

	id, err := strconv.ParseUint(fields[1], 10, 64)
	if err != nil {
		return o, err
	}

	o.Username = fields[0]
	o.SessionID = id
	o.SessionVersion = fields[2]
	o.NetworkType = fields[3]
	o.AddressType = fields[4]
	o.UnicastAddress = fields[5]

	return o, nil
}
