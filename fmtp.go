package sdpscan

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Fmtp is the decoded value of an fmtp attribute. Only the parameters
// below are extracted; unrecognized parameters, and parameters lacking
// an `=`, are ignored.
// a=fmtp:<format> <param>=<value>[;<param>=<value>]...
// https://tools.ietf.org/html/rfc4566#section-6
type Fmtp struct {
	PayloadType uint8

	// PacketizationMode is nil when the parameter is absent.
	PacketizationMode *uint8

	ProfileLevelID     string
	SpropParameterSets string
}

// ToFmtp decodes the attribute value as an fmtp payload.
func (a Attribute) ToFmtp() (Fmtp, error) {
	var f Fmtp

	sp := strings.IndexByte(a.Value, ' ')
	if sp < 0 {
		return f, errors.Wrapf(ErrInvalidFmtp, "`%s`", a.Value)
	}

	payloadType, err := strconv.ParseUint(a.Value[:sp], 10, 8)
	if err != nil {
		return f, errors.Wrapf(ErrInvalidFmtp, "payload type `%s`", a.Value[:sp])
	}
	f.PayloadType = uint8(payloadType)

	for _, param := range strings.Split(a.Value[sp+1:], ";") {
		eq := strings.IndexByte(param, '=')
		if eq < 0 {
			continue
		}

		value := param[eq+1:]
		switch strings.TrimLeft(param[:eq], " ") {
		case "packetization-mode":
			mode, err := strconv.ParseUint(value, 10, 8)
			if err != nil {
				return Fmtp{}, errors.Wrapf(ErrInvalidFmtp, "packetization-mode `%s`", value)
			}
			packetizationMode := uint8(mode)
			f.PacketizationMode = &packetizationMode
		case "profile-level-id":
			f.ProfileLevelID = value
		case "sprop-parameter-sets":
			f.SpropParameterSets = value
		}
	}

	return f, nil
}
