package sdpscan

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// RtpMap is the decoded value of an rtpmap attribute, mapping an RTP
// payload type to an encoding name and clock rate.
// a=rtpmap:<payload type> <encoding name>/<clock rate>[/<encoding parameters>]
// https://tools.ietf.org/html/rfc4566#section-6
type RtpMap struct {
	PayloadType uint8
	Encoding    string
	ClockRate   uint32

	// EncodingParameters is the optional trailing token, e.g. the
	// channel count of an audio encoding.
	EncodingParameters string
}

// ToRtpMap decodes the attribute value as an rtpmap payload.
func (a Attribute) ToRtpMap() (RtpMap, error) {
	var r RtpMap

	sp := strings.IndexByte(a.Value, ' ')
	if sp < 0 {
		return r, errors.Wrapf(ErrInvalidRtpMap, "`%s`", a.Value)
	}

	payloadType, err := strconv.ParseUint(a.Value[:sp], 10, 8)
	if err != nil {
		return r, errors.Wrapf(ErrInvalidRtpMap, "payload type `%s`", a.Value[:sp])
	}

	parts := strings.SplitN(a.Value[sp+1:], "/", 3)
	if len(parts) < 2 {
		return r, errors.Wrapf(ErrInvalidRtpMap, "`%s`", a.Value)
	}

	clockRate, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return r, errors.Wrapf(ErrInvalidRtpMap, "clock rate `%s`", parts[1])
	}

	r.PayloadType = uint8(payloadType)
	r.Encoding = parts[0]
	r.ClockRate = uint32(clockRate)
	if len(parts) > 2 {
		r.EncodingParameters = parts[2]
	}

	return r, nil
}
