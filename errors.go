package sdpscan

import "errors"

// Structural grammar errors. A mandatory line is missing, out of order,
// or has the wrong prefix.
var (
	// ErrInvalidSDP indicates the message violates the session-level
	// line ordering mandated by RFC 4566 section 5.
	ErrInvalidSDP = errors.New("invalid session description")

	// ErrInvalidMedia indicates a malformed m= line or a media block
	// that does not start with one.
	ErrInvalidMedia = errors.New("invalid media description")
)

// Field-level format errors. The line matched its expected position but
// its internal grammar (token count, numeric format, enum value) is wrong.
var (
	// ErrInvalidOrigin indicates a missing or malformed o= line.
	ErrInvalidOrigin = errors.New("invalid origin line")

	// ErrInvalidSessionName indicates a missing or empty s= line.
	ErrInvalidSessionName = errors.New("invalid session name")

	// ErrInvalidConnection indicates a c= line with fewer than three tokens.
	ErrInvalidConnection = errors.New("invalid connection line")

	// ErrInvalidNetworkType indicates a nettype token other than "IN".
	ErrInvalidNetworkType = errors.New("invalid network type")

	// ErrInvalidAddressType indicates an addrtype token other than
	// "IP4" or "IP6".
	ErrInvalidAddressType = errors.New("invalid address type")

	// ErrInvalidAttribute indicates an attribute line too short to carry
	// the two-byte a= prefix.
	ErrInvalidAttribute = errors.New("invalid attribute line")

	// ErrInvalidRtpMap indicates an rtpmap attribute value that does not
	// match <payload type> <encoding>/<clock rate>[/<encoding parameters>].
	ErrInvalidRtpMap = errors.New("invalid rtpmap attribute")

	// ErrInvalidFmtp indicates an fmtp attribute value that does not
	// match <payload type> <param>=<value>[;<param>=<value>]...
	ErrInvalidFmtp = errors.New("invalid fmtp attribute")
)
