// Package sdpscan implements a lazy, zero-copy parser for the Session
// Description Protocol (RFC 4566).
//
// Parse walks the session-level lines once and records the attribute
// and media regions of the buffer without decoding them. Every string
// produced by this package is a substring of the input, so parsing
// allocates only the Session value itself; media blocks and attributes
// are decoded on demand through restartable iterators.
package sdpscan

import (
	"strconv"

	"github.com/pkg/errors"
)

// Session is the session-level view of one SDP message.
//
// Session description
//
//	v=  (protocol version)
//	o=  (originator and session identifier)
//	s=  (session name)
//	i=* (session information)
//	u=* (URI of description)
//	e=* (email address)
//	p=* (phone number)
//	c=* (connection information -- not required if included in
//	     all media)
//	b=* (zero or more bandwidth information lines)
//	One or more time descriptions ("t=" and "r=" lines)
//	z=* (time zone adjustments)
//	k=* (encryption key)
//	a=* (zero or more session attribute lines)
//	Zero or more media descriptions
//
// https://tools.ietf.org/html/rfc4566#section-5
type Session struct {
	Version uint8
	Origin  Origin
	Name    string

	// Information and URI are empty when the i= and u= lines are absent.
	Information string
	URI         string

	// Connection is nil when no session-level c= line is present.
	Connection *Connection

	attributes string
	medias     string
}

// AttributeIterator returns a fresh iterator over the session-level
// attribute lines.
func (s *Session) AttributeIterator() AttributeIterator {
	return newAttributeIterator(s.attributes)
}

// MediaIterator returns a fresh iterator over the media blocks.
func (s *Session) MediaIterator() MediaIterator {
	return MediaIterator{lex: lexer{buf: s.medias}}
}

// Attribute returns the value of the first session-level attribute with
// the given key and whether it exists.
func (s *Session) Attribute(key string) (string, bool) {
	return attributeLookup(s.attributes, key)
}

// sessionState tracks the position inside the session header. States
// are visited in RFC order; a line that does not match an optional
// state falls through to the next state without being consumed.
type sessionState int

const (
	stateVersion sessionState = iota
	stateOrigin
	stateName
	stateInformation
	stateURI
	stateEmail
	statePhone
	stateConnection
	stateBandwidth
	stateTiming
	stateRepeat
	stateTimeZone
	stateKey
	stateAttributes
	stateMedia
)

// Parse scans one complete SDP message and returns its session-level
// view. The input must be kept unchanged for as long as the Session, or
// anything derived from it, is in use; all returned values borrow from
// it. Lines are `\n` separated with an optional trailing `\r`.
func Parse(buf string) (*Session, error) { //nolint:gocognit,cyclop
	lex := &lexer{buf: buf}
	session := &Session{}

	state := stateVersion
	attrStart, attrEnd := -1, -1

	for !lex.eof() {
		typ, _ := lex.peekType()

		switch state {
		case stateVersion:
			if typ != 'v' {
				return nil, errors.Wrapf(ErrInvalidSDP, "expected v=, found `%s`", lex.readLine())
			}
			version, err := strconv.ParseUint(lex.readLine()[2:], 10, 8)
			if err != nil {
				return nil, err
			}
			session.Version = uint8(version)
			state = stateOrigin
		case stateOrigin:
			if typ != 'o' {
				return nil, errors.Wrapf(ErrInvalidOrigin, "expected o=, found `%s`", lex.readLine())
			}
			origin, err := parseOrigin(lex.readLine()[2:])
			if err != nil {
				return nil, err
			}
			session.Origin = origin
			state = stateName
		case stateName:
			if typ != 's' {
				return nil, errors.Wrapf(ErrInvalidSessionName, "expected s=, found `%s`", lex.readLine())
			}
			name := lex.readLine()[2:]
			if name == "" {
				return nil, errors.Wrap(ErrInvalidSessionName, "empty session name")
			}
			session.Name = name
			state = stateInformation
		case stateInformation:
			if typ == 'i' {
				session.Information = lex.readLine()[2:]
				state = stateURI
				continue
			}
			state = stateURI
		case stateURI:
			if typ == 'u' {
				session.URI = lex.readLine()[2:]
				state = stateEmail
				continue
			}
			state = stateEmail
		case stateEmail:
			if typ == 'e' {
				lex.readLine()
				state = statePhone
				continue
			}
			state = statePhone
		case statePhone:
			if typ == 'p' {
				lex.readLine()
				state = stateConnection
				continue
			}
			state = stateConnection
		case stateConnection:
			if typ == 'c' {
				connection, err := parseConnection(lex.readLine()[2:])
				if err != nil {
					return nil, err
				}
				session.Connection = connection
				state = stateBandwidth
				continue
			}
			state = stateBandwidth
		case stateBandwidth:
			if typ == 'b' {
				lex.readLine()
				continue
			}
			state = stateTiming
		case stateTiming:
			// The time description is checked for presence only; its
			// fields are not decoded.
			if typ != 't' {
				return nil, errors.Wrapf(ErrInvalidSDP, "expected t=, found `%s`", lex.readLine())
			}
			lex.readLine()
			state = stateRepeat
		case stateRepeat:
			if typ == 'r' || typ == 't' {
				lex.readLine()
				continue
			}
			state = stateTimeZone
		case stateTimeZone:
			if typ == 'z' {
				lex.readLine()
				state = stateKey
				continue
			}
			state = stateKey
		case stateKey:
			if typ == 'k' {
				lex.readLine()
				state = stateAttributes
				continue
			}
			state = stateAttributes
		case stateAttributes:
			if typ == 'a' {
				if attrStart < 0 {
					attrStart = lex.lineStart()
				}
				lex.readLine()
				attrEnd = lex.pos
				continue
			}
			state = stateMedia
		case stateMedia:
			if typ != 'm' {
				return nil, errors.Wrapf(ErrInvalidSDP, "expected m=, found `%s`", lex.readLine())
			}
			// The remainder of the buffer belongs to the media
			// iterator; session-level scanning stops here.
			if attrStart >= 0 {
				session.attributes = buf[attrStart:attrEnd]
			}
			session.medias = buf[lex.lineStart():]

			return session, nil
		}
	}

	// End of input before any media block. The message is complete as
	// long as every mandatory line was seen.
	if state < stateRepeat {
		return nil, missingMandatoryError(state)
	}
	if attrStart >= 0 {
		session.attributes = buf[attrStart:attrEnd]
	}

	return session, nil
}

func missingMandatoryError(state sessionState) error {
	switch state {
	case stateOrigin:
		return errors.Wrap(ErrInvalidOrigin, "missing origin line")
	case stateName:
		return errors.Wrap(ErrInvalidSessionName, "missing session name")
	default:
		return errors.Wrap(ErrInvalidSDP, "missing mandatory line")
	}
}
