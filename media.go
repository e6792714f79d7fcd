package sdpscan

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// PortRange is the <port>[/<number of ports>] part of an m= line. Count
// is 1 when the suffix is absent.
type PortRange struct {
	Port  uint16
	Count uint16
}

// Media is one m= block: the parsed header line, the optional
// media-level connection, and the unparsed attribute region.
// m=<media> <port> <proto> <fmt> ...
// https://tools.ietf.org/html/rfc4566#section-5.14
type Media struct {
	Type     MediaType
	Port     PortRange
	Protocol string

	// Formats is the raw remainder of the m= line after <proto>, left
	// untokenized. Use FormatList to split it.
	Formats string

	Connection *Connection

	attributes string
}

// AttributeIterator returns a fresh iterator over the media-level
// attribute lines.
func (m Media) AttributeIterator() AttributeIterator {
	return newAttributeIterator(m.attributes)
}

// Attribute returns the value of the first media-level attribute with
// the given key and whether it exists.
func (m Media) Attribute(key string) (string, bool) {
	return attributeLookup(m.attributes, key)
}

// FormatList splits the raw format remainder into individual payload
// format tokens.
func (m Media) FormatList() []string {
	return strings.Fields(m.Formats)
}

// mediaState tracks the position inside one media block. States are
// visited in RFC order; a line that does not match an optional state
// falls through to the next state without being consumed.
type mediaState int

const (
	mediaStateInformation mediaState = iota
	mediaStateConnection
	mediaStateBandwidth
	mediaStateKey
	mediaStateAttributes
)

// MediaIterator lazily carves a stored media region into Media values,
// one m= block per Next call. A fresh iterator over the same Session
// replays the identical sequence. A single iterator must not be shared
// between goroutines.
type MediaIterator struct {
	lex   lexer
	media Media
	err   error
}

// Next advances to the next media block. It returns false when the
// region is exhausted or a block is malformed; Err tells the two apart.
// Iteration does not resynchronize after an error.
func (it *MediaIterator) Next() bool {
	if it.err != nil || it.lex.eof() {
		return false
	}

	media, err := it.parseBlock()
	if err != nil {
		it.err = err
		return false
	}

	it.media = media

	return true
}

// Media returns the media block read by the last successful Next.
func (it *MediaIterator) Media() Media {
	return it.media
}

// Err returns the error that stopped iteration, if any.
func (it *MediaIterator) Err() error {
	return it.err
}

// parseBlock parses one m= header line and then walks the block's
// optional lines, recording the attribute sub-region. It leaves the
// cursor on the first line of the next block.
func (it *MediaIterator) parseBlock() (Media, error) {
	if typ, ok := it.lex.peekType(); !ok || typ != 'm' {
		return Media{}, errors.Wrapf(ErrInvalidMedia, "`%s`", it.lex.readLine())
	}

	media, err := parseMediaHeader(it.lex.readLine()[2:])
	if err != nil {
		return Media{}, err
	}

	state := mediaStateInformation
	attrStart, attrEnd := -1, -1

loop:
	for !it.lex.eof() {
		typ, _ := it.lex.peekType()

		switch state {
		case mediaStateInformation:
			if typ == 'i' {
				it.lex.readLine()
				state = mediaStateConnection
				continue
			}
			state = mediaStateConnection
		case mediaStateConnection:
			if typ == 'c' {
				connection, err := parseConnection(it.lex.readLine()[2:])
				if err != nil {
					return Media{}, err
				}
				media.Connection = connection
				state = mediaStateBandwidth
				continue
			}
			state = mediaStateBandwidth
		case mediaStateBandwidth:
			if typ == 'b' {
				it.lex.readLine()
				continue
			}
			state = mediaStateKey
		case mediaStateKey:
			if typ == 'k' {
				it.lex.readLine()
				state = mediaStateAttributes
				continue
			}
			state = mediaStateAttributes
		case mediaStateAttributes:
			if typ == 'a' {
				if attrStart < 0 {
					attrStart = it.lex.lineStart()
				}
				it.lex.readLine()
				attrEnd = it.lex.pos
				continue
			}
			// The next m= line, or any line that matches no state,
			// ends this block without being consumed.
			break loop
		}
	}

	if attrStart >= 0 {
		media.attributes = it.lex.buf[attrStart:attrEnd]
	}

	return media, nil
}

func parseMediaHeader(value string) (Media, error) {
	var media Media

	fields := strings.SplitN(value, " ", 4)
	if len(fields) < 3 {
		return media, errors.Wrapf(ErrInvalidMedia, "`m=%s`", value)
	}

	mediaType, err := NewMediaType(fields[0])
	if err != nil {
		return media, err
	}

	parts := strings.SplitN(fields[1], "/", 2)
	port, err := strconv.ParseUint(parts[0], 10, 16)
	if err != nil {
		return media, err
	}
	count := uint64(1)
	if len(parts) > 1 {
		count, err = strconv.ParseUint(parts[1], 10, 16)
		if err != nil {
			return media, err
		}
	}

	media.Type = mediaType
	media.Port = PortRange{Port: uint16(port), Count: uint16(count)}
	media.Protocol = fields[2]
	if len(fields) > 3 {
		media.Formats = fields[3]
	}

	return media, nil
}
