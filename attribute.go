package sdpscan

import (
	"strings"

	"github.com/pkg/errors"
)

// Attribute is a single decoded a= line. Value is empty for property
// (flag) attributes such as `a=recvonly`.
// https://tools.ietf.org/html/rfc4566#section-5.13
type Attribute struct {
	Key   string
	Value string
}

// AttributeIterator lazily splits a stored attribute region into
// key/value pairs. It holds only the region and a cursor, so building a
// fresh iterator over the same Session or Media replays the identical
// sequence. A single iterator must not be shared between goroutines.
type AttributeIterator struct {
	lex  lexer
	attr Attribute
	err  error
}

func newAttributeIterator(region string) AttributeIterator {
	return AttributeIterator{lex: lexer{buf: region}}
}

// Next advances to the next attribute line. It returns false when the
// region is exhausted or a line is malformed; Err tells the two apart.
func (it *AttributeIterator) Next() bool {
	if it.err != nil || it.lex.eof() {
		return false
	}

	line := it.lex.readLine()
	if len(line) < 2 {
		it.err = errors.Wrapf(ErrInvalidAttribute, "`%s`", line)
		return false
	}

	value := line[2:]
	if i := strings.IndexByte(value, ':'); i >= 0 {
		it.attr = Attribute{Key: value[:i], Value: value[i+1:]}
	} else {
		it.attr = Attribute{Key: value}
	}

	return true
}

// Attribute returns the attribute read by the last successful Next.
func (it *AttributeIterator) Attribute() Attribute {
	return it.attr
}

// Err returns the error that stopped iteration, if any.
func (it *AttributeIterator) Err() error {
	return it.err
}

// attributeLookup drains a fresh iterator over region and returns the
// value of the first attribute with the given key.
func attributeLookup(region, key string) (string, bool) {
	it := newAttributeIterator(region)
	for it.Next() {
		if attr := it.Attribute(); attr.Key == key {
			return attr.Value, true
		}
	}

	return "", false
}
