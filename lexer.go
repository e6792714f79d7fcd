package sdpscan

import "strings"

// lexer steps through an in-memory buffer one line at a time. It tracks
// byte offsets so that regions of the buffer can be recorded as plain
// substrings and parsed later without copying.
type lexer struct {
	buf string
	pos int
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.buf)
}

// lineStart returns the offset of the next unread line.
func (l *lexer) lineStart() int {
	return l.pos
}

// peekType returns the type byte of the next line when it has the
// two-byte `<type>=` shape, without consuming anything.
func (l *lexer) peekType() (byte, bool) {
	rest := l.buf[l.pos:]
	if len(rest) >= 2 && rest[1] == '=' {
		return rest[0], true
	}

	return 0, false
}

// readLine consumes the next line and returns it without its `\n`
// terminator and without a trailing `\r`.
func (l *lexer) readLine() string {
	line := l.buf[l.pos:]
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
		l.pos += i + 1
	} else {
		l.pos = len(l.buf)
	}

	if len(line) > 0 && line[len(line)-1] == '\r' {
		line = line[:len(line)-1]
	}

	return line
}
