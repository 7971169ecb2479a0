package looseJSON

import (
	"strconv"
	"strings"
)

type token int

const (
	tokEOF token = iota
	tokSpace
	tokLBrace
	tokRBrace
	tokLBrack
	tokRBrack
	tokDQuote
	tokComma
	tokColon
	tokMinus
	tokCharSeq
	tokDigit
)

// lexer walks a bounded buffer and keeps the current/lookahead token pair.
// All lexing state lives here, nothing is shared between parses.
type lexer struct {
	buf  string
	pos  int
	cur  token
	look token
}

func (lx *lexer) reset(buf string) {
	lx.buf = buf
	lx.pos = 0
	lx.cur = tokEOF
	lx.look = tokEOF
}

func isCRNL(c byte) bool { return c == '\r' || c == '\n' }

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// lex classifies the next meaningful unit. Control characters are always
// skipped. A run of plain spaces is skipped only as indentation right
// after a line break (or at the very start of the buffer); spaces within a
// line stay significant and come back as tokSpace.
func (lx *lexer) lex() token {
	for lx.pos < len(lx.buf) {
		c := lx.buf[lx.pos]
		if isCRNL(c) || c == '\t' {
			lx.pos++
			continue
		}
		if c == ' ' && (lx.pos == 0 || isCRNL(lx.buf[lx.pos-1])) {
			for lx.pos < len(lx.buf) && lx.buf[lx.pos] == ' ' {
				lx.pos++
			}
			continue
		}
		break
	}

	if lx.pos >= len(lx.buf) {
		return tokEOF
	}

	switch c := lx.buf[lx.pos]; c {
	case '"':
		lx.pos++
		return tokDQuote
	case '{':
		lx.pos++
		return tokLBrace
	case '}':
		lx.pos++
		return tokRBrace
	case '[':
		lx.pos++
		return tokLBrack
	case ']':
		lx.pos++
		return tokRBrack
	case ',':
		lx.pos++
		return tokComma
	case ':':
		lx.pos++
		return tokColon
	case '-':
		lx.pos++
		return tokMinus
	case ' ':
		lx.pos++
		return tokSpace
	default:
		if isDigit(c) {
			return tokDigit
		}
		return tokCharSeq
	}
}

// advance shifts the lookahead into current and lexes a new lookahead.
func (lx *lexer) advance() {
	lx.cur = lx.look
	lx.look = lx.lex()
}

func (lx *lexer) matches(t token) bool { return lx.look == t }

// scanString consumes the body of a quoted string after the opening quote
// was lexed, skipping over escaped quotes, then confirms the closing quote
// through the lookahead. No escape decoding happens, the body is kept as
// written.
func (lx *lexer) scanString() (string, error) {
	start := lx.pos
	o := lx.pos
	for {
		x := strings.IndexByte(lx.buf[o:], '"')
		if x < 0 {
			return "", ErrUnterminatedString
		}
		o += x + 1
		if x == 0 || lx.buf[o-2] != '\\' {
			break
		}
	}

	body := lx.buf[start : o-1]
	lx.pos = o - 1

	lx.advance()
	if !lx.matches(tokDQuote) {
		return "", ErrUnterminatedString
	}
	return body, nil
}

// scanBareWord consumes an unquoted literal run such as null or true.
func (lx *lexer) scanBareWord() string {
	start := lx.pos
	for lx.pos < len(lx.buf) {
		c := lx.buf[lx.pos]
		if c == ',' || c == ' ' || c == '\t' || c == '}' || c == ']' || isCRNL(c) {
			break
		}
		lx.pos++
	}
	return lx.buf[start:lx.pos]
}

// scanNumber consumes a maximal decimal digit run.
func (lx *lexer) scanNumber() (int, error) {
	start := lx.pos
	for lx.pos < len(lx.buf) && isDigit(lx.buf[lx.pos]) {
		lx.pos++
	}

	n, err := strconv.Atoi(lx.buf[start:lx.pos])
	if err != nil {
		return 0, ErrBadNumber
	}
	return n, nil
}
