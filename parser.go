package looseJSON

import "strconv"

// maxDepth bounds the parent stack, one level per enclosing object below
// the root.
const maxDepth = 256

// parser is the per-parse context: the token pair lives in the lexer, the
// parent stack and the name/value mode live here. Nothing is process-wide,
// so independent inputs can be decoded concurrently.
type parser struct {
	id int

	lx      lexer
	stack   []*Node
	parent  *Node
	pending *Value
	getting bool // false: expecting a member name, true: expecting its value
	done    bool
}

// parse drives the lexer over one document and builds the value tree. The
// builder dispatches on the lookahead token, the way the mode flips is the
// whole state machine: a quoted name flips to "expecting value", any
// attached value flips back.
func (p *parser) parse(json string) (*Document, error) {
	if len(json) == 0 {
		return nil, ErrEmptyInput
	}

	doc := &Document{}
	doc.root = doc.newNode("root")

	p.lx.reset(json)
	p.stack = p.stack[:0]
	p.parent = doc.root
	p.pending = nil
	p.getting = false
	p.done = false

	p.lx.advance()
	if !p.lx.matches(tokLBrace) {
		return nil, ErrExpectedObject
	}
	p.lx.advance()

	minus := false
	for !p.lx.matches(tokEOF) {
		if p.done && !p.lx.matches(tokSpace) {
			return nil, ErrTrailingData
		}

		switch p.lx.look {
		case tokMinus:
			if !p.getting || p.pending == nil {
				return nil, ErrUnexpectedToken
			}
			minus = true
			p.lx.advance()
			if !p.lx.matches(tokDigit) {
				return nil, ErrExpectedValue
			}
			fallthrough

		case tokDigit:
			if !p.getting || p.pending == nil {
				return nil, ErrUnexpectedToken
			}
			num, err := p.lx.scanNumber()
			if err != nil {
				return nil, err
			}
			if minus {
				num = -num
				minus = false
			}
			p.pending.kind = Number
			p.pending.num = num
			p.attach()

		case tokDQuote:
			if p.getting {
				if p.pending == nil {
					return nil, ErrUnexpectedToken
				}
				text, err := p.lx.scanString()
				if err != nil {
					return nil, err
				}
				doc.ownText(p.pending, String, text)
				p.attach()
			} else {
				name, err := p.parseMemberName()
				if err != nil {
					return nil, err
				}
				p.pending = doc.newValue(name)
				p.getting = true
			}

		case tokLBrace:
			if !p.getting || p.pending == nil {
				return nil, ErrUnexpectedToken
			}
			if len(p.stack) >= maxDepth {
				return nil, ErrTooDeep
			}
			node := doc.newNode(p.pending.name)
			p.pending.kind = Object
			p.pending.obj = node
			p.attach()
			// values parsed from here on belong to the new node, the
			// enclosing parent waits on the stack
			p.stack = append(p.stack, p.parent)
			p.parent = node

		case tokRBrace:
			if p.getting {
				return nil, ErrExpectedValue
			}
			if len(p.stack) == 0 {
				// the document-level close, nothing may follow it
				p.done = true
				break
			}
			p.parent = p.stack[len(p.stack)-1]
			p.stack = p.stack[:len(p.stack)-1]

		case tokLBrack:
			if !p.getting || p.pending == nil {
				return nil, ErrUnexpectedToken
			}
			block, err := p.parseArray(doc)
			if err != nil {
				return nil, err
			}
			doc.ownBlock(p.pending, block)
			p.attach()

		case tokCharSeq:
			if !p.getting || p.pending == nil {
				return nil, ErrUnexpectedToken
			}
			word := p.lx.scanBareWord()
			doc.ownText(p.pending, literalKind(word), word)
			p.attach()

		case tokComma, tokSpace:
			// separators

		default:
			return nil, ErrUnexpectedToken
		}

		p.lx.advance()
	}

	if !p.done || len(p.stack) != 0 {
		return nil, ErrUnexpectedEnding
	}

	return doc, nil
}

// parseMemberName reads a quoted member name and the colon after it.
func (p *parser) parseMemberName() (string, error) {
	name, err := p.lx.scanString()
	if err != nil {
		return "", err
	}

	p.lx.advance()
	p.skipSpace()
	if !p.lx.matches(tokColon) {
		return "", ErrExpectedColon
	}
	return name, nil
}

// parseArray consumes tokens after '[' into one contiguous block. Elements
// are flat scalars only and get named by their position; an array or
// object element is a fail-fast rejection, not a misparse. The finished
// block ends with exactly one sentinel entry.
func (p *parser) parseArray(doc *Document) ([]Value, error) {
	block := make([]Value, 0, 4)

	p.lx.advance()
	p.skipSpace()
	if p.lx.matches(tokRBrack) {
		return doc.sealBlock(block), nil
	}

	for idx := 0; ; idx++ {
		elem := Value{name: "#" + strconv.Itoa(idx)}

		switch p.lx.look {
		case tokDQuote:
			text, err := p.lx.scanString()
			if err != nil {
				return nil, err
			}
			doc.ownText(&elem, String, text)

		case tokMinus:
			p.lx.advance()
			if !p.lx.matches(tokDigit) {
				return nil, ErrExpectedValue
			}
			num, err := p.lx.scanNumber()
			if err != nil {
				return nil, err
			}
			elem.kind = Number
			elem.num = -num

		case tokDigit:
			num, err := p.lx.scanNumber()
			if err != nil {
				return nil, err
			}
			elem.kind = Number
			elem.num = num

		case tokCharSeq:
			word := p.lx.scanBareWord()
			doc.ownText(&elem, literalKind(word), word)

		case tokLBrack:
			return nil, ErrNestedArray

		case tokLBrace:
			return nil, ErrNestedObject

		case tokEOF:
			return nil, ErrUnexpectedEnding

		default:
			return nil, ErrExpectedValue
		}

		block = append(block, elem)

		// either a comma or finally the closing bracket
		p.lx.advance()
		p.skipSpace()
		if p.lx.matches(tokRBrack) {
			break
		}
		if p.lx.matches(tokEOF) {
			return nil, ErrUnexpectedEnding
		}
		if !p.lx.matches(tokComma) {
			return nil, ErrExpectedComma
		}
		p.lx.advance()
		p.skipSpace()
	}

	return doc.sealBlock(block), nil
}

// attach hands the pending value to the current parent and flips the mode
// back to expecting a name.
func (p *parser) attach() {
	p.parent.values = append(p.parent.values, p.pending)
	p.pending = nil
	p.getting = false
}

func (p *parser) skipSpace() {
	for p.lx.matches(tokSpace) {
		p.lx.advance()
	}
}

// literalKind classifies an unquoted literal: exactly true/false is a
// Boolean, any other bare word is a Null. This is the dialect's loose
// rule, not type inference.
func literalKind(word string) Kind {
	if word == "true" || word == "false" {
		return Boolean
	}
	return Null
}
