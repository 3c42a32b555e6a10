package markup

import (
	"github.com/arthur-debert/fancy/pkg/errors"
)

// scanner walks the source once, copying literal runes to the builder and
// handing each mode expression to the resolver.
type scanner struct {
	src []rune
	b   *builder

	// quoted selects the build-time binding: the source starts with a Go
	// string literal and anything after its closing quote is an argument list.
	quoted bool
}

// scanResult is what is left once the literal part has been consumed
type scanResult struct {
	args string
}

func (s *scanner) peek(i int) rune {
	if i < len(s.src) {
		return s.src[i]
	}
	return 0
}

func (s *scanner) run() (scanResult, error) {
	i := 0
	if s.quoted {
		if len(s.src) == 0 || s.src[0] != '"' {
			tok := ""
			if len(s.src) > 0 {
				tok = string(s.src[0])
			}
			return scanResult{}, errors.New(errors.ErrMissingLiteralDelimiter,
				"source must start with a '\"' string literal").At(0, tok)
		}
		i = 1
	}

	open := -1
	closed := false

	for i < len(s.src) {
		r := s.src[i]

		switch {
		case s.quoted && r == '\\':
			// Go escape sequences pass through untouched and never end the literal.
			if open < 0 {
				s.b.writeRune(r)
				if i+1 < len(s.src) {
					s.b.writeRune(s.src[i+1])
				}
			}
			i += 2
			continue

		case s.quoted && r == '"':
			closed = true

		case r == '[':
			if open >= 0 {
				return scanResult{}, errors.New(errors.ErrNestedBracket,
					"cannot open a mode expression inside another one").At(i, "[")
			}
			if s.peek(i+1) == '[' {
				s.b.writeRune('[')
				i += 2
				continue
			}
			open = i

		case r == ']':
			if open >= 0 {
				if err := resolve(string(s.src[open+1:i]), open+1, s.b); err != nil {
					return scanResult{}, err
				}
				open = -1
				break
			}
			if s.peek(i+1) == ']' {
				i++
			}
			s.b.writeRune(']')

		default:
			if open < 0 {
				s.b.writeRune(r)
			}
		}

		i++
		if closed {
			break
		}
	}

	end := min(i, len(s.src))
	if closed {
		// the closing quote itself is not part of the literal
		end--
	}

	if open >= 0 {
		return scanResult{}, errors.New(errors.ErrUnmatchedBracket,
			"mode expression is never closed").At(open, string(s.src[open:end]))
	}

	if s.quoted && !closed {
		return scanResult{}, errors.New(errors.ErrMissingLiteralDelimiter,
			"string literal is never closed").At(len(s.src), `"`)
	}

	var res scanResult
	if s.quoted {
		res.args = string(s.src[i:])
	}
	return res, nil
}
