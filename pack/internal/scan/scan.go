package scan

import (
	"strconv"
	"unicode/utf8"

	"github.com/wippyai/structpack/errors"
)

// MaxCount caps any count or length prefix.
const MaxCount = 1<<16 - 1

type Token struct {
	Count    int
	HasCount bool
	Code     byte
	Pos      int // offset of Code in the format string
}

// N returns the count, defaulting to 1 when absent.
func (t Token) N() int {
	if !t.HasCount {
		return 1
	}
	return t.Count
}

type Result struct {
	Tokens []Token
	Order  byte // 0 when the format has no marker
}

func IsOrder(c byte) bool {
	switch c {
	case '@', '=', '<', '>', '!':
		return true
	}
	return false
}

func IsCode(c byte) bool {
	switch c {
	case '?', 'c', 'b', 'B', 'h', 'H', 'i', 'I', 'l', 'L', 'q', 'Q', 'f', 'd', 's', 'x':
		return true
	}
	return false
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// Scan splits format into tokens. It fails on the first character that is
// not a digit, a type code, or a byte order marker at offset 0.
func Scan(format string) (Result, error) {
	var res Result
	i := 0

	if len(format) > 0 && IsOrder(format[0]) {
		res.Order = format[0]
		i = 1
	}

	res.Tokens = make([]Token, 0, len(format)-i)

	for i < len(format) {
		start := i
		tok := Token{}

		if isDigit(format[i]) {
			n := 0
			for i < len(format) && isDigit(format[i]) {
				n = n*10 + int(format[i]-'0')
				if n > MaxCount {
					return Result{}, errors.InvalidLengthPrefix(start,
						"count exceeds maximum "+strconv.Itoa(MaxCount))
				}
				i++
			}
			if i == len(format) {
				return Result{}, errors.InvalidLengthPrefix(start,
					"count "+format[start:]+" is not followed by a type code")
			}
			tok.Count = n
			tok.HasCount = true
		}

		c := format[i]
		switch {
		case IsOrder(c):
			return Result{}, errors.InvalidByteOrder(rune(c), i)
		case !IsCode(c):
			r, _ := utf8.DecodeRuneInString(format[i:])
			return Result{}, errors.InvalidCharacter(r, i)
		}

		if tok.HasCount && tok.Count == 0 {
			return Result{}, errors.InvalidLengthPrefix(start, "count must be at least 1")
		}

		tok.Code = c
		tok.Pos = i
		res.Tokens = append(res.Tokens, tok)
		i++
	}

	return res, nil
}
