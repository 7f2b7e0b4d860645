package equations

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/zaki1905/kirchhoff/internal/circuit"
)

// ParseError reports a submitted equation that could not be read as a linear
// equation in I1, I2, I3. It marks a bad submission, not a checker fault:
// the grading pass records it and keeps going.
type ParseError struct {
	// Input is the submitted text, verbatim.
	Input string

	// Pos is the byte offset where scanning or parsing stopped.
	Pos int

	// Msg describes what went wrong, suitable for showing the student.
	Msg string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("cannot parse equation %q at offset %d: %s", e.Input, e.Pos, e.Msg)
}

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenVariable
	tokenPlus
	tokenMinus
	tokenTimes
	tokenEquals
)

type token struct {
	kind  tokenKind
	pos   int     // byte offset in the input
	value float64 // tokenNumber only
	index int     // tokenVariable only: 0..2 for I1..I3
	text  string
}

// Parse reads one submitted equation and returns its coefficient form.
// Accepted grammar: a linear combination of I1, I2, I3 and numeric literals
// on each side of a single '='. The '*' between a coefficient and a current
// is optional ("3I1", "3 I1" and "3*I1" are the same term); variables are
// case-insensitive and may be written with an underscore ("i_2"). Unicode
// minus signs and multiplication dots are accepted. Everything else fails
// with a *ParseError.
func Parse(raw string) (circuit.Equation, error) {
	if strings.TrimSpace(raw) == "" {
		return circuit.Equation{}, &ParseError{Input: raw, Msg: "empty equation"}
	}
	toks, err := scan(raw)
	if err != nil {
		return circuit.Equation{}, err
	}

	// Accumulated coefficients on I1, I2, I3 and the constant term.
	// Right-hand side terms are folded in with flipped sign so the result
	// always represents a·I1 + b·I2 + c·I3 + d = 0.
	var coeffs [4]float64
	side := 1.0
	sign := 1.0
	sawEquals := false
	sawTermOnSide := false
	expectTerm := true

	fail := func(pos int, format string, args ...any) (circuit.Equation, error) {
		return circuit.Equation{}, &ParseError{Input: raw, Pos: pos, Msg: fmt.Sprintf(format, args...)}
	}

	for i := 0; i < len(toks); {
		tk := toks[i]
		switch tk.kind {
		case tokenPlus, tokenMinus:
			if tk.kind == tokenMinus {
				sign = -sign
			}
			expectTerm = true
			i++

		case tokenEquals:
			if sawEquals {
				return fail(tk.pos, "more than one '='")
			}
			if expectTerm {
				if sawTermOnSide {
					return fail(tk.pos, "dangling operator before '='")
				}
				return fail(tk.pos, "missing left-hand side")
			}
			sawEquals = true
			side = -1
			sign = 1
			sawTermOnSide = false
			expectTerm = true
			i++

		case tokenNumber:
			if !expectTerm {
				return fail(tk.pos, "missing operator before %q", tk.text)
			}
			i++
			explicitTimes := false
			if i < len(toks) && toks[i].kind == tokenTimes {
				explicitTimes = true
				i++
			}
			switch {
			case i < len(toks) && toks[i].kind == tokenVariable:
				coeffs[toks[i].index] += side * sign * tk.value
				i++
			case explicitTimes:
				pos := len(raw)
				if i < len(toks) {
					pos = toks[i].pos
				}
				return fail(pos, "expected I1, I2, or I3 after '*'")
			default:
				coeffs[3] += side * sign * tk.value
			}
			sign = 1
			expectTerm = false
			sawTermOnSide = true

		case tokenVariable:
			if !expectTerm {
				return fail(tk.pos, "missing operator before %q", tk.text)
			}
			coeffs[tk.index] += side * sign
			i++
			if i < len(toks) && toks[i].kind == tokenTimes {
				return fail(toks[i].pos, "write the coefficient before the current, e.g. 2*%s", tk.text)
			}
			sign = 1
			expectTerm = false
			sawTermOnSide = true

		case tokenTimes:
			return fail(tk.pos, "unexpected '*'")
		}
	}

	if expectTerm {
		switch {
		case sawTermOnSide:
			return fail(len(raw), "dangling operator")
		case sawEquals:
			return fail(len(raw), "missing right-hand side")
		default:
			return fail(len(raw), "missing left-hand side")
		}
	}
	if !sawEquals {
		return fail(len(raw), "missing '='")
	}

	return circuit.Equation{I1: coeffs[0], I2: coeffs[1], I3: coeffs[2], Const: coeffs[3]}, nil
}

// scan splits the input into tokens. Unicode minus signs (U+2212, en dash)
// and multiplication marks (×, ·) map to their ASCII operators so pasted
// formulas survive.
func scan(input string) ([]token, error) {
	var toks []token
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		switch {
		case unicode.IsSpace(r):
			i += size

		case r == '+':
			toks = append(toks, token{kind: tokenPlus, pos: i, text: "+"})
			i += size

		case r == '-' || r == '−' || r == '–':
			toks = append(toks, token{kind: tokenMinus, pos: i, text: "-"})
			i += size

		case r == '*' || r == '×' || r == '·':
			toks = append(toks, token{kind: tokenTimes, pos: i, text: "*"})
			i += size

		case r == '=':
			toks = append(toks, token{kind: tokenEquals, pos: i, text: "="})
			i += size

		case r >= '0' && r <= '9' || r == '.':
			j := i
			for j < len(input) && (input[j] >= '0' && input[j] <= '9' || input[j] == '.') {
				j++
			}
			text := input[i:j]
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &ParseError{Input: input, Pos: i, Msg: fmt.Sprintf("bad number %q", text)}
			}
			toks = append(toks, token{kind: tokenNumber, pos: i, value: v, text: text})
			i = j

		case unicode.IsLetter(r):
			j := i
			for j < len(input) {
				r2, s2 := utf8.DecodeRuneInString(input[j:])
				if !unicode.IsLetter(r2) && !unicode.IsDigit(r2) && r2 != '_' {
					break
				}
				j += s2
			}
			word := input[i:j]
			if idx, ok := variableIndex(word); ok {
				toks = append(toks, token{kind: tokenVariable, pos: i, index: idx, text: word})
				i = j
				continue
			}
			return nil, &ParseError{Input: input, Pos: i, Msg: fmt.Sprintf("unknown variable %q (only I1, I2, I3 are allowed)", word)}

		default:
			return nil, &ParseError{Input: input, Pos: i, Msg: fmt.Sprintf("unexpected character %q", r)}
		}
	}
	return toks, nil
}

// variableIndex maps I1/I2/I3 spellings (any case, optional underscore) to
// the current index 0..2.
func variableIndex(word string) (int, bool) {
	rest, ok := strings.CutPrefix(word, "I")
	if !ok {
		rest, ok = strings.CutPrefix(word, "i")
	}
	if !ok {
		return 0, false
	}
	rest = strings.TrimPrefix(rest, "_")
	switch rest {
	case "1":
		return 0, true
	case "2":
		return 1, true
	case "3":
		return 2, true
	}
	return 0, false
}
