// Package unixmode parses Unix file-mode notation and converts between its
// octal and symbolic forms.
//
// Two grammars are recognized:
//   - octal: 3 or 4 octal digits ("644", "0755"); a leading fourth digit
//     carries the special bits (setuid=4, setgid=2, sticky=1)
//   - symbolic: three 3-character permission groups ("rwxr-xr-x"),
//     optionally preceded by a file-type character ("drwxr-xr-x")
//
// Octal input must match the whole string; symbolic notation is located by
// substring search, so a full `ls -l` line parses directly.
package unixmode

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrBadNotation is returned when input matches neither the octal nor the
// symbolic grammar.
var ErrBadNotation = errors.New("unrecognized permission notation")

var (
	octalPattern    = regexp.MustCompile(`^[0-7]{3,4}$`)
	symbolicPattern = regexp.MustCompile(`([-dlbcspw?]?)([r-][w-][xsS-])([r-][w-][xsS-])([r-][w-][xtT-])`)
)

// Notation identifies which grammar an input string was written in.
type Notation int

const (
	Octal Notation = iota
	Symbolic
)

func (n Notation) String() string {
	if n == Octal {
		return "octal"
	}
	return "symbolic"
}

// Permission is the parsed form of one mode string. All fields are computed
// at parse time; a Permission is immutable and safe for concurrent use.
type Permission struct {
	notation Notation
	octal    string
	symbolic string
	fileType byte
	hasType  bool
	owner    Triple
	group    Triple
	other    Triple
}

// Parse parses input in either octal or symbolic notation. It fails with an
// error wrapping ErrBadNotation when input matches neither grammar.
func Parse(input string) (Permission, error) {
	if octalPattern.MatchString(input) {
		symbolic, err := OctalToSymbolic(input)
		if err != nil {
			return Permission{}, err
		}
		p := Permission{
			notation: Octal,
			octal:    input,
			symbolic: symbolic,
		}
		p.owner = tripleFromGroup(symbolic[0:3], 's')
		p.group = tripleFromGroup(symbolic[3:6], 's')
		p.other = tripleFromGroup(symbolic[6:9], 't')
		return p, nil
	}

	m := symbolicPattern.FindStringSubmatch(input)
	if m == nil {
		return Permission{}, fmt.Errorf("%w: %q", ErrBadNotation, input)
	}

	octal, err := SymbolicToOctal(m[0])
	if err != nil {
		return Permission{}, err
	}
	p := Permission{
		notation: Symbolic,
		octal:    octal,
		symbolic: m[0],
		hasType:  m[1] != "",
		owner:    tripleFromGroup(m[2], 's'),
		group:    tripleFromGroup(m[3], 's'),
		other:    tripleFromGroup(m[4], 't'),
	}
	if p.hasType {
		p.fileType = m[1][0]
	}
	return p, nil
}

// Notation reports which grammar the original input was written in.
func (p Permission) Notation() Notation { return p.notation }

// Octal returns the canonical octal text. For symbolic input this is always
// 4 digits (special digit first); for octal input it is the text as given.
func (p Permission) Octal() string { return p.octal }

// Symbolic returns the canonical symbolic text: 9 characters, or 10 when
// the input carried a file-type character.
func (p Permission) Symbolic() string { return p.symbolic }

// FileType returns the file-type character ('-', 'd', 'l', 'b', 'c', 'p',
// 's', 'w' or '?') and whether the input carried one. Octal input never
// carries a file type.
func (p Permission) FileType() (byte, bool) { return p.fileType, p.hasType }

// Owner returns the owner permission triple (special bit: setuid).
func (p Permission) Owner() Triple { return p.owner }

// Group returns the group permission triple (special bit: setgid).
func (p Permission) Group() Triple { return p.group }

// Other returns the other permission triple (special bit: sticky).
func (p Permission) Other() Triple { return p.other }

func (p Permission) String() string {
	return fmt.Sprintf("%s (%s)", p.symbolic, p.octal)
}

// Triple holds the read/write/execute flags of one permission class plus
// its special bit (setuid for owner, setgid for group, sticky for other).
// The class is captured by the special-bit letter, 's' or 't', rather than
// by distinct types per class.
type Triple struct {
	Read    bool
	Write   bool
	Execute bool
	Special bool

	letter byte
}

// tripleFromGroup decodes a 3-character symbolic group. The third character
// signals execute unless it is '-', and signals the special bit when it is
// the class letter in either case.
func tripleFromGroup(group string, letter byte) Triple {
	third := group[2]
	return Triple{
		Read:    group[0] != '-',
		Write:   group[1] != '-',
		Execute: third != '-',
		Special: lower(third) == letter,
		letter:  letter,
	}
}

// SpecialLetter returns the letter rendered for this triple's special bit,
// 's' for owner/group or 't' for other.
func (t Triple) SpecialLetter() byte { return t.letter }

// String renders the triple as its 3-character symbolic group. The third
// character is the lowercase special letter when both the special bit and
// execute are set, the uppercase letter when only the special bit is set,
// 'x' when only execute is set, and '-' otherwise.
func (t Triple) String() string {
	b := [3]byte{'-', '-', '-'}
	if t.Read {
		b[0] = 'r'
	}
	if t.Write {
		b[1] = 'w'
	}
	switch {
	case t.Special && t.Execute:
		b[2] = t.letter
	case t.Special:
		b[2] = upper(t.letter)
	case t.Execute:
		b[2] = 'x'
	}
	return string(b[:])
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
