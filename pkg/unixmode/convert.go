package unixmode

import "fmt"

// specialGroups maps the value of the special octal digit (setuid=4,
// setgid=2, sticky=1) to the marker character for each permission group.
var specialGroups = [8]string{"---", "--t", "-s-", "-st", "s--", "s-t", "ss-", "sst"}

// OctalToSymbolic converts a 3-or-4 digit octal mode string into its
// 9-character symbolic form. No file-type character is produced. It fails
// with an error wrapping ErrBadNotation when mode is not valid octal text.
func OctalToSymbolic(mode string) (string, error) {
	if !octalPattern.MatchString(mode) {
		return "", fmt.Errorf("%w: %q is not an octal mode", ErrBadNotation, mode)
	}

	special := specialGroups[0]
	digits := mode
	if len(mode) == 4 {
		special = specialGroups[mode[0]-'0']
		digits = mode[1:]
	}

	out := make([]byte, 0, 9)
	for i := 0; i < 3; i++ {
		v := digits[i] - '0'
		if v&4 != 0 {
			out = append(out, 'r')
		} else {
			out = append(out, '-')
		}
		if v&2 != 0 {
			out = append(out, 'w')
		} else {
			out = append(out, '-')
		}
		// The execute slot doubles as the special-bit marker: lowercase
		// letter when execute is set, uppercase when it is not.
		switch sp := special[i]; {
		case sp != '-' && v&1 != 0:
			out = append(out, sp)
		case sp != '-':
			out = append(out, upper(sp))
		case v&1 != 0:
			out = append(out, 'x')
		default:
			out = append(out, '-')
		}
	}
	return string(out), nil
}

// SymbolicToOctal converts symbolic permission text into 4 octal digits,
// special digit first. The execute bit is counted for any of x, s, t, S or
// T; uppercase letters strictly mean "special set, execute clear", but this
// conversion deliberately keeps the historical behavior of treating them as
// executable. It fails with an error wrapping ErrBadNotation when
// permissions does not contain the symbolic grammar.
func SymbolicToOctal(permissions string) (string, error) {
	m := symbolicPattern.FindStringSubmatch(permissions)
	if m == nil {
		return "", fmt.Errorf("%w: %q is not symbolic permission text", ErrBadNotation, permissions)
	}

	var special int
	if lower(m[2][2]) == 's' {
		special |= 4
	}
	if lower(m[3][2]) == 's' {
		special |= 2
	}
	if lower(m[4][2]) == 't' {
		special |= 1
	}

	digits := [4]int{special, 0, 0, 0}
	for i, group := range m[2:5] {
		v := 0
		if group[0] == 'r' {
			v |= 4
		}
		if group[1] == 'w' {
			v |= 2
		}
		if group[2] != '-' {
			v |= 1
		}
		digits[i+1] = v
	}

	return fmt.Sprintf("%d%d%d%d", digits[0], digits[1], digits[2], digits[3]), nil
}
