package shellout

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrUnclosedQuote is returned when a quoted string is not closed
	ErrUnclosedQuote = errors.New("unclosed quote in command string")

	// ErrTrailingEscape is returned when a backslash ends the input
	ErrTrailingEscape = errors.New("trailing escape character at end of command")
)

// Split parses a command string into an argv slice using POSIX-style word
// splitting:
//   - words are separated by unquoted whitespace
//   - single quotes preserve everything literally
//   - double quotes preserve everything except \" \\ \$ \` escapes
//   - a backslash outside quotes escapes the next character
//   - quoted empty strings produce empty arguments
//
// Examples:
//
//	Split(`ls -l /tmp`) => ["ls", "-l", "/tmp"]
//	Split(`grep "two words"`) => ["grep", "two words"]
//	Split(`echo it\'s`) => ["echo", "it's"]
func Split(command string) ([]string, error) {
	args := []string{}
	var word strings.Builder
	var inSingle, inDouble bool
	// A completed empty word is only kept if quotes produced it.
	wordOpen := false

	runes := []rune(command)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]

		switch {
		case ch == '\\' && !inSingle:
			if i+1 >= len(runes) {
				return nil, ErrTrailingEscape
			}
			i++
			next := runes[i]
			if inDouble && !strings.ContainsRune("\"\\$`", next) {
				// Inside double quotes the backslash is literal unless it
				// escapes one of the special characters.
				word.WriteRune('\\')
			}
			word.WriteRune(next)
			wordOpen = true

		case ch == '\'' && !inDouble:
			inSingle = !inSingle
			wordOpen = true

		case ch == '"' && !inSingle:
			inDouble = !inDouble
			wordOpen = true

		case unicode.IsSpace(ch) && !inSingle && !inDouble:
			if wordOpen {
				args = append(args, word.String())
				word.Reset()
				wordOpen = false
			}

		default:
			word.WriteRune(ch)
			wordOpen = true
		}
	}

	if inSingle {
		return nil, fmt.Errorf("%w: unclosed single quote", ErrUnclosedQuote)
	}
	if inDouble {
		return nil, fmt.Errorf("%w: unclosed double quote", ErrUnclosedQuote)
	}
	if wordOpen {
		args = append(args, word.String())
	}

	return args, nil
}

// Join assembles an argv slice back into a single command string, quoting
// arguments that contain whitespace or shell-special characters. Join is
// the inverse of Split for display purposes, not a shell-injection guard.
func Join(args []string) string {
	parts := make([]string, 0, len(args))
	for _, arg := range args {
		parts = append(parts, quoteArg(arg))
	}
	return strings.Join(parts, " ")
}

func quoteArg(arg string) string {
	if arg == "" {
		return "''"
	}
	if !strings.ContainsAny(arg, " \t\n'\"\\$`") {
		return arg
	}
	if !strings.Contains(arg, "'") {
		return "'" + arg + "'"
	}

	var b strings.Builder
	b.WriteByte('"')
	for _, ch := range arg {
		if strings.ContainsRune("\"\\$`", ch) {
			b.WriteByte('\\')
		}
		b.WriteRune(ch)
	}
	b.WriteByte('"')
	return b.String()
}
