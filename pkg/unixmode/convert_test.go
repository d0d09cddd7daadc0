package unixmode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOctalToSymbolic(t *testing.T) {
	tests := []struct {
		octal string
		want  string
	}{
		{"0644", "rw-r--r--"},
		{"0755", "rwxr-xr-x"},
		{"0700", "rwx------"},
		{"0775", "rwxrwxr-x"},
		{"644", "rw-r--r--"},
		{"000", "---------"},
		{"4755", "rwsr-xr-x"},
		{"2755", "rwxr-sr-x"},
		{"1777", "rwxrwxrwt"},
		{"7777", "rwsrwsrwt"},
		{"7666", "rwSrwSrwT"},
		{"4644", "rwSr--r--"},
	}
	for _, tt := range tests {
		got, err := OctalToSymbolic(tt.octal)
		require.NoError(t, err, "OctalToSymbolic(%q)", tt.octal)
		require.Equal(t, tt.want, got, "OctalToSymbolic(%q)", tt.octal)
	}
}

func TestOctalToSymbolic_Invalid(t *testing.T) {
	for _, input := range []string{"", "rwxr-xr-x", "08", "77", "75543", "0o755"} {
		_, err := OctalToSymbolic(input)
		require.ErrorIs(t, err, ErrBadNotation, "OctalToSymbolic(%q)", input)
	}
}

func TestSymbolicToOctal(t *testing.T) {
	tests := []struct {
		symbolic string
		want     string
	}{
		{"rw-r--r--", "0644"},
		{"rwxr-xr-x", "0755"},
		{"rwx------", "0700"},
		{"rwxrwxr-x", "0775"},
		{"---------", "0000"},
		{"rwsr-xr-x", "4755"},
		{"rwxr-sr-x", "2755"},
		{"rwxrwxrwt", "1777"},
		{"rwsrwsrwt", "7777"},
		{"drwxr-xr-x", "0755"}, // file type is dropped
	}
	for _, tt := range tests {
		got, err := SymbolicToOctal(tt.symbolic)
		require.NoError(t, err, "SymbolicToOctal(%q)", tt.symbolic)
		require.Equal(t, tt.want, got, "SymbolicToOctal(%q)", tt.symbolic)
	}
}

// Uppercase special letters strictly mean "special set, execute clear", but
// this conversion counts them as executable. Known deviation, kept for
// compatibility; do not "fix" without migrating callers.
func TestSymbolicToOctal_UppercaseSpecial(t *testing.T) {
	got, err := SymbolicToOctal("rwSr--r--")
	require.NoError(t, err)
	require.Equal(t, "4744", got, "strict stat semantics would give 4644")

	got, err = SymbolicToOctal("rwSrwSrwT")
	require.NoError(t, err)
	require.Equal(t, "7777", got, "strict stat semantics would give 7666")
}

func TestSymbolicToOctal_Invalid(t *testing.T) {
	for _, input := range []string{"", "0755", "rwx", "not a mode"} {
		_, err := SymbolicToOctal(input)
		require.ErrorIs(t, err, ErrBadNotation, "SymbolicToOctal(%q)", input)
	}
}

func TestConvert_RoundTrip(t *testing.T) {
	// Every 3-digit octal mode comes back with a leading special digit.
	for _, mode := range []string{"644", "755", "700", "775", "000", "123", "777"} {
		symbolic, err := OctalToSymbolic(mode)
		require.NoError(t, err)
		back, err := SymbolicToOctal(symbolic)
		require.NoError(t, err)
		require.Equal(t, "0"+mode, back, "round trip of %q", mode)
	}

	// 4-digit modes with special bits survive unchanged.
	for _, mode := range []string{"0644", "4755", "2711", "1777", "7777"} {
		symbolic, err := OctalToSymbolic(mode)
		require.NoError(t, err)
		back, err := SymbolicToOctal(symbolic)
		require.NoError(t, err)
		require.Equal(t, mode, back, "round trip of %q", mode)
	}
}
