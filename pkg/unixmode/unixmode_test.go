package unixmode

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Octal(t *testing.T) {
	p, err := Parse("0644")
	require.NoError(t, err)
	require.Equal(t, Octal, p.Notation())
	require.Equal(t, "0644", p.Octal())
	require.Equal(t, "rw-r--r--", p.Symbolic())

	_, hasType := p.FileType()
	require.False(t, hasType, "octal input carries no file type")

	require.Equal(t, Triple{Read: true, Write: true, letter: 's'}, p.Owner())
	require.Equal(t, Triple{Read: true, letter: 's'}, p.Group())
	require.Equal(t, Triple{Read: true, letter: 't'}, p.Other())
}

func TestParse_OctalThreeDigits(t *testing.T) {
	p, err := Parse("755")
	require.NoError(t, err)
	require.Equal(t, "755", p.Octal())
	require.Equal(t, "rwxr-xr-x", p.Symbolic())
}

func TestParse_Symbolic(t *testing.T) {
	p, err := Parse("rwxr-x--x")
	require.NoError(t, err)
	require.Equal(t, Symbolic, p.Notation())
	require.Equal(t, "rwxr-x--x", p.Symbolic())
	require.Equal(t, "0751", p.Octal())
	require.True(t, p.Owner().Execute)
	require.False(t, p.Group().Write)
	require.True(t, p.Other().Execute)
}

func TestParse_FileType(t *testing.T) {
	tests := []struct {
		input string
		want  byte
	}{
		{"-rwxrw-rw-", '-'},
		{"drwxrw-rw-", 'd'},
		{"lrwxrw-rw-", 'l'},
		{"brw-rw----", 'b'},
		{"crw-rw-rw-", 'c'},
		{"prw-rw-rw-", 'p'},
		{"?rwxrw-rw-", '?'},
	}
	for _, tt := range tests {
		p, err := Parse(tt.input)
		require.NoError(t, err, "Parse(%q)", tt.input)
		ft, ok := p.FileType()
		require.True(t, ok, "Parse(%q) should carry a file type", tt.input)
		require.Equal(t, tt.want, ft, "Parse(%q)", tt.input)
	}
}

func TestParse_SymbolicInsideLsLine(t *testing.T) {
	p, err := Parse("drwxr-xr-x  4 root root 4096 Jan  1 00:00 etc")
	require.NoError(t, err)
	require.Equal(t, Symbolic, p.Notation())
	require.Equal(t, "drwxr-xr-x", p.Symbolic())
	require.Equal(t, "0755", p.Octal())
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "invalid permission string", "0888", "rwx", "12", "77777"} {
		_, err := Parse(input)
		require.ErrorIs(t, err, ErrBadNotation, "Parse(%q)", input)
	}
}

func TestParse_SpecialBits(t *testing.T) {
	p, err := Parse("rwsr-sr-t")
	require.NoError(t, err)
	require.Equal(t, "7755", p.Octal())
	require.True(t, p.Owner().Special)
	require.True(t, p.Group().Special)
	require.True(t, p.Other().Special)
}

func TestTriple_StringRoundTrip(t *testing.T) {
	// Owner triples must render back to their source text.
	for _, triple := range []string{"rws", "rwx", "rw-", "r--", "---"} {
		p, err := Parse(triple + "------")
		require.NoError(t, err, "Parse(%q)", triple+"------")
		require.Equal(t, triple, p.Owner().String())
	}
}

func TestTriple_SpecialRendering(t *testing.T) {
	tests := []struct {
		triple Triple
		want   string
	}{
		{Triple{Read: true, Write: true, Execute: true, Special: true, letter: 's'}, "rws"},
		{Triple{Read: true, Write: true, Special: true, letter: 's'}, "rwS"},
		{Triple{Special: true, letter: 't'}, "--T"},
		{Triple{Execute: true, Special: true, letter: 't'}, "--t"},
		{Triple{Execute: true, letter: 's'}, "--x"},
		{Triple{letter: 't'}, "---"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.triple.String())
	}
}

func TestTriple_SpecialLetter(t *testing.T) {
	p, err := Parse("0777")
	require.NoError(t, err)
	require.Equal(t, byte('s'), p.Owner().SpecialLetter())
	require.Equal(t, byte('s'), p.Group().SpecialLetter())
	require.Equal(t, byte('t'), p.Other().SpecialLetter())
}

func TestPermission_String(t *testing.T) {
	p, err := Parse("0640")
	require.NoError(t, err)
	require.Equal(t, "rw-r----- (0640)", p.String())
}
