package unixmode

// POSIX st_mode bit layout. File-type values occupy the high nibble pair
// under TypeMask; permission and special bits occupy the low 12 bits.
const (
	TypeMask     uint32 = 0o170000
	TypeSocket   uint32 = 0o140000
	TypeSymlink  uint32 = 0o120000
	TypeRegular  uint32 = 0o100000
	TypeBlock    uint32 = 0o060000
	TypeDir      uint32 = 0o040000
	TypeChar     uint32 = 0o020000
	TypeFIFO     uint32 = 0o010000
	TypeWhiteout uint32 = 0o160000

	SetUID uint32 = 0o4000
	SetGID uint32 = 0o2000
	Sticky uint32 = 0o1000

	OwnerRead  uint32 = 0o400
	OwnerWrite uint32 = 0o200
	OwnerExec  uint32 = 0o100
	GroupRead  uint32 = 0o040
	GroupWrite uint32 = 0o020
	GroupExec  uint32 = 0o010
	OtherRead  uint32 = 0o004
	OtherWrite uint32 = 0o002
	OtherExec  uint32 = 0o001
)

// FormatOctal renders the permission and special bits of a raw st_mode
// value as 4 octal digits. File-type bits are ignored.
func FormatOctal(mode uint32) string {
	const digits = "01234567"
	return string([]byte{
		digits[(mode>>9)&7],
		digits[(mode>>6)&7],
		digits[(mode>>3)&7],
		digits[mode&7],
	})
}

// FormatSymbolic renders a raw st_mode value as the 10-character form used
// by ls: a file-type character followed by three permission groups. Unlike
// SymbolicToOctal's input grammar, the output here follows strict stat
// semantics: uppercase special letters mean the execute bit is clear.
func FormatSymbolic(mode uint32) string {
	out := make([]byte, 10)
	out[0] = typeChar(mode)

	render := func(pos int, read, write, exec, special uint32, letter byte) {
		out[pos] = '-'
		out[pos+1] = '-'
		out[pos+2] = '-'
		if mode&read != 0 {
			out[pos] = 'r'
		}
		if mode&write != 0 {
			out[pos+1] = 'w'
		}
		switch {
		case mode&special != 0 && mode&exec != 0:
			out[pos+2] = letter
		case mode&special != 0:
			out[pos+2] = upper(letter)
		case mode&exec != 0:
			out[pos+2] = 'x'
		}
	}

	render(1, OwnerRead, OwnerWrite, OwnerExec, SetUID, 's')
	render(4, GroupRead, GroupWrite, GroupExec, SetGID, 's')
	render(7, OtherRead, OtherWrite, OtherExec, Sticky, 't')
	return string(out)
}

func typeChar(mode uint32) byte {
	switch mode & TypeMask {
	case TypeDir:
		return 'd'
	case TypeSymlink:
		return 'l'
	case TypeBlock:
		return 'b'
	case TypeChar:
		return 'c'
	case TypeFIFO:
		return 'p'
	case TypeSocket:
		return 's'
	case TypeWhiteout:
		return 'w'
	case TypeRegular:
		return '-'
	default:
		return '?'
	}
}
