package linker

import (
	"encoding/binary"
	"strings"
	"unicode/utf16"

	"github.com/arthur-debert/linkmirror/pkg/errors"
)

// Mount point reparse record layout. All offsets and lengths stored in the
// record are byte counts; the path buffer holds UTF-16LE code units.
//
//	0  uint32  reparse tag
//	4  uint16  reparse data length (bytes following the 8 byte header)
//	6  uint16  reserved
//	8  uint16  substitute name offset, relative to the path buffer
//	10 uint16  substitute name length
//	12 uint16  print name offset, relative to the path buffer
//	14 uint16  print name length
//	16 ...     path buffer: substitute name, NUL, print name, NUL
const (
	// MountPointTag is IO_REPARSE_TAG_MOUNT_POINT
	MountPointTag uint32 = 0xA0000003

	// NotAReparsePointCode is ERROR_NOT_A_REPARSE_POINT
	NotAReparsePointCode = 0x1126

	// MaxReparseBufferSize is MAXIMUM_REPARSE_DATA_BUFFER_SIZE
	MaxReparseBufferSize = 16 * 1024

	// NTPathPrefix marks a substitute name in the NT object namespace
	NTPathPrefix = `\??\`

	reparseHeaderSize    = 8
	mountPointHeaderSize = 8
	pathBufferOffset     = reparseHeaderSize + mountPointHeaderSize
	utf16NulSize         = 2
)

// MountPointRecord is the decoded form of a mount point reparse record
type MountPointRecord struct {
	Tag            uint32
	SubstituteName string
	PrintName      string
}

// EncodeMountPoint builds the reparse record for a junction to target.
// target must be absolute; the NT prefix is added when missing and the
// print name is left empty.
func EncodeMountPoint(target string) ([]byte, error) {
	substitute := target
	if !strings.HasPrefix(substitute, NTPathPrefix) {
		substitute = NTPathPrefix + substitute
	}
	return encodeMountPoint(MountPointRecord{
		Tag:            MountPointTag,
		SubstituteName: substitute,
	})
}

func encodeMountPoint(rec MountPointRecord) ([]byte, error) {
	substitute := utf16.Encode([]rune(rec.SubstituteName))
	printName := utf16.Encode([]rune(rec.PrintName))

	substituteBytes := len(substitute) * 2
	printBytes := len(printName) * 2
	pathBufferBytes := substituteBytes + utf16NulSize + printBytes + utf16NulSize
	dataLength := mountPointHeaderSize + pathBufferBytes
	total := reparseHeaderSize + dataLength

	if total > MaxReparseBufferSize {
		return nil, errors.Newf(errors.ErrReparseData,
			"reparse record of %d bytes exceeds the %d byte limit", total, MaxReparseBufferSize).
			WithDetail("target", rec.SubstituteName)
	}

	buf := make([]byte, total)
	le := binary.LittleEndian
	le.PutUint32(buf[0:], rec.Tag)
	le.PutUint16(buf[4:], uint16(dataLength))
	le.PutUint16(buf[6:], 0)
	le.PutUint16(buf[8:], 0)
	le.PutUint16(buf[10:], uint16(substituteBytes))
	le.PutUint16(buf[12:], uint16(substituteBytes+utf16NulSize))
	le.PutUint16(buf[14:], uint16(printBytes))

	offset := pathBufferOffset
	for _, unit := range substitute {
		le.PutUint16(buf[offset:], unit)
		offset += 2
	}
	offset += utf16NulSize
	for _, unit := range printName {
		le.PutUint16(buf[offset:], unit)
		offset += 2
	}

	return buf, nil
}

// DecodeMountPoint parses a reparse record. ok is false for records whose
// tag is not the mount point tag. The returned target has the NT prefix
// stripped.
func DecodeMountPoint(buf []byte) (target string, ok bool, err error) {
	rec, ok, err := decodeMountPoint(buf)
	if err != nil || !ok {
		return "", ok, err
	}
	return strings.TrimPrefix(rec.SubstituteName, NTPathPrefix), true, nil
}

func decodeMountPoint(buf []byte) (MountPointRecord, bool, error) {
	le := binary.LittleEndian

	if len(buf) < reparseHeaderSize {
		return MountPointRecord{}, false, errors.Newf(errors.ErrReparseData,
			"reparse record too short: %d bytes", len(buf))
	}

	tag := le.Uint32(buf[0:])
	if tag != MountPointTag {
		return MountPointRecord{Tag: tag}, false, nil
	}

	if len(buf) < pathBufferOffset {
		return MountPointRecord{}, false, errors.Newf(errors.ErrReparseData,
			"mount point record too short: %d bytes", len(buf))
	}

	dataLength := int(le.Uint16(buf[4:]))
	end := reparseHeaderSize + dataLength
	if end > len(buf) || dataLength < mountPointHeaderSize {
		return MountPointRecord{}, false, errors.Newf(errors.ErrReparseData,
			"reparse data length %d does not fit a %d byte record", dataLength, len(buf))
	}

	pathBuffer := decodeUnits(buf[pathBufferOffset:end])

	substitute, err := sliceName(pathBuffer, le.Uint16(buf[8:]), le.Uint16(buf[10:]))
	if err != nil {
		return MountPointRecord{}, false, err
	}
	printName, err := sliceName(pathBuffer, le.Uint16(buf[12:]), le.Uint16(buf[14:]))
	if err != nil {
		return MountPointRecord{}, false, err
	}

	return MountPointRecord{
		Tag:            tag,
		SubstituteName: substitute,
		PrintName:      printName,
	}, true, nil
}

func decodeUnits(b []byte) []uint16 {
	units := make([]uint16, len(b)/2)
	for i := range units {
		units[i] = binary.LittleEndian.Uint16(b[i*2:])
	}
	return units
}

// sliceName extracts a name given its byte offset and byte length
func sliceName(units []uint16, byteOffset, byteLength uint16) (string, error) {
	if byteOffset%2 != 0 || byteLength%2 != 0 {
		return "", errors.Newf(errors.ErrReparseData,
			"odd name offset or length (%d, %d)", byteOffset, byteLength)
	}
	start := int(byteOffset) / 2
	end := start + int(byteLength)/2
	if end > len(units) {
		return "", errors.Newf(errors.ErrReparseData,
			"name at %d+%d overruns the path buffer", byteOffset, byteLength)
	}
	return string(utf16.Decode(units[start:end])), nil
}
