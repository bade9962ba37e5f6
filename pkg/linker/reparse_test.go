package linker

import (
	"encoding/binary"
	"testing"
	"unicode/utf16"

	"github.com/arthur-debert/linkmirror/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeMountPoint_Layout(t *testing.T) {
	target := `C:\src\docs`
	buf, err := EncodeMountPoint(target)
	require.NoError(t, err)

	le := binary.LittleEndian
	substitute := utf16.Encode([]rune(`\??\C:\src\docs`))
	subBytes := len(substitute) * 2

	assert.Equal(t, MountPointTag, le.Uint32(buf[0:]), "tag")
	assert.Equal(t, uint16(8+subBytes+2+2), le.Uint16(buf[4:]), "data length")
	assert.Equal(t, uint16(0), le.Uint16(buf[6:]), "reserved")
	assert.Equal(t, uint16(0), le.Uint16(buf[8:]), "substitute offset")
	assert.Equal(t, uint16(subBytes), le.Uint16(buf[10:]), "substitute length")
	assert.Equal(t, uint16(subBytes+2), le.Uint16(buf[12:]), "print offset")
	assert.Equal(t, uint16(0), le.Uint16(buf[14:]), "print length")
	assert.Len(t, buf, 16+subBytes+4)

	for i, unit := range substitute {
		assert.Equal(t, unit, le.Uint16(buf[16+i*2:]))
	}
	// both names are NUL terminated
	assert.Equal(t, uint16(0), le.Uint16(buf[16+subBytes:]))
	assert.Equal(t, uint16(0), le.Uint16(buf[len(buf)-2:]))
}

func TestEncodeMountPoint_KeepsExistingPrefix(t *testing.T) {
	withPrefix, err := EncodeMountPoint(`\??\D:\data`)
	require.NoError(t, err)
	without, err := EncodeMountPoint(`D:\data`)
	require.NoError(t, err)

	assert.Equal(t, without, withPrefix)
}

func TestMountPoint_RoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		target string
	}{
		{"drive path", `C:\src\docs`},
		{"unc style", `\\server\share\folder`},
		{"non ascii", `C:\Users\zoë\文档`},
		{"astral plane", `C:\emoji\😀`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := EncodeMountPoint(tt.target)
			require.NoError(t, err)

			got, ok, err := DecodeMountPoint(buf)
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, tt.target, got)
		})
	}
}

func TestDecodeMountPoint_WithPrintName(t *testing.T) {
	buf, err := encodeMountPoint(MountPointRecord{
		Tag:            MountPointTag,
		SubstituteName: `\??\C:\real`,
		PrintName:      `C:\real`,
	})
	require.NoError(t, err)

	rec, ok, err := decodeMountPoint(buf)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `\??\C:\real`, rec.SubstituteName)
	assert.Equal(t, `C:\real`, rec.PrintName)
}

func TestDecodeMountPoint_OtherTag(t *testing.T) {
	buf, err := encodeMountPoint(MountPointRecord{
		Tag:            0xA000000C, // symbolic link tag
		SubstituteName: `\??\C:\elsewhere`,
	})
	require.NoError(t, err)

	target, ok, err := DecodeMountPoint(buf)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, target)
}

func TestDecodeMountPoint_Malformed(t *testing.T) {
	valid, err := EncodeMountPoint(`C:\src`)
	require.NoError(t, err)

	oversizedLength := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint16(oversizedLength[4:], uint16(len(valid)))

	oddOffset := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint16(oddOffset[8:], 1)

	overrun := append([]byte(nil), valid...)
	binary.LittleEndian.PutUint16(overrun[10:], 0x1000)

	tests := []struct {
		name string
		buf  []byte
	}{
		{"empty", nil},
		{"shorter than header", valid[:6]},
		{"header only", valid[:12]},
		{"data length past end", oversizedLength},
		{"odd name offset", oddOffset},
		{"name overruns buffer", overrun},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok, err := DecodeMountPoint(tt.buf)
			require.Error(t, err)
			assert.False(t, ok)
			assert.True(t, errors.IsErrorCode(err, errors.ErrReparseData))
		})
	}
}

func TestEncodeMountPoint_TooLong(t *testing.T) {
	long := make([]rune, MaxReparseBufferSize)
	for i := range long {
		long[i] = 'a'
	}

	_, err := EncodeMountPoint(`C:\` + string(long))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrReparseData))
}
