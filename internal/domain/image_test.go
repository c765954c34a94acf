package domain

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	testNTOffset  = 0x40
	testOptOffset = testNTOffset + 24
)

// buildImage crafts a minimal header-only image. PE32+ unless pe32 is set.
func buildImage(pe32 bool) []byte {
	dirBase := testOptOffset + 112
	if pe32 {
		dirBase = testOptOffset + 96
	}
	img := make([]byte, dirBase+15*8)
	binary.LittleEndian.PutUint16(img[0:], 0x5A4D)
	binary.LittleEndian.PutUint32(img[0x3C:], testNTOffset)
	binary.LittleEndian.PutUint32(img[testNTOffset:], 0x4550)
	binary.LittleEndian.PutUint16(img[testNTOffset+22:], 0x0022)
	if pe32 {
		binary.LittleEndian.PutUint16(img[testOptOffset:], 0x10B)
	} else {
		binary.LittleEndian.PutUint16(img[testOptOffset:], 0x20B)
	}
	binary.LittleEndian.PutUint16(img[testOptOffset+68:], 3)
	comDir := dirBase + 14*8
	binary.LittleEndian.PutUint32(img[comDir:], 0x2008)
	binary.LittleEndian.PutUint32(img[comDir+4:], 72)
	return img
}

func TestValidateImageAcceptsManagedExecutables(t *testing.T) {
	require.NoError(t, ValidateImage(buildImage(false)))
	require.NoError(t, ValidateImage(buildImage(true)))
}

func TestValidateImageRejectsShortBuffer(t *testing.T) {
	require.ErrorIs(t, ValidateImage(nil), ErrInvalidImage)
	require.ErrorIs(t, ValidateImage([]byte("MZ")), ErrInvalidImage)
}

func TestValidateImageRejectsMissingDOSMagic(t *testing.T) {
	img := buildImage(false)
	img[0] = 'P'
	img[1] = 'K'
	require.ErrorIs(t, ValidateImage(img), ErrInvalidImage)
}

func TestValidateImageRejectsBadNTSignature(t *testing.T) {
	img := buildImage(false)
	binary.LittleEndian.PutUint32(img[testNTOffset:], 0x4D5A)
	require.ErrorIs(t, ValidateImage(img), ErrInvalidImage)
}

func TestValidateImageRejectsOutOfRangeNTOffset(t *testing.T) {
	img := buildImage(false)
	binary.LittleEndian.PutUint32(img[0x3C:], uint32(len(img)))
	require.ErrorIs(t, ValidateImage(img), ErrInvalidImage)
}

func TestValidateImageRejectsDLL(t *testing.T) {
	img := buildImage(false)
	binary.LittleEndian.PutUint16(img[testNTOffset+22:], 0x2022)
	require.ErrorIs(t, ValidateImage(img), ErrNotExecutable)
}

func TestValidateImageRejectsNonExecutable(t *testing.T) {
	img := buildImage(false)
	binary.LittleEndian.PutUint16(img[testNTOffset+22:], 0x0020)
	require.ErrorIs(t, ValidateImage(img), ErrNotExecutable)
}

func TestValidateImageRejectsNativeSubsystem(t *testing.T) {
	img := buildImage(false)
	binary.LittleEndian.PutUint16(img[testOptOffset+68:], 1)
	require.ErrorIs(t, ValidateImage(img), ErrNotExecutable)
}

func TestValidateImageRejectsUnknownOptionalMagic(t *testing.T) {
	img := buildImage(false)
	binary.LittleEndian.PutUint16(img[testOptOffset:], 0x107)
	require.ErrorIs(t, ValidateImage(img), ErrInvalidImage)
}

func TestValidateImageRejectsNativeOnlyExecutable(t *testing.T) {
	for _, pe32 := range []bool{false, true} {
		img := buildImage(pe32)
		dirBase := testOptOffset + 112
		if pe32 {
			dirBase = testOptOffset + 96
		}
		comDir := dirBase + 14*8
		binary.LittleEndian.PutUint32(img[comDir:], 0)
		binary.LittleEndian.PutUint32(img[comDir+4:], 0)
		require.ErrorIs(t, ValidateImage(img), ErrNotManaged)
	}
}

func TestValidateImageRejectsTruncatedDirectories(t *testing.T) {
	img := buildImage(false)
	img = img[:testOptOffset+112+14*8+4]
	require.ErrorIs(t, ValidateImage(img), ErrNotManaged)
}
