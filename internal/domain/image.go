package domain

import (
	"encoding/binary"
	"fmt"
)

// PE header constants, fixed by the image format.
const (
	dosMagic      = 0x5A4D // MZ
	ntSignature   = 0x4550 // PE\0\0
	pe32Magic     = 0x10B
	pe32PlusMagic = 0x20B

	charExecutable = 0x0002
	charDLL        = 0x2000

	subsystemNative = 1

	comDescriptorIndex = 14
)

// ValidateImage checks that a buffer is a well-formed, non-native,
// non-library executable carrying managed metadata. It runs before any
// hosting environment exists, so every failure is a plain sentinel.
func ValidateImage(image []byte) error {
	if len(image) < 0x40 || binary.LittleEndian.Uint16(image[0:2]) != dosMagic {
		return ErrInvalidImage
	}

	ntOffset := int(int32(binary.LittleEndian.Uint32(image[0x3C:0x40])))
	if ntOffset <= 0 || ntOffset+24 > len(image) {
		return ErrInvalidImage
	}
	if binary.LittleEndian.Uint32(image[ntOffset:ntOffset+4]) != ntSignature {
		return ErrInvalidImage
	}

	characteristics := binary.LittleEndian.Uint16(image[ntOffset+22 : ntOffset+24])
	if characteristics&charExecutable == 0 || characteristics&charDLL != 0 {
		return ErrNotExecutable
	}

	optOffset := ntOffset + 24
	if optOffset+70 > len(image) {
		return ErrInvalidImage
	}

	var dirOffset int
	switch binary.LittleEndian.Uint16(image[optOffset : optOffset+2]) {
	case pe32Magic:
		dirOffset = optOffset + 96
	case pe32PlusMagic:
		dirOffset = optOffset + 112
	default:
		return ErrInvalidImage
	}

	subsystem := binary.LittleEndian.Uint16(image[optOffset+68 : optOffset+70])
	if subsystem == subsystemNative {
		return ErrNotExecutable
	}

	comDir := dirOffset + comDescriptorIndex*8
	if comDir+8 > len(image) {
		return fmt.Errorf("%w: truncated data directories", ErrNotManaged)
	}
	va := binary.LittleEndian.Uint32(image[comDir : comDir+4])
	size := binary.LittleEndian.Uint32(image[comDir+4 : comDir+8])
	if va == 0 || size == 0 {
		return ErrNotManaged
	}

	return nil
}
