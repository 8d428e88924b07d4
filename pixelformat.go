package basalt

import "encoding/binary"

// PixelFormat is a 32-bit native pixel format code. For ordinary formats the
// code packs the pixel type, channel order, bit layout, and pixel size into
// nibble and byte fields; fourcc formats are industry-assigned four character
// codes that opt out of that scheme entirely.
//
// The accessor methods decode the packed fields. They are pure and total:
// any unrecognized sub-code decodes to the matching None/Unknown value
// instead of failing, so codes introduced by newer native versions pass
// through this layer unharmed.
type PixelFormat uint32

// Ordinary formats. Bit fields, high to low: non-fourcc marker (1 in the top
// nibble), pixel type, channel order, packed layout, bits per pixel, bytes
// per pixel.
const (
	PixelFormatUnknown   PixelFormat = 0
	PixelFormatIndex1LSB PixelFormat = 1<<28 | 1<<24 | 1<<20 | 0<<16 | 1<<8 | 0
	PixelFormatIndex1MSB PixelFormat = 1<<28 | 1<<24 | 2<<20 | 0<<16 | 1<<8 | 0
	PixelFormatIndex4LSB PixelFormat = 1<<28 | 2<<24 | 1<<20 | 0<<16 | 4<<8 | 0
	PixelFormatIndex4MSB PixelFormat = 1<<28 | 2<<24 | 2<<20 | 0<<16 | 4<<8 | 0
	PixelFormatIndex8    PixelFormat = 1<<28 | 3<<24 | 0<<20 | 0<<16 | 8<<8 | 1

	PixelFormatRGB332 PixelFormat = 1<<28 | 4<<24 | 1<<20 | 1<<16 | 8<<8 | 1

	PixelFormatRGB444   PixelFormat = 1<<28 | 5<<24 | 1<<20 | 2<<16 | 12<<8 | 2
	PixelFormatRGB555   PixelFormat = 1<<28 | 5<<24 | 1<<20 | 3<<16 | 15<<8 | 2
	PixelFormatBGR555   PixelFormat = 1<<28 | 5<<24 | 5<<20 | 3<<16 | 15<<8 | 2
	PixelFormatARGB4444 PixelFormat = 1<<28 | 5<<24 | 3<<20 | 2<<16 | 16<<8 | 2
	PixelFormatRGBA4444 PixelFormat = 1<<28 | 5<<24 | 4<<20 | 2<<16 | 16<<8 | 2
	PixelFormatABGR4444 PixelFormat = 1<<28 | 5<<24 | 7<<20 | 2<<16 | 16<<8 | 2
	PixelFormatBGRA4444 PixelFormat = 1<<28 | 5<<24 | 8<<20 | 2<<16 | 16<<8 | 2
	PixelFormatARGB1555 PixelFormat = 1<<28 | 5<<24 | 3<<20 | 3<<16 | 16<<8 | 2
	PixelFormatRGBA5551 PixelFormat = 1<<28 | 5<<24 | 4<<20 | 4<<16 | 16<<8 | 2
	PixelFormatABGR1555 PixelFormat = 1<<28 | 5<<24 | 7<<20 | 3<<16 | 16<<8 | 2
	PixelFormatBGRA5551 PixelFormat = 1<<28 | 5<<24 | 8<<20 | 4<<16 | 16<<8 | 2
	PixelFormatRGB565   PixelFormat = 1<<28 | 5<<24 | 1<<20 | 5<<16 | 16<<8 | 2
	PixelFormatBGR565   PixelFormat = 1<<28 | 5<<24 | 5<<20 | 5<<16 | 16<<8 | 2

	PixelFormatRGB24 PixelFormat = 1<<28 | 7<<24 | 1<<20 | 0<<16 | 24<<8 | 3
	PixelFormatBGR24 PixelFormat = 1<<28 | 7<<24 | 4<<20 | 0<<16 | 24<<8 | 3

	PixelFormatRGB888      PixelFormat = 1<<28 | 6<<24 | 1<<20 | 6<<16 | 24<<8 | 4
	PixelFormatRGBX8888    PixelFormat = 1<<28 | 6<<24 | 2<<20 | 6<<16 | 24<<8 | 4
	PixelFormatBGR888      PixelFormat = 1<<28 | 6<<24 | 5<<20 | 6<<16 | 24<<8 | 4
	PixelFormatBGRX8888    PixelFormat = 1<<28 | 6<<24 | 6<<20 | 6<<16 | 24<<8 | 4
	PixelFormatARGB8888    PixelFormat = 1<<28 | 6<<24 | 3<<20 | 6<<16 | 32<<8 | 4
	PixelFormatRGBA8888    PixelFormat = 1<<28 | 6<<24 | 4<<20 | 6<<16 | 32<<8 | 4
	PixelFormatABGR8888    PixelFormat = 1<<28 | 6<<24 | 7<<20 | 6<<16 | 32<<8 | 4
	PixelFormatBGRA8888    PixelFormat = 1<<28 | 6<<24 | 8<<20 | 6<<16 | 32<<8 | 4
	PixelFormatARGB2101010 PixelFormat = 1<<28 | 6<<24 | 3<<20 | 7<<16 | 32<<8 | 4
)

// Fourcc formats, mostly planar or interleaved YUV.
const (
	PixelFormatYV12        PixelFormat = 'Y' | 'V'<<8 | '1'<<16 | '2'<<24
	PixelFormatIYUV        PixelFormat = 'I' | 'Y'<<8 | 'U'<<16 | 'V'<<24
	PixelFormatYUY2        PixelFormat = 'Y' | 'U'<<8 | 'Y'<<16 | '2'<<24
	PixelFormatUYVY        PixelFormat = 'U' | 'Y'<<8 | 'V'<<16 | 'Y'<<24
	PixelFormatYVYU        PixelFormat = 'Y' | 'V'<<8 | 'Y'<<16 | 'U'<<24
	PixelFormatNV12        PixelFormat = 'N' | 'V'<<8 | '1'<<16 | '2'<<24
	PixelFormatNV21        PixelFormat = 'N' | 'V'<<8 | '2'<<16 | '1'<<24
	PixelFormatExternalOES PixelFormat = 'O' | 'E'<<8 | 'S'<<16 | ' '<<24
)

// Byte-order aliases: the 32-bit format whose bytes in memory are R, G, B, A
// (and the three permutations). Which packed format that is depends on the
// machine's endianness, so these are assigned at package init rather than
// declared const.
var (
	PixelFormatRGBA32 PixelFormat
	PixelFormatARGB32 PixelFormat
	PixelFormatBGRA32 PixelFormat
	PixelFormatABGR32 PixelFormat
)

var isLittleEndian = binary.NativeEndian.Uint16([]byte{0x34, 0x12}) == 0x1234

func init() {
	if isLittleEndian {
		PixelFormatRGBA32 = PixelFormatABGR8888
		PixelFormatARGB32 = PixelFormatBGRA8888
		PixelFormatBGRA32 = PixelFormatARGB8888
		PixelFormatABGR32 = PixelFormatRGBA8888
	} else {
		PixelFormatRGBA32 = PixelFormatRGBA8888
		PixelFormatARGB32 = PixelFormatARGB8888
		PixelFormatBGRA32 = PixelFormatBGRA8888
		PixelFormatABGR32 = PixelFormatABGR8888
	}
}

// PixelType is the storage family of an ordinary pixel format.
type PixelType uint8

const (
	PixelTypeUnknown  PixelType = iota // unrecognized type nibble
	PixelTypeIndex1                    // 1-bit palette index
	PixelTypeIndex4                    // 4-bit palette index
	PixelTypeIndex8                    // 8-bit palette index
	PixelTypePacked8                   // channels packed in one byte
	PixelTypePacked16                  // channels packed in one 16-bit word
	PixelTypePacked32                  // channels packed in one 32-bit word
	PixelTypeArrayU8                   // channel per byte, in memory order
	PixelTypeArrayU16                  // channel per 16-bit word
	PixelTypeArrayU32                  // channel per 32-bit word
	PixelTypeArrayF16                  // channel per half float
	PixelTypeArrayF32                  // channel per float
)

// PixelOrder is the channel ordering of a pixel format. The concrete type is
// one of [BitmapOrder], [PackedOrder], or [ArrayOrder] depending on the
// format's pixel type; formats outside the packed and array families decode
// as a BitmapOrder, matching the native scheme.
type PixelOrder interface {
	isPixelOrder()
}

// BitmapOrder is the bit ordering of an indexed format.
type BitmapOrder uint8

const (
	BitmapOrderNone BitmapOrder = iota // no or unrecognized ordering
	BitmapOrder4321                    // high bit is the leftmost pixel
	BitmapOrder1234                    // low bit is the leftmost pixel
)

// PackedOrder is the channel ordering of a packed format, most significant
// channel first. X marks padding bits with no channel.
type PackedOrder uint8

const (
	PackedOrderNone PackedOrder = iota
	PackedOrderXRGB
	PackedOrderRGBX
	PackedOrderARGB
	PackedOrderRGBA
	PackedOrderXBGR
	PackedOrderBGRX
	PackedOrderABGR
	PackedOrderBGRA
)

// ArrayOrder is the channel ordering of an array format, lowest memory
// address first.
type ArrayOrder uint8

const (
	ArrayOrderNone ArrayOrder = iota
	ArrayOrderRGB
	ArrayOrderRGBA
	ArrayOrderARGB
	ArrayOrderBGR
	ArrayOrderBGRA
	ArrayOrderABGR
)

func (BitmapOrder) isPixelOrder() {}
func (PackedOrder) isPixelOrder() {}
func (ArrayOrder) isPixelOrder()  {}

// PackedLayout is the bit-count pattern of a packed format's channels.
// Meaningless for non-packed formats.
type PackedLayout uint8

const (
	PackedLayoutNone    PackedLayout = iota // no or unrecognized layout
	PackedLayout332                         // 3+3+2 bits
	PackedLayout4444                        // 4 bits per channel
	PackedLayout1555                        // 1 alpha or padding bit, then 5+5+5
	PackedLayout5551                        // 5+5+5, then 1 alpha or padding bit
	PackedLayout565                         // 5+6+5 bits
	PackedLayout8888                        // 8 bits per channel
	PackedLayout2101010                     // 2 bits, then 10 per channel
	PackedLayout1010102                     // 10 per channel, then 2 bits
)

// IsFourCC reports whether the code is a four character code rather than an
// ordinary bit-packed format.
func (f PixelFormat) IsFourCC() bool {
	return f > 0 && (f>>28)&0x0F != 1
}

// Type returns the format's pixel type nibble. The nibble carries no meaning
// for fourcc codes; use [PixelFormat.IsFourCC] first when that matters.
func (f PixelFormat) Type() PixelType {
	t := PixelType(f >> 24 & 0x0F)
	if t > PixelTypeArrayF32 {
		return PixelTypeUnknown
	}
	return t
}

// Order returns the format's channel ordering: a [PackedOrder] for packed
// formats, an [ArrayOrder] for array formats, and a [BitmapOrder] for
// everything else. Unrecognized order nibbles decode to the family's None
// value.
func (f PixelFormat) Order() PixelOrder {
	bits := f >> 20 & 0x0F
	switch {
	case f.IsPacked():
		if bits > PixelFormat(PackedOrderBGRA) {
			return PackedOrderNone
		}
		return PackedOrder(bits)
	case f.IsArray():
		if bits > PixelFormat(ArrayOrderABGR) {
			return ArrayOrderNone
		}
		return ArrayOrder(bits)
	default:
		if bits > PixelFormat(BitmapOrder1234) {
			return BitmapOrderNone
		}
		return BitmapOrder(bits)
	}
}

// Layout returns the packed bit layout. Unrecognized layout nibbles decode
// to [PackedLayoutNone].
func (f PixelFormat) Layout() PackedLayout {
	l := PackedLayout(f >> 16 & 0x0F)
	if l > PackedLayout1010102 {
		return PackedLayoutNone
	}
	return l
}

// BitsPerPixel returns the bits of color information per pixel. The field
// carries no meaning for fourcc codes.
func (f PixelFormat) BitsPerPixel() uint8 {
	return uint8(f >> 8 & 0xFF)
}

// BytesPerPixel returns the bytes used per pixel. Formats under 8 bits per
// pixel report 0. For fourcc codes the interleaved YUY2, UYVY, and YVYU
// formats report 2 and all others report 1.
func (f PixelFormat) BytesPerPixel() uint8 {
	if f.IsFourCC() {
		switch f {
		case PixelFormatYUY2, PixelFormatUYVY, PixelFormatYVYU:
			return 2
		}
		return 1
	}
	return uint8(f & 0xFF)
}

// IsIndexed reports whether the format stores palette indexes. Always false
// for fourcc codes.
func (f PixelFormat) IsIndexed() bool {
	if f.IsFourCC() {
		return false
	}
	switch f.Type() {
	case PixelTypeIndex1, PixelTypeIndex4, PixelTypeIndex8:
		return true
	}
	return false
}

// IsPacked reports whether the format packs its channels into a single
// machine word. Always false for fourcc codes.
func (f PixelFormat) IsPacked() bool {
	if f.IsFourCC() {
		return false
	}
	switch f.Type() {
	case PixelTypePacked8, PixelTypePacked16, PixelTypePacked32:
		return true
	}
	return false
}

// IsArray reports whether the format stores channels as an array in memory
// order. Always false for fourcc codes.
func (f PixelFormat) IsArray() bool {
	if f.IsFourCC() {
		return false
	}
	switch f.Type() {
	case PixelTypeArrayU8, PixelTypeArrayU16, PixelTypeArrayU32,
		PixelTypeArrayF16, PixelTypeArrayF32:
		return true
	}
	return false
}

// IsAlpha reports whether the format carries an alpha channel.
func (f PixelFormat) IsAlpha() bool {
	switch f.Order() {
	case PackedOrderARGB, PackedOrderRGBA, PackedOrderABGR, PackedOrderBGRA:
		return true
	case ArrayOrderARGB, ArrayOrderRGBA, ArrayOrderABGR, ArrayOrderBGRA:
		return true
	}
	return false
}
