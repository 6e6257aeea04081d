package wavv

import (
	"encoding/binary"
	"fmt"

	"github.com/go-audio/audio"
)

// Samples holds interleaved PCM samples at a fixed bit depth. The concrete
// types are Samples8, Samples16 and Samples24; the set is closed. Channel
// de-interleaving is left to the caller.
type Samples interface {
	// BitDepth returns the number of bits used per sample.
	BitDepth() uint16
	// Len returns the number of samples across all channels.
	Len() int

	appendTo(dst []byte) []byte
}

// Samples8 holds unsigned 8-bit samples.
type Samples8 []uint8

// Samples16 holds signed 16-bit samples.
type Samples16 []int16

// Samples24 holds 24-bit samples sign extended into int32 values in the
// range [-8388608, 8388607].
type Samples24 []int32

func (s Samples8) BitDepth() uint16  { return 8 }
func (s Samples16) BitDepth() uint16 { return 16 }
func (s Samples24) BitDepth() uint16 { return 24 }

func (s Samples8) Len() int  { return len(s) }
func (s Samples16) Len() int { return len(s) }
func (s Samples24) Len() int { return len(s) }

func (s Samples8) appendTo(dst []byte) []byte {
	return append(dst, s...)
}

func (s Samples16) appendTo(dst []byte) []byte {
	for _, v := range s {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(v))
	}

	return dst
}

func (s Samples24) appendTo(dst []byte) []byte {
	for _, v := range s {
		dst = append(dst, audio.Int32toInt24LEBytes(v)...)
	}

	return dst
}

// DecodeDataChunk parses a data chunk payload into samples, using the bit
// depth of the passed format to pick the sample width. Trailing bytes that do
// not form a complete sample are dropped.
func DecodeDataChunk(f Format, payload []byte) (Samples, error) {
	switch f.BitDepth {
	case 8:
		out := make(Samples8, len(payload))
		copy(out, payload)

		return out, nil
	case 16:
		out := make(Samples16, 0, len(payload)/2)
		for pos := 0; pos+2 <= len(payload); pos += 2 {
			out = append(out, int16(binary.LittleEndian.Uint16(payload[pos:pos+2])))
		}

		return out, nil
	case 24:
		out := make(Samples24, 0, len(payload)/3)
		for pos := 0; pos+3 <= len(payload); pos += 3 {
			out = append(out, int24LETo32(payload[pos:pos+3]))
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, f.BitDepth)
	}
}

// EncodeDataChunk serializes the samples into a data chunk payload. 24-bit
// samples are written as their low 3 bytes; values outside the 24-bit range
// lose their high byte.
func EncodeDataChunk(s Samples) []byte {
	return s.appendTo(make([]byte, 0, s.Len()*int(s.BitDepth())/8))
}

// int24LETo32 sign extends a 3-byte little endian sample into an int32.
func int24LETo32(b []byte) int32 {
	v := uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
	if b[2]&0x80 != 0 {
		v |= 0xff000000
	}

	return int32(v)
}
