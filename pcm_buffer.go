package wavv

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-audio/audio"
)

const (
	maxPCMInt8Unsigned = 255
	scalePCMInt8       = 127.5
	scalePCMInt16      = 32768.0
	scalePCMInt24      = 8388608.0
	floatPCM8Center    = 127.5
	floatPCM8Scale     = 127.5
	maxPCMInt16        = 32767
	maxPCMInt24        = 8388607
)

var errNilBuffer = errors.New("can't convert a nil buffer")

// IntBuffer converts the document samples into a go-audio IntBuffer. 8-bit
// samples stay unsigned, wider depths stay signed, matching the wav encoding.
func (w *Wav) IntBuffer() *audio.IntBuffer {
	if w == nil || w.Samples == nil {
		return nil
	}

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: int(w.Format.NumChannels),
			SampleRate:  int(w.Format.SampleRate),
		},
		SourceBitDepth: int(w.Format.BitDepth),
		Data:           make([]int, w.Samples.Len()),
	}

	switch s := w.Samples.(type) {
	case Samples8:
		for i, v := range s {
			buf.Data[i] = int(v)
		}
	case Samples16:
		for i, v := range s {
			buf.Data[i] = int(v)
		}
	case Samples24:
		for i, v := range s {
			buf.Data[i] = int(v)
		}
	}

	return buf
}

// FromIntBuffer builds a document from a go-audio IntBuffer. The buffer's
// SourceBitDepth selects the sample representation; values are truncated to
// that width.
func FromIntBuffer(buf *audio.IntBuffer) (*Wav, error) {
	if buf == nil || buf.Format == nil {
		return nil, errNilBuffer
	}

	var samples Samples

	switch buf.SourceBitDepth {
	case 8:
		s := make(Samples8, len(buf.Data))
		for i, v := range buf.Data {
			s[i] = uint8(v)
		}

		samples = s
	case 16:
		s := make(Samples16, len(buf.Data))
		for i, v := range buf.Data {
			s[i] = int16(v)
		}

		samples = s
	case 24:
		s := make(Samples24, len(buf.Data))
		for i, v := range buf.Data {
			s[i] = int32(v)
		}

		samples = s
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, buf.SourceBitDepth)
	}

	return FromSamples(samples, uint32(buf.Format.SampleRate), uint16(buf.Format.NumChannels)), nil
}

// Float32Buffer converts the document samples into a normalized go-audio
// Float32Buffer with values in [-1, 1].
func (w *Wav) Float32Buffer() *audio.Float32Buffer {
	if w == nil || w.Samples == nil {
		return nil
	}

	buf := &audio.Float32Buffer{
		Format: &audio.Format{
			NumChannels: int(w.Format.NumChannels),
			SampleRate:  int(w.Format.SampleRate),
		},
		SourceBitDepth: int(w.Format.BitDepth),
		Data:           make([]float32, w.Samples.Len()),
	}

	switch s := w.Samples.(type) {
	case Samples8:
		for i, v := range s {
			buf.Data[i] = normalizePCMInt(int(v), 8)
		}
	case Samples16:
		for i, v := range s {
			buf.Data[i] = normalizePCMInt(int(v), 16)
		}
	case Samples24:
		for i, v := range s {
			buf.Data[i] = normalizePCMInt(int(v), 24)
		}
	}

	return buf
}

// FromFloat32Buffer quantizes a normalized float buffer into a document at
// the given bit depth. Out of range values are clamped.
func FromFloat32Buffer(buf *audio.Float32Buffer, bitDepth uint16) (*Wav, error) {
	if buf == nil || buf.Format == nil {
		return nil, errNilBuffer
	}

	var samples Samples

	switch bitDepth {
	case 8:
		s := make(Samples8, len(buf.Data))
		for i, v := range buf.Data {
			s[i] = float32ToPCMUint8(v)
		}

		samples = s
	case 16:
		s := make(Samples16, len(buf.Data))
		for i, v := range buf.Data {
			s[i] = int16(float32ToPCMInt32(v, 16))
		}

		samples = s
	case 24:
		s := make(Samples24, len(buf.Data))
		for i, v := range buf.Data {
			s[i] = float32ToPCMInt32(v, 24)
		}

		samples = s
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	return FromSamples(samples, uint32(buf.Format.SampleRate), uint16(buf.Format.NumChannels)), nil
}

func clampFloat32(value, min, max float32) float32 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}

func normalizePCMInt(sample int, bitDepth int) float32 {
	switch bitDepth {
	case 8:
		return float32((float64(sample) - floatPCM8Center) / scalePCMInt8)
	case 16:
		return float32(float64(sample) / scalePCMInt16)
	case 24:
		return float32(float64(sample) / scalePCMInt24)
	default:
		return 0
	}
}

func float32ToPCMUint8(value float32) uint8 {
	value = clampFloat32(value, -1, 1)

	scaled := int(math.Round(float64((value + 1.0) * floatPCM8Scale)))
	if scaled < 0 {
		return 0
	}

	if scaled > maxPCMInt8Unsigned {
		return maxPCMInt8Unsigned
	}

	return uint8(scaled)
}

func float32ToPCMInt32(value float32, bitDepth int) int32 {
	value = clampFloat32(value, -1, 1)

	switch bitDepth {
	case 16:
		sample := min(int64(math.Round(float64(value)*scalePCMInt16)), maxPCMInt16)

		if sample < -scalePCMInt16 {
			sample = -scalePCMInt16
		}

		return int32(sample)
	case 24:
		sample := min(int64(math.Round(float64(value)*scalePCMInt24)), maxPCMInt24)

		if sample < -scalePCMInt24 {
			sample = -scalePCMInt24
		}

		return int32(sample)
	default:
		return 0
	}
}
