package wavv

import (
	"encoding/binary"
	"fmt"
)

const (
	wavFormatPCM = 1
	fmtChunkSize = 16
)

// Format describes the PCM layout carried by the fmt chunk.
type Format struct {
	// SampleRate in Hz, typical values are 44100, 48000 or 96000.
	SampleRate uint32
	// NumChannels in the sample data; channels are interleaved.
	NumChannels uint16
	// BitDepth of each sample, one of 8, 16 or 24.
	BitDepth uint16
}

// DecodeFmtChunk parses a fmt chunk payload. Only linear PCM is supported;
// any other audio format tag is an error. Byte rate and block align are
// derived fields and are ignored on read.
func DecodeFmtChunk(payload []byte) (Format, error) {
	if len(payload) < fmtChunkSize {
		return Format{}, fmt.Errorf("%w: fmt chunk payload is %d bytes, need %d", ErrTruncatedChunk, len(payload), fmtChunkSize)
	}

	audioFormat := binary.LittleEndian.Uint16(payload[0:2])
	if audioFormat != wavFormatPCM {
		return Format{}, fmt.Errorf("%w: %d", ErrUnsupportedFormat, audioFormat)
	}

	return Format{
		NumChannels: binary.LittleEndian.Uint16(payload[2:4]),
		SampleRate:  binary.LittleEndian.Uint32(payload[4:8]),
		BitDepth:    binary.LittleEndian.Uint16(payload[14:16]),
	}, nil
}

// EncodeFmtChunk serializes the format into a 16-byte fmt chunk payload.
// Byte rate and block align are recomputed from the other fields, so the
// emitted chunk is internally consistent even for hand-built formats.
func EncodeFmtChunk(f Format) []byte {
	byteRate := f.SampleRate * uint32(f.BitDepth) * uint32(f.NumChannels) / 8
	blockAlign := f.NumChannels * f.BitDepth / 8

	payload := make([]byte, fmtChunkSize)
	binary.LittleEndian.PutUint16(payload[0:2], wavFormatPCM)
	binary.LittleEndian.PutUint16(payload[2:4], f.NumChannels)
	binary.LittleEndian.PutUint32(payload[4:8], f.SampleRate)
	binary.LittleEndian.PutUint32(payload[8:12], byteRate)
	binary.LittleEndian.PutUint16(payload[12:14], blockAlign)
	binary.LittleEndian.PutUint16(payload[14:16], f.BitDepth)

	return payload
}
