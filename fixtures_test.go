package wavv

import (
	"bytes"
	"encoding/binary"
	"testing"
)

// canonicalWav is a complete stereo 16-bit 22050 Hz file with four frames.
var canonicalWav = []byte{
	0x52, 0x49, 0x46, 0x46, // RIFF
	0x34, 0x00, 0x00, 0x00, // chunk size
	0x57, 0x41, 0x56, 0x45, // WAVE
	0x66, 0x6d, 0x74, 0x20, // fmt_
	0x10, 0x00, 0x00, 0x00, // chunk size
	0x01, 0x00, // audio format
	0x02, 0x00, // num channels
	0x22, 0x56, 0x00, 0x00, // sample rate
	0x88, 0x58, 0x01, 0x00, // byte rate
	0x04, 0x00, // block align
	0x10, 0x00, // bits per sample
	0x64, 0x61, 0x74, 0x61, // data
	0x10, 0x00, 0x00, 0x00, // chunk size
	0x00, 0x00, 0x00, 0x00, // sample 1 L+R
	0x24, 0x17, 0x1e, 0xf3, // sample 2 L+R
	0x3c, 0x13, 0x3c, 0x14, // sample 3 L+R
	0x16, 0xf9, 0x18, 0xf9, // sample 4 L+R
}

// canonicalSamples is the decoded data chunk of canonicalWav.
var canonicalSamples = Samples16{0, 0, 5924, -3298, 4924, 5180, -1770, -1768}

type testChunk struct {
	id      string
	payload []byte
}

// buildWavBuffer assembles a RIFF/WAVE buffer from the passed chunks and
// back-patches the RIFF size field.
func buildWavBuffer(t *testing.T, chunks ...testChunk) []byte {
	t.Helper()

	var b bytes.Buffer
	b.WriteString("RIFF")

	err := binary.Write(&b, binary.LittleEndian, uint32(0))
	if err != nil {
		t.Fatalf("write riff size placeholder: %v", err)
	}

	b.WriteString("WAVE")

	for _, c := range chunks {
		writeTestChunk(t, &b, c.id, c.payload)
	}

	out := b.Bytes()
	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))

	return out
}

func writeTestChunk(t *testing.T, b *bytes.Buffer, id string, payload []byte) {
	t.Helper()

	if len(id) != 4 {
		t.Fatalf("chunk id must be 4 bytes, got %q", id)
	}

	b.WriteString(id)

	err := binary.Write(b, binary.LittleEndian, uint32(len(payload)))
	if err != nil {
		t.Fatalf("write chunk size for %q: %v", id, err)
	}

	if _, err := b.Write(payload); err != nil {
		t.Fatalf("write chunk payload for %q: %v", id, err)
	}

	if len(payload)%2 == 1 {
		err := b.WriteByte(0)
		if err != nil {
			t.Fatalf("write chunk pad for %q: %v", id, err)
		}
	}
}

// testFmtPayload builds a 16-byte PCM fmt chunk payload. Byte rate and block
// align are filled with the derived values.
func testFmtPayload(t *testing.T, numChannels uint16, sampleRate uint32, bitDepth uint16) []byte {
	t.Helper()

	payload := make([]byte, 16)
	binary.LittleEndian.PutUint16(payload[0:2], wavFormatPCM)
	binary.LittleEndian.PutUint16(payload[2:4], numChannels)
	binary.LittleEndian.PutUint32(payload[4:8], sampleRate)
	binary.LittleEndian.PutUint32(payload[8:12], sampleRate*uint32(bitDepth)*uint32(numChannels)/8)
	binary.LittleEndian.PutUint16(payload[12:14], numChannels*bitDepth/8)
	binary.LittleEndian.PutUint16(payload[14:16], bitDepth)

	return payload
}
