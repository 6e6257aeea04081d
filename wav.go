package wavv

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Wav is a parsed wav file: the decoded fmt and data chunks plus every other
// top level chunk preserved verbatim.
type Wav struct {
	Format  Format
	Samples Samples
	// Ancillary holds the non-core chunks in their original relative order.
	Ancillary []Chunk
}

// FromBytes parses a complete RIFF/WAVE buffer into a document.
//
// The first fmt chunk and the first data chunk are decoded; every other top
// level chunk, known or not, is preserved untouched in Ancillary with its
// position relative to the data chunk recorded. The input is only read and
// never retained, so the caller may reuse the buffer immediately.
func FromBytes(buf []byte) (*Wav, error) {
	chunks, err := ParseChunks(buf)
	if err != nil {
		return nil, err
	}

	w := &Wav{}

	var fmtChunk, dataChunk *Chunk

	for i := range chunks {
		switch {
		case chunks[i].ID == TagFmt && fmtChunk == nil:
			fmtChunk = &chunks[i]
		case chunks[i].ID == TagData && dataChunk == nil:
			dataChunk = &chunks[i]
		default:
			chunks[i].BeforeData = dataChunk == nil
			w.Ancillary = append(w.Ancillary, chunks[i])
		}
	}

	if fmtChunk == nil {
		return nil, ErrNoFmtChunk
	}

	if dataChunk == nil {
		return nil, ErrNoDataChunk
	}

	w.Format, err = DecodeFmtChunk(fmtChunk.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode fmt chunk: %w", err)
	}

	w.Samples, err = DecodeDataChunk(w.Format, dataChunk.Data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode data chunk: %w", err)
	}

	return w, nil
}

// FromSamples builds a document for writing from interleaved samples. The
// bit depth is taken from the sample type and the ancillary set starts empty.
func FromSamples(samples Samples, sampleRate uint32, numChannels uint16) *Wav {
	return &Wav{
		Format: Format{
			SampleRate:  sampleRate,
			NumChannels: numChannels,
			BitDepth:    samples.BitDepth(),
		},
		Samples: samples,
	}
}

// ToBytes serializes the document into a RIFF/WAVE buffer: the RIFF header,
// the fmt chunk, any ancillary chunks parsed from before the data chunk, the
// data chunk, then the remaining ancillary chunks. The RIFF size field is
// back-patched once the total length is known.
//
// Ancillary chunks keep their side of the data chunk, so a FromBytes/ToBytes
// round trip of a well formed buffer whose fmt chunk comes first reproduces
// it byte for byte.
func (w *Wav) ToBytes() ([]byte, error) {
	dataPayload := EncodeDataChunk(w.Samples)

	out := make([]byte, 0, w.encodedSizeHint(len(dataPayload)))
	out = append(out, TagRiff[:]...)
	out = binary.LittleEndian.AppendUint32(out, 0)
	out = append(out, TagWave[:]...)

	out, err := frameChunk(out, Chunk{ID: TagFmt, Data: EncodeFmtChunk(w.Format)})
	if err != nil {
		return nil, err
	}

	out, err = w.appendAncillary(out, true)
	if err != nil {
		return nil, err
	}

	out, err = frameChunk(out, Chunk{ID: TagData, Data: dataPayload})
	if err != nil {
		return nil, err
	}

	out, err = w.appendAncillary(out, false)
	if err != nil {
		return nil, err
	}

	if uint64(len(out)-8) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: document is %d bytes", ErrChunkTooLarge, len(out))
	}

	binary.LittleEndian.PutUint32(out[4:8], uint32(len(out)-8))

	return out, nil
}

func (w *Wav) appendAncillary(dst []byte, beforeData bool) ([]byte, error) {
	for _, c := range w.Ancillary {
		if c.BeforeData != beforeData {
			continue
		}

		var err error

		dst, err = frameChunk(dst, c)
		if err != nil {
			return nil, err
		}
	}

	return dst, nil
}

func (w *Wav) encodedSizeHint(dataLen int) int {
	size := 12 + 8 + fmtChunkSize + 8 + dataLen + dataLen%2
	for _, c := range w.Ancillary {
		size += 8 + len(c.Data) + len(c.Data)%2
	}

	return size
}

// NumFrames returns the number of sample frames in the document.
func (w *Wav) NumFrames() int {
	if w == nil || w.Samples == nil || w.Format.NumChannels == 0 {
		return 0
	}

	return w.Samples.Len() / int(w.Format.NumChannels)
}

// Duration returns the play time of the document.
func (w *Wav) Duration() time.Duration {
	if w == nil {
		return 0
	}

	return time.Duration(w.NumFrames()) * sampleDuration(int(w.Format.SampleRate))
}

func sampleDuration(sampleRate int) time.Duration {
	if sampleRate == 0 {
		return 0
	}

	return time.Second / time.Duration(math.Abs(float64(sampleRate)))
}

func nullTermStr(b []byte) string {
	return string(b[:clen(b)])
}

func clen(num []byte) int {
	for i := range num {
		if num[i] == 0 {
			return i
		}
	}

	return len(num)
}
