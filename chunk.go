package wavv

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/go-audio/riff"
)

// ChunkTag is the 4-byte identifier of a RIFF chunk. Comparison is plain
// array equality, so any 4 bytes form a valid tag; Known reports whether the
// tag is one this package interprets.
type ChunkTag [4]byte

var (
	// TagRiff identifies the root RIFF record.
	TagRiff = ChunkTag(riff.RiffID)
	// TagWave is the form type that follows the RIFF header in wav files.
	TagWave = ChunkTag(riff.WavFormatID)
	// TagFmt identifies the mandatory fmt chunk.
	TagFmt = ChunkTag(riff.FmtID)
	// TagData identifies the mandatory data chunk.
	TagData = ChunkTag(riff.DataFormatID)
	// TagList identifies a LIST container chunk.
	TagList = ChunkTag{'L', 'I', 'S', 'T'}
	// TagInfo is the LIST type for INFO metadata entries.
	TagInfo = ChunkTag{'I', 'N', 'F', 'O'}
)

// Known reports whether the tag belongs to the set this package interprets.
func (t ChunkTag) Known() bool {
	switch t {
	case TagRiff, TagWave, TagFmt, TagData, TagList, TagInfo:
		return true
	default:
		return false
	}
}

// String implements the Stringer interface.
func (t ChunkTag) String() string {
	return string(t[:])
}

// Chunk is a single RIFF record body. The 8-byte tag+size header is not
// retained; it is reconstructed on encode.
type Chunk struct {
	ID   ChunkTag
	Data []byte
	// BeforeData indicates if this chunk appeared before the data chunk.
	BeforeData bool
}

// Clone returns a deep copy of the chunk.
func (c Chunk) Clone() Chunk {
	out := c
	out.Data = append([]byte(nil), c.Data...)

	return out
}

// ParseChunks splits a RIFF/WAVE buffer into its top level chunks.
//
// The buffer must start with a RIFF record whose payload begins with the
// WAVE form type; the rest of that payload is tokenized into sibling chunks.
// Payload bytes are copied, so the input may be discarded afterwards. Reads
// never run past the buffer: malformed sizes yield ErrTruncatedChunk instead.
func ParseChunks(buf []byte) ([]Chunk, error) {
	root, _, err := readChunk(buf)
	if err != nil {
		return nil, err
	}

	if root.ID != TagRiff {
		return nil, fmt.Errorf("%w: buffer starts with %q", ErrNoRiffChunk, root.ID)
	}

	if len(root.Data) < 4 {
		return nil, fmt.Errorf("%w: RIFF payload is %d bytes, need 4 for the form type", ErrTruncatedChunk, len(root.Data))
	}

	if ChunkTag(root.Data[0:4]) != TagWave {
		return nil, fmt.Errorf("%w: RIFF form type is %q", ErrNoWaveTag, root.Data[0:4])
	}

	var chunks []Chunk

	rest := root.Data[4:]
	for len(rest) > 0 {
		chunk, n, err := readChunk(rest)
		if err != nil {
			return nil, err
		}

		chunks = append(chunks, chunk)
		rest = rest[n:]
	}

	return chunks, nil
}

// readChunk decodes one {tag}{size}{payload} record from the front of buf.
// The returned count includes the pad byte that follows an odd-sized payload;
// the pad byte itself is not part of the payload.
func readChunk(buf []byte) (Chunk, int, error) {
	if len(buf) < 8 {
		return Chunk{}, 0, fmt.Errorf("%w: %d bytes left, need 8 for a chunk header", ErrTruncatedChunk, len(buf))
	}

	id := ChunkTag(buf[0:4])
	size := binary.LittleEndian.Uint32(buf[4:8])

	end := 8 + int(size)
	if end > len(buf) {
		return Chunk{}, 0, fmt.Errorf("%w: chunk %q declares %d payload bytes, %d available", ErrTruncatedChunk, id, size, len(buf)-8)
	}

	consumed := end
	if size%2 == 1 && consumed < len(buf) {
		// word alignment pad byte
		consumed++
	}

	return Chunk{ID: id, Data: append([]byte(nil), buf[8:end]...)}, consumed, nil
}

// frameChunk appends the framed chunk to dst: tag, little endian size,
// payload, and a zero pad byte when the payload length is odd. The pad byte
// is not counted in the declared size.
func frameChunk(dst []byte, c Chunk) ([]byte, error) {
	if uint64(len(c.Data)) > math.MaxUint32 {
		return nil, fmt.Errorf("%w: chunk %q payload is %d bytes", ErrChunkTooLarge, c.ID, len(c.Data))
	}

	dst = append(dst, c.ID[:]...)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(c.Data)))
	dst = append(dst, c.Data...)

	if len(c.Data)%2 == 1 {
		dst = append(dst, 0)
	}

	return dst, nil
}
