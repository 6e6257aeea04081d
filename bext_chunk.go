package wavv

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"strings"
)

// TagBext identifies the broadcast extension chunk defined by EBU tech 3285.
var TagBext = ChunkTag{'b', 'e', 'x', 't'}

const (
	bextDescriptionLen         = 256
	bextOriginatorLen          = 32
	bextOriginatorReferenceLen = 32
	bextOriginationDateLen     = 10
	bextOriginationTimeLen     = 8
	bextUMIDLen                = 64
	bextReservedLen            = 190
)

// BroadcastExtension holds the bext chunk fields carried by broadcast wav
// files.
type BroadcastExtension struct {
	Description         string
	Originator          string
	OriginatorReference string
	OriginationDate     string
	OriginationTime     string
	TimeReference       uint64
	Version             uint16
	UMID                [bextUMIDLen]byte
	Reserved            []byte
	CodingHistory       string
}

// fixedFields walks a payload of fixed width fields. Reads past the end of
// the payload yield zero filled values, so short chunks written by sloppy
// tools still decode.
type fixedFields struct {
	buf []byte
	off int
}

func (r *fixedFields) take(n int) []byte {
	out := make([]byte, n)
	if r.off < len(r.buf) {
		end := min(r.off+n, len(r.buf))
		copy(out, r.buf[r.off:end])
	}

	r.off += n

	return out
}

func (r *fixedFields) str(n int) string {
	return strings.TrimRight(nullTermStr(r.take(n)), " ")
}

func (r *fixedFields) u16() uint16 {
	return binary.LittleEndian.Uint16(r.take(2))
}

func (r *fixedFields) u32() uint32 {
	return binary.LittleEndian.Uint32(r.take(4))
}

func (r *fixedFields) rest() []byte {
	if r.off >= len(r.buf) {
		return nil
	}

	return r.buf[r.off:]
}

func appendFixedString(dst []byte, s string, n int) []byte {
	raw := make([]byte, n)
	copy(raw, s)

	return append(dst, raw...)
}

// DecodeBextChunk decodes a bext chunk payload.
func DecodeBextChunk(c Chunk) (*BroadcastExtension, error) {
	if c.ID != TagBext {
		return nil, fmt.Errorf("%w: %q is not a bext chunk", ErrUnknownChunkID, c.ID)
	}

	r := &fixedFields{buf: c.Data}

	bext := &BroadcastExtension{}
	bext.Description = r.str(bextDescriptionLen)
	bext.Originator = r.str(bextOriginatorLen)
	bext.OriginatorReference = r.str(bextOriginatorReferenceLen)
	bext.OriginationDate = r.str(bextOriginationDateLen)
	bext.OriginationTime = r.str(bextOriginationTimeLen)

	timeRefLow := r.u32()
	timeRefHigh := r.u32()
	bext.TimeReference = uint64(timeRefHigh)<<32 | uint64(timeRefLow)
	bext.Version = r.u16()

	copy(bext.UMID[:], r.take(bextUMIDLen))
	bext.Reserved = r.take(bextReservedLen)
	bext.CodingHistory = string(bytes.TrimRight(r.rest(), "\x00"))

	return bext, nil
}

// EncodeBextChunk serializes the broadcast extension into a bext chunk.
func EncodeBextChunk(bext *BroadcastExtension) Chunk {
	data := make([]byte, 0, 602+len(bext.CodingHistory))

	data = appendFixedString(data, bext.Description, bextDescriptionLen)
	data = appendFixedString(data, bext.Originator, bextOriginatorLen)
	data = appendFixedString(data, bext.OriginatorReference, bextOriginatorReferenceLen)
	data = appendFixedString(data, bext.OriginationDate, bextOriginationDateLen)
	data = appendFixedString(data, bext.OriginationTime, bextOriginationTimeLen)

	data = binary.LittleEndian.AppendUint32(data, uint32(bext.TimeReference&0xffffffff))
	data = binary.LittleEndian.AppendUint32(data, uint32(bext.TimeReference>>32))
	data = binary.LittleEndian.AppendUint16(data, bext.Version)

	data = append(data, bext.UMID[:]...)

	reserved := make([]byte, bextReservedLen)
	copy(reserved, bext.Reserved)
	data = append(data, reserved...)

	if bext.CodingHistory != "" {
		data = append(data, bext.CodingHistory...)
	}

	return Chunk{ID: TagBext, Data: data}
}

// BroadcastExtension decodes the bext ancillary chunk. It returns nil without
// error when the document carries none.
func (w *Wav) BroadcastExtension() (*BroadcastExtension, error) {
	c := w.AncillaryByID(TagBext)
	if c == nil {
		return nil, nil
	}

	return DecodeBextChunk(*c)
}

// SetBroadcastExtension replaces the document's bext chunk in place, or
// appends one after the data chunk when none is present. Passing nil removes
// it.
func (w *Wav) SetBroadcastExtension(bext *BroadcastExtension) {
	if w == nil {
		return
	}

	var nc *Chunk

	if bext != nil {
		c := EncodeBextChunk(bext)
		nc = &c
	}

	w.replaceAncillary(func(c Chunk) bool { return c.ID == TagBext }, nc)
}
