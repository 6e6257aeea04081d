package wavv

import (
	"encoding/binary"
	"fmt"
)

// smpl chunk is documented here:
// https://sites.google.com/site/musicgapi/technical-documents/wav-file-format#smpl

// TagSmpl identifies the sampler chunk.
var TagSmpl = ChunkTag{'s', 'm', 'p', 'l'}

const (
	smplHeaderSize = 36
	sampleLoopSize = 24
)

// SamplerInfo carries the sampler playback parameters of a smpl chunk.
type SamplerInfo struct {
	Manufacturer      [4]byte
	Product           [4]byte
	SamplePeriod      uint32
	MIDIUnityNote     uint32
	MIDIPitchFraction uint32
	SMPTEFormat       uint32
	SMPTEOffset       uint32
	Loops             []SampleLoop
}

// SampleLoop describes one loop region within the sample data.
type SampleLoop struct {
	CuePointID [4]byte
	Type       uint32
	Start      uint32
	End        uint32
	Fraction   uint32
	PlayCount  uint32
}

// DecodeSmplChunk decodes a smpl chunk payload. The loop count is validated
// against the payload length before any loop storage is allocated.
func DecodeSmplChunk(c Chunk) (*SamplerInfo, error) {
	if c.ID != TagSmpl {
		return nil, fmt.Errorf("%w: %q is not a smpl chunk", ErrUnknownChunkID, c.ID)
	}

	if len(c.Data) < smplHeaderSize {
		return nil, fmt.Errorf("%w: smpl payload is %d bytes, need %d", ErrTruncatedChunk, len(c.Data), smplHeaderSize)
	}

	si := &SamplerInfo{}
	copy(si.Manufacturer[:], c.Data[0:4])
	copy(si.Product[:], c.Data[4:8])
	si.SamplePeriod = binary.LittleEndian.Uint32(c.Data[8:12])
	si.MIDIUnityNote = binary.LittleEndian.Uint32(c.Data[12:16])
	si.MIDIPitchFraction = binary.LittleEndian.Uint32(c.Data[16:20])
	si.SMPTEFormat = binary.LittleEndian.Uint32(c.Data[20:24])
	si.SMPTEOffset = binary.LittleEndian.Uint32(c.Data[24:28])

	// c.Data[32:36] holds the trailing sampler data length and is not kept
	numLoops := binary.LittleEndian.Uint32(c.Data[28:32])

	rest := c.Data[smplHeaderSize:]
	if uint64(len(rest)) < uint64(numLoops)*sampleLoopSize {
		return nil, fmt.Errorf("%w: smpl chunk declares %d loops in %d bytes", ErrTruncatedChunk, numLoops, len(rest))
	}

	if numLoops > 0 {
		si.Loops = make([]SampleLoop, numLoops)
		for i := range si.Loops {
			rec := rest[i*sampleLoopSize:]
			copy(si.Loops[i].CuePointID[:], rec[0:4])
			si.Loops[i].Type = binary.LittleEndian.Uint32(rec[4:8])
			si.Loops[i].Start = binary.LittleEndian.Uint32(rec[8:12])
			si.Loops[i].End = binary.LittleEndian.Uint32(rec[12:16])
			si.Loops[i].Fraction = binary.LittleEndian.Uint32(rec[16:20])
			si.Loops[i].PlayCount = binary.LittleEndian.Uint32(rec[20:24])
		}
	}

	return si, nil
}

// EncodeSmplChunk serializes the sampler parameters into a smpl chunk.
func EncodeSmplChunk(si *SamplerInfo) Chunk {
	data := make([]byte, smplHeaderSize, smplHeaderSize+len(si.Loops)*sampleLoopSize)
	copy(data[0:4], si.Manufacturer[:])
	copy(data[4:8], si.Product[:])
	binary.LittleEndian.PutUint32(data[8:12], si.SamplePeriod)
	binary.LittleEndian.PutUint32(data[12:16], si.MIDIUnityNote)
	binary.LittleEndian.PutUint32(data[16:20], si.MIDIPitchFraction)
	binary.LittleEndian.PutUint32(data[20:24], si.SMPTEFormat)
	binary.LittleEndian.PutUint32(data[24:28], si.SMPTEOffset)
	binary.LittleEndian.PutUint32(data[28:32], uint32(len(si.Loops)))
	// data[32:36] stays zero: no trailing sampler data is written

	for _, l := range si.Loops {
		data = append(data, l.CuePointID[:]...)
		data = binary.LittleEndian.AppendUint32(data, l.Type)
		data = binary.LittleEndian.AppendUint32(data, l.Start)
		data = binary.LittleEndian.AppendUint32(data, l.End)
		data = binary.LittleEndian.AppendUint32(data, l.Fraction)
		data = binary.LittleEndian.AppendUint32(data, l.PlayCount)
	}

	return Chunk{ID: TagSmpl, Data: data}
}

// SamplerInfo decodes the smpl ancillary chunk. It returns nil without error
// when the document carries none.
func (w *Wav) SamplerInfo() (*SamplerInfo, error) {
	c := w.AncillaryByID(TagSmpl)
	if c == nil {
		return nil, nil
	}

	return DecodeSmplChunk(*c)
}

// SetSamplerInfo replaces the document's smpl chunk in place, or appends one
// after the data chunk when none is present. Passing nil removes it.
func (w *Wav) SetSamplerInfo(si *SamplerInfo) {
	if w == nil {
		return
	}

	var nc *Chunk

	if si != nil {
		c := EncodeSmplChunk(si)
		nc = &c
	}

	w.replaceAncillary(func(c Chunk) bool { return c.ID == TagSmpl }, nc)
}
