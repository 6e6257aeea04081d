package wavv

import (
	"encoding/binary"
	"errors"
	"reflect"
	"testing"
)

func TestDecodeSmplChunk(t *testing.T) {
	payload := make([]byte, smplHeaderSize+sampleLoopSize)
	copy(payload[0:4], []byte{0x01, 0x00, 0x00, 0x00})
	binary.LittleEndian.PutUint32(payload[8:12], 20833)  // sample period for 48 kHz
	binary.LittleEndian.PutUint32(payload[12:16], 60)    // MIDI unity note, middle C
	binary.LittleEndian.PutUint32(payload[28:32], 1)     // one loop
	copy(payload[36:40], "lp01")
	binary.LittleEndian.PutUint32(payload[44:48], 100)   // start
	binary.LittleEndian.PutUint32(payload[48:52], 4000)  // end
	binary.LittleEndian.PutUint32(payload[56:60], 3)     // play count

	si, err := DecodeSmplChunk(Chunk{ID: TagSmpl, Data: payload})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if si.SamplePeriod != 20833 || si.MIDIUnityNote != 60 {
		t.Fatalf("header mismatch: %+v", si)
	}

	want := SampleLoop{CuePointID: [4]byte{'l', 'p', '0', '1'}, Start: 100, End: 4000, PlayCount: 3}
	if len(si.Loops) != 1 || si.Loops[0] != want {
		t.Fatalf("loops mismatch:\ngot  %+v\nwant %+v", si.Loops, want)
	}
}

func TestDecodeSmplChunkRejectsOtherTags(t *testing.T) {
	_, err := DecodeSmplChunk(Chunk{ID: TagData, Data: make([]byte, smplHeaderSize)})
	if !errors.Is(err, ErrUnknownChunkID) {
		t.Fatalf("expected ErrUnknownChunkID, got %v", err)
	}
}

func TestDecodeSmplChunkTruncated(t *testing.T) {
	_, err := DecodeSmplChunk(Chunk{ID: TagSmpl, Data: make([]byte, smplHeaderSize-1)})
	if !errors.Is(err, ErrTruncatedChunk) {
		t.Fatalf("expected ErrTruncatedChunk, got %v", err)
	}
}

func TestDecodeSmplChunkOverstatedLoopCount(t *testing.T) {
	// a hostile loop count must fail instead of allocating
	payload := make([]byte, smplHeaderSize)
	binary.LittleEndian.PutUint32(payload[28:32], 0xffffffff)

	_, err := DecodeSmplChunk(Chunk{ID: TagSmpl, Data: payload})
	if !errors.Is(err, ErrTruncatedChunk) {
		t.Fatalf("expected ErrTruncatedChunk, got %v", err)
	}
}

func TestSmplChunkRoundTrip(t *testing.T) {
	want := &SamplerInfo{
		Manufacturer:  [4]byte{0x01, 0x00, 0x00, 0x13},
		SamplePeriod:  22675,
		MIDIUnityNote: 64,
		Loops: []SampleLoop{
			{CuePointID: [4]byte{'l', 'p', '0', '1'}, Type: 1, Start: 10, End: 20, PlayCount: 0},
			{CuePointID: [4]byte{'l', 'p', '0', '2'}, Start: 30, End: 90, Fraction: 0x80000000},
		},
	}

	got, err := DecodeSmplChunk(EncodeSmplChunk(want))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if !reflect.DeepEqual(got, want) {
		t.Fatalf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestWavSamplerInfo(t *testing.T) {
	w := FromSamples(Samples16{0, 0}, 48000, 1)

	si, err := w.SamplerInfo()
	if err != nil {
		t.Fatalf("sampler info: %v", err)
	}

	if si != nil {
		t.Fatalf("expected no sampler info, got %+v", si)
	}

	w.SetSamplerInfo(&SamplerInfo{SamplePeriod: 20833, MIDIUnityNote: 60})

	buf, err := w.ToBytes()
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	reread, err := FromBytes(buf)
	if err != nil {
		t.Fatalf("reparse: %v", err)
	}

	si, err = reread.SamplerInfo()
	if err != nil {
		t.Fatalf("sampler info after round trip: %v", err)
	}

	if si == nil || si.SamplePeriod != 20833 || si.MIDIUnityNote != 60 {
		t.Fatalf("sampler info lost in round trip: %+v", si)
	}

	reread.SetSamplerInfo(nil)

	if reread.AncillaryByID(TagSmpl) != nil {
		t.Fatal("smpl chunk not removed")
	}
}
