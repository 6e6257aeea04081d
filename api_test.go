package wavv

import (
	"reflect"
	"testing"
)

func TestAncillaryByID(t *testing.T) {
	w := FromSamples(Samples16{0}, 44100, 1)

	if c := w.AncillaryByID(TagSmpl); c != nil {
		t.Fatalf("expected nil for missing chunk, got %+v", c)
	}

	w.Ancillary = append(w.Ancillary,
		Chunk{ID: ChunkTag{'J', 'U', 'N', 'K'}, Data: []byte{1}},
		Chunk{ID: TagSmpl, Data: []byte{2}},
		Chunk{ID: TagSmpl, Data: []byte{3}},
	)

	c := w.AncillaryByID(TagSmpl)
	if c == nil || c.Data[0] != 2 {
		t.Fatalf("expected first smpl chunk, got %+v", c)
	}

	// the pointer aliases the document
	c.Data[0] = 9

	if w.Ancillary[1].Data[0] != 9 {
		t.Fatal("returned chunk does not alias the document")
	}
}

func TestReplaceAncillaryKeepsPosition(t *testing.T) {
	w := FromSamples(Samples16{0}, 44100, 1)
	w.Ancillary = []Chunk{
		{ID: TagSmpl, Data: []byte{1}, BeforeData: true},
		{ID: ChunkTag{'J', 'U', 'N', 'K'}, Data: []byte{2}},
		{ID: TagSmpl, Data: []byte{3}},
	}

	w.replaceAncillary(
		func(c Chunk) bool { return c.ID == TagSmpl },
		&Chunk{ID: TagSmpl, Data: []byte{7}},
	)

	want := []Chunk{
		{ID: TagSmpl, Data: []byte{7}, BeforeData: true},
		{ID: ChunkTag{'J', 'U', 'N', 'K'}, Data: []byte{2}},
	}
	if !reflect.DeepEqual(w.Ancillary, want) {
		t.Fatalf("ancillary mismatch:\ngot  %+v\nwant %+v", w.Ancillary, want)
	}
}

func TestWavClone(t *testing.T) {
	orig, err := FromBytes(canonicalWav)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	orig.SetMetadata(&Metadata{Artist: "artist"})

	clone := orig.Clone()

	if !reflect.DeepEqual(clone, orig) {
		t.Fatalf("clone differs:\ngot  %+v\nwant %+v", clone, orig)
	}

	clone.Samples.(Samples16)[0] = 99
	clone.Ancillary[0].Data[0] = 0xff

	if orig.Samples.(Samples16)[0] != 0 {
		t.Fatal("clone shares sample storage with the original")
	}

	if orig.Ancillary[0].Data[0] == 0xff {
		t.Fatal("clone shares chunk storage with the original")
	}
}

func TestWavCloneNil(t *testing.T) {
	var w *Wav
	if w.Clone() != nil {
		t.Fatal("expected nil clone of a nil document")
	}
}
