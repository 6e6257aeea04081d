package wavv

// AncillaryByID returns a pointer to the first ancillary chunk with the given
// tag, or nil when the document carries none. The pointer aliases the
// document, so edits through it stick.
func (w *Wav) AncillaryByID(tag ChunkTag) *Chunk {
	if w == nil {
		return nil
	}

	for i := range w.Ancillary {
		if w.Ancillary[i].ID == tag {
			return &w.Ancillary[i]
		}
	}

	return nil
}

// replaceAncillary swaps the first chunk selected by match for nc, keeping
// the matched chunk's position relative to the data chunk, and drops any
// further matches. When nothing matches, nc is appended after the data chunk
// so implementations that stop at the PCM payload are not tripped up. A nil
// nc removes matching chunks.
func (w *Wav) replaceAncillary(match func(Chunk) bool, nc *Chunk) {
	out := make([]Chunk, 0, len(w.Ancillary)+1)

	replaced := false

	for _, c := range w.Ancillary {
		if !match(c) {
			out = append(out, c)
			continue
		}

		if !replaced && nc != nil {
			nc.BeforeData = c.BeforeData
			out = append(out, *nc)
		}

		replaced = true
	}

	if !replaced && nc != nil {
		out = append(out, *nc)
	}

	w.Ancillary = out
}

// Clone returns a deep copy of the document. The copy shares no storage with
// the original.
func (w *Wav) Clone() *Wav {
	if w == nil {
		return nil
	}

	out := &Wav{Format: w.Format}

	switch s := w.Samples.(type) {
	case Samples8:
		out.Samples = append(Samples8(nil), s...)
	case Samples16:
		out.Samples = append(Samples16(nil), s...)
	case Samples24:
		out.Samples = append(Samples24(nil), s...)
	}

	if len(w.Ancillary) > 0 {
		out.Ancillary = make([]Chunk, len(w.Ancillary))
		for i, c := range w.Ancillary {
			out.Ancillary[i] = c.Clone()
		}
	}

	return out
}
