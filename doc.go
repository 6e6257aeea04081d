// Package wavv parses RIFF/WAVE byte buffers into structured documents and
// serializes those documents back into byte buffers.
//
// A Wav document holds the decoded fmt chunk, the PCM samples at their native
// bit depth (8, 16 or 24 bit linear PCM), and every other top level chunk
// preserved verbatim for round-trip fidelity. The package performs no I/O:
// callers hand it a complete buffer and receive either a document or a typed
// error.
//
//	w, err := wavv.FromBytes(raw)
//	if err != nil {
//		// ...
//	}
//
//	out, err := w.ToBytes()
//
// LIST/INFO metadata can be decoded from and re-encoded into the preserved
// chunk set, and documents convert to and from go-audio buffers for
// interoperability with the rest of the go-audio ecosystem.
package wavv
