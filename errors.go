package wavv

import "errors"

// Every failure mode of the package is one of these sentinel errors, wrapped
// with the offending value where one exists. Callers match with errors.Is.
var (
	// ErrTruncatedChunk is returned when a tag, size, or payload read would
	// run past the end of the available bytes.
	ErrTruncatedChunk = errors.New("truncated chunk")
	// ErrNoRiffChunk is returned when the buffer does not start with a RIFF
	// record.
	ErrNoRiffChunk = errors.New("no RIFF chunk found")
	// ErrNoWaveTag is returned when the RIFF payload does not carry the WAVE
	// form type.
	ErrNoWaveTag = errors.New("no WAVE tag found")
	// ErrNoFmtChunk is returned when a RIFF/WAVE buffer has no fmt chunk.
	ErrNoFmtChunk = errors.New("no fmt chunk found")
	// ErrNoDataChunk is returned when a RIFF/WAVE buffer has no data chunk.
	ErrNoDataChunk = errors.New("no data chunk found")
	// ErrUnsupportedFormat is returned when the fmt chunk's audio format
	// field is not linear PCM.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
	// ErrUnsupportedBitDepth is returned for bit depths other than 8, 16
	// or 24.
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth")
	// ErrUnknownChunkID is returned when a context that requires a known
	// chunk tag encounters an unrecognized one. Unknown top level chunks are
	// preserved, never rejected.
	ErrUnknownChunkID = errors.New("unknown chunk ID")
	// ErrChunkTooLarge is returned when a chunk payload cannot be
	// represented by the 32-bit RIFF size field.
	ErrChunkTooLarge = errors.New("chunk payload exceeds the RIFF size field")
	// ErrListDepthExceeded is returned when nested LIST chunks exceed the
	// recursion limit.
	ErrListDepthExceeded = errors.New("LIST chunk nesting too deep")
)
