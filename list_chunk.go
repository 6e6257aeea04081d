package wavv

import "fmt"

// maxListDepth bounds recursion into nested LIST chunks; untrusted input
// controls the nesting.
const maxListDepth = 8

// See http://bwfmetaedit.sourceforge.net/listinfo.html
var (
	markerIARL    = ChunkTag{'I', 'A', 'R', 'L'}
	markerIART    = ChunkTag{'I', 'A', 'R', 'T'}
	markerICMT    = ChunkTag{'I', 'C', 'M', 'T'}
	markerICOP    = ChunkTag{'I', 'C', 'O', 'P'}
	markerICRD    = ChunkTag{'I', 'C', 'R', 'D'}
	markerIENG    = ChunkTag{'I', 'E', 'N', 'G'}
	markerIGNR    = ChunkTag{'I', 'G', 'N', 'R'}
	markerIKEY    = ChunkTag{'I', 'K', 'E', 'Y'}
	markerIMED    = ChunkTag{'I', 'M', 'E', 'D'}
	markerINAM    = ChunkTag{'I', 'N', 'A', 'M'}
	markerIPRD    = ChunkTag{'I', 'P', 'R', 'D'}
	markerISBJ    = ChunkTag{'I', 'S', 'B', 'J'}
	markerISFT    = ChunkTag{'I', 'S', 'F', 'T'}
	markerISRC    = ChunkTag{'I', 'S', 'R', 'C'}
	markerITCH    = ChunkTag{'I', 'T', 'C', 'H'}
	markerITRK    = ChunkTag{'I', 'T', 'R', 'K'}
	markerITRKBug = ChunkTag{'i', 't', 'r', 'k'}
)

// ListChunk is a decoded LIST container: a list type tag followed by a
// sequence of sub-chunks.
type ListChunk struct {
	Type    ChunkTag
	Entries []ListEntry
}

// ListEntry is one sub-chunk of a LIST container. List is populated when the
// entry is itself a LIST chunk.
type ListEntry struct {
	Chunk Chunk
	List  *ListChunk
}

// DecodeListChunk parses a LIST chunk payload, recursing into nested LIST
// entries. Nesting is limited to maxListDepth levels.
func DecodeListChunk(c Chunk) (*ListChunk, error) {
	return decodeList(c, 1)
}

func decodeList(c Chunk, depth int) (*ListChunk, error) {
	if c.ID != TagList {
		return nil, fmt.Errorf("%w: %q is not a LIST chunk", ErrUnknownChunkID, c.ID)
	}

	if depth > maxListDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrListDepthExceeded, maxListDepth)
	}

	if len(c.Data) < 4 {
		return nil, fmt.Errorf("%w: LIST payload is %d bytes, need 4 for the list type", ErrTruncatedChunk, len(c.Data))
	}

	list := &ListChunk{Type: ChunkTag(c.Data[0:4])}

	rest := c.Data[4:]
	for len(rest) > 0 {
		sub, n, err := readChunk(rest)
		if err != nil {
			return nil, err
		}

		entry := ListEntry{Chunk: sub}
		if sub.ID == TagList {
			entry.List, err = decodeList(sub, depth+1)
			if err != nil {
				return nil, err
			}
		}

		list.Entries = append(list.Entries, entry)
		rest = rest[n:]
	}

	return list, nil
}

// Metadata holds the LIST/INFO string entries of a wav file.
type Metadata struct {
	Artist       string
	Comments     string
	Copyright    string
	CreationDate string
	Engineer     string
	Technician   string
	Genre        string
	Keywords     string
	Medium       string
	Title        string
	Product      string
	Subject      string
	Software     string
	Source       string
	Location     string
	TrackNbr     string
}

// DecodeInfoChunk decodes a LIST chunk carrying INFO entries into Metadata.
// Entries with unrecognized markers are skipped; values are read as null
// terminated strings.
func DecodeInfoChunk(c Chunk) (*Metadata, error) {
	list, err := DecodeListChunk(c)
	if err != nil {
		return nil, err
	}

	if list.Type != TagInfo {
		return nil, fmt.Errorf("%w: LIST type %q, expected INFO", ErrUnknownChunkID, list.Type)
	}

	md := &Metadata{}

	for _, entry := range list.Entries {
		val := nullTermStr(entry.Chunk.Data)

		switch entry.Chunk.ID {
		case markerIARL:
			md.Location = val
		case markerIART:
			md.Artist = val
		case markerISFT:
			md.Software = val
		case markerICRD:
			md.CreationDate = val
		case markerICOP:
			md.Copyright = val
		case markerINAM:
			md.Title = val
		case markerIENG:
			md.Engineer = val
		case markerIGNR:
			md.Genre = val
		case markerIPRD:
			md.Product = val
		case markerISRC:
			md.Source = val
		case markerISBJ:
			md.Subject = val
		case markerICMT:
			md.Comments = val
		case markerITRK, markerITRKBug:
			md.TrackNbr = val
		case markerITCH:
			md.Technician = val
		case markerIKEY:
			md.Keywords = val
		case markerIMED:
			md.Medium = val
		}
	}

	return md, nil
}

// EncodeInfoChunk serializes the metadata into a LIST/INFO chunk. Empty
// fields are omitted and each value is written null terminated.
func EncodeInfoChunk(md *Metadata) Chunk {
	data := append([]byte(nil), TagInfo[:]...)

	appendSection := func(marker ChunkTag, val string) {
		if val == "" {
			return
		}

		// a string section never overflows the RIFF size field
		data, _ = frameChunk(data, Chunk{ID: marker, Data: append([]byte(val), 0x00)})
	}

	fields := []struct {
		marker ChunkTag
		value  string
	}{
		{markerIART, md.Artist},
		{markerICMT, md.Comments},
		{markerICOP, md.Copyright},
		{markerICRD, md.CreationDate},
		{markerIENG, md.Engineer},
		{markerITCH, md.Technician},
		{markerIGNR, md.Genre},
		{markerIKEY, md.Keywords},
		{markerIMED, md.Medium},
		{markerINAM, md.Title},
		{markerIPRD, md.Product},
		{markerISBJ, md.Subject},
		{markerISFT, md.Software},
		{markerISRC, md.Source},
		{markerIARL, md.Location},
		{markerITRK, md.TrackNbr},
	}

	for _, field := range fields {
		appendSection(field.marker, field.value)
	}

	return Chunk{ID: TagList, Data: data}
}

// Metadata decodes the first LIST/INFO ancillary chunk. It returns nil
// without error when the document carries no INFO metadata.
func (w *Wav) Metadata() (*Metadata, error) {
	if w == nil {
		return nil, nil
	}

	for _, c := range w.Ancillary {
		if isInfoList(c) {
			return DecodeInfoChunk(c)
		}
	}

	return nil, nil
}

// SetMetadata replaces the document's LIST/INFO chunk in place, or appends
// one after the data chunk when none is present. Passing nil removes any
// INFO metadata.
func (w *Wav) SetMetadata(md *Metadata) {
	if w == nil {
		return
	}

	var nc *Chunk

	if md != nil {
		c := EncodeInfoChunk(md)
		nc = &c
	}

	w.replaceAncillary(isInfoList, nc)
}

func isInfoList(c Chunk) bool {
	return c.ID == TagList && len(c.Data) >= 4 && ChunkTag(c.Data[0:4]) == TagInfo
}
