package wavv

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// TagCart identifies the cart chunk defined by AES46 for radio traffic data.
var TagCart = ChunkTag{'c', 'a', 'r', 't'}

const (
	cartVersionLen            = 4
	cartTitleLen              = 64
	cartArtistLen             = 64
	cartCutIDLen              = 64
	cartClientIDLen           = 64
	cartCategoryLen           = 64
	cartClassificationLen     = 64
	cartOutCueLen             = 64
	cartStartDateLen          = 10
	cartStartTimeLen          = 8
	cartEndDateLen            = 10
	cartEndTimeLen            = 8
	cartProducerAppIDLen      = 64
	cartProducerAppVersionLen = 64
	cartUserDefLen            = 64
	cartReservedLen           = 276
)

// Cart holds the cart chunk fields used by radio automation systems. The URL
// and TagText fields make up the variable tail of the chunk.
type Cart struct {
	Version            string
	Title              string
	Artist             string
	CutID              string
	ClientID           string
	Category           string
	Classification     string
	OutCue             string
	StartDate          string
	StartTime          string
	EndDate            string
	EndTime            string
	ProducerAppID      string
	ProducerAppVersion string
	UserDef            string
	LevelReference     int32
	PostTimer          [16]uint32
	Reserved           []byte
	URL                string
	TagText            string
}

// DecodeCartChunk decodes a cart chunk payload.
func DecodeCartChunk(c Chunk) (*Cart, error) {
	if c.ID != TagCart {
		return nil, fmt.Errorf("%w: %q is not a cart chunk", ErrUnknownChunkID, c.ID)
	}

	r := &fixedFields{buf: c.Data}

	cart := &Cart{}
	cart.Version = r.str(cartVersionLen)
	cart.Title = r.str(cartTitleLen)
	cart.Artist = r.str(cartArtistLen)
	cart.CutID = r.str(cartCutIDLen)
	cart.ClientID = r.str(cartClientIDLen)
	cart.Category = r.str(cartCategoryLen)
	cart.Classification = r.str(cartClassificationLen)
	cart.OutCue = r.str(cartOutCueLen)
	cart.StartDate = r.str(cartStartDateLen)
	cart.StartTime = r.str(cartStartTimeLen)
	cart.EndDate = r.str(cartEndDateLen)
	cart.EndTime = r.str(cartEndTimeLen)
	cart.ProducerAppID = r.str(cartProducerAppIDLen)
	cart.ProducerAppVersion = r.str(cartProducerAppVersionLen)
	cart.UserDef = r.str(cartUserDefLen)
	cart.LevelReference = int32(r.u32())

	for i := range cart.PostTimer {
		cart.PostTimer[i] = r.u32()
	}

	cart.Reserved = r.take(cartReservedLen)

	if extra := r.rest(); len(extra) > 0 {
		if idx := bytes.IndexByte(extra, 0); idx >= 0 {
			cart.URL = string(extra[:idx])
			cart.TagText = string(bytes.TrimRight(extra[idx+1:], "\x00"))
		} else {
			cart.URL = string(extra)
		}
	}

	return cart, nil
}

// EncodeCartChunk serializes the cart data into a cart chunk.
func EncodeCartChunk(cart *Cart) Chunk {
	data := make([]byte, 0, 1024+len(cart.URL)+len(cart.TagText)+2)

	data = appendFixedString(data, cart.Version, cartVersionLen)
	data = appendFixedString(data, cart.Title, cartTitleLen)
	data = appendFixedString(data, cart.Artist, cartArtistLen)
	data = appendFixedString(data, cart.CutID, cartCutIDLen)
	data = appendFixedString(data, cart.ClientID, cartClientIDLen)
	data = appendFixedString(data, cart.Category, cartCategoryLen)
	data = appendFixedString(data, cart.Classification, cartClassificationLen)
	data = appendFixedString(data, cart.OutCue, cartOutCueLen)
	data = appendFixedString(data, cart.StartDate, cartStartDateLen)
	data = appendFixedString(data, cart.StartTime, cartStartTimeLen)
	data = appendFixedString(data, cart.EndDate, cartEndDateLen)
	data = appendFixedString(data, cart.EndTime, cartEndTimeLen)
	data = appendFixedString(data, cart.ProducerAppID, cartProducerAppIDLen)
	data = appendFixedString(data, cart.ProducerAppVersion, cartProducerAppVersionLen)
	data = appendFixedString(data, cart.UserDef, cartUserDefLen)

	data = binary.LittleEndian.AppendUint32(data, uint32(cart.LevelReference))

	for _, timer := range cart.PostTimer {
		data = binary.LittleEndian.AppendUint32(data, timer)
	}

	reserved := make([]byte, cartReservedLen)
	copy(reserved, cart.Reserved)
	data = append(data, reserved...)

	if cart.URL != "" || cart.TagText != "" {
		data = append(data, cart.URL...)
		data = append(data, 0)

		if cart.TagText != "" {
			data = append(data, cart.TagText...)
			data = append(data, 0)
		}
	}

	return Chunk{ID: TagCart, Data: data}
}

// Cart decodes the cart ancillary chunk. It returns nil without error when
// the document carries none.
func (w *Wav) Cart() (*Cart, error) {
	c := w.AncillaryByID(TagCart)
	if c == nil {
		return nil, nil
	}

	return DecodeCartChunk(*c)
}

// SetCart replaces the document's cart chunk in place, or appends one after
// the data chunk when none is present. Passing nil removes it.
func (w *Wav) SetCart(cart *Cart) {
	if w == nil {
		return
	}

	var nc *Chunk

	if cart != nil {
		c := EncodeCartChunk(cart)
		nc = &c
	}

	w.replaceAncillary(func(c Chunk) bool { return c.ID == TagCart }, nc)
}
