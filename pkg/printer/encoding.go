package printer

import (
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// Codec converts UTF-8 text into the single-byte stream a thermal printer
// expects. Encoding never fails: characters outside the target code page are
// replaced with the encoder's substitute byte, and the euro sign is handled
// explicitly because most printer code pages predate it.
type Codec struct {
	page         *charmap.Charmap
	euroFallback string // replaces "€" before encoding; empty when the page maps it natively
}

// NewCP858Codec returns the codec for ESC/POS code page 858 (ESC t 0x13 on
// Epson-compatible firmware). CP858 carries the euro sign at 0xD5, so the
// glyph encodes natively.
func NewCP858Codec() *Codec {
	return &Codec{page: charmap.CodePage858}
}

// NewASCIICodec returns a codec for printers without a euro-capable code
// page. The euro sign is spelled out as "EUR"; everything else encodes via
// CP437, the ESC/POS power-on default.
func NewASCIICodec() *Codec {
	return &Codec{page: charmap.CodePage437, euroFallback: "EUR"}
}

// Encode converts s to printer bytes. It never returns an error: unsupported
// characters degrade to the code page's substitute byte.
// A fresh encoder is built per call so a Codec is safe for concurrent use.
func (c *Codec) Encode(s string) []byte {
	if c.euroFallback != "" {
		s = strings.ReplaceAll(s, "€", c.euroFallback)
	}
	enc := encoding.ReplaceUnsupported(c.page.NewEncoder())
	b, err := enc.Bytes([]byte(s))
	if err != nil {
		// ReplaceUnsupported makes single-byte encoders total, so this is
		// effectively unreachable; degrade to plain ASCII regardless.
		return []byte(strings.Map(func(r rune) rune {
			if r > 0x7E {
				return '?'
			}
			return r
		}, s))
	}
	return b
}
