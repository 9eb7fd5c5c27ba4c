package printer

import (
	"bytes"
	"fmt"
	"strings"
)

// ESC/POS command constants
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Print modes for ESC ! n. Bits: 0x01 font B, 0x08 emphasized,
// 0x10 double height, 0x20 double width.
const (
	ModeNormal   = 0x00
	ModeSmall    = 0x01 // font B, used for item descriptions
	ModeBold     = 0x08
	ModeEmphasis = 0x38 // bold + double height + double width
)

// CodePage858 is the ESC t argument selecting code page 858 (euro-capable).
const CodePage858 = 0x13

// Document builds an ESC/POS byte stream for thermal printers. All text is
// run through the document's codec, so the output is always representable on
// the target code page.
type Document struct {
	buf   bytes.Buffer
	codec *Codec
	width int // print width in characters (32 for 58mm paper, 48 for 80mm)
}

// NewDocument creates an ESC/POS document with the given character width and
// text codec. The document starts with the ESC @ (initialize) command.
func NewDocument(charWidth int, codec *Codec) *Document {
	if charWidth <= 0 {
		charWidth = 32
	}
	if codec == nil {
		codec = NewASCIICodec()
	}
	d := &Document{width: charWidth, codec: codec}
	d.buf.Write([]byte{ESC, '@'})
	return d
}

// Width returns the print width in characters.
func (d *Document) Width() int { return d.width }

// SetCodePage sends ESC t n to select the printer's character code table.
func (d *Document) SetCodePage(page byte) *Document {
	d.buf.Write([]byte{ESC, 't', page})
	return d
}

// Mode sends ESC ! n to select the print mode for subsequent text.
func (d *Document) Mode(mode byte) *Document {
	d.buf.Write([]byte{ESC, '!', mode})
	return d
}

// Write writes encoded text without a trailing line feed.
func (d *Document) Write(s string) *Document {
	d.buf.Write(d.codec.Encode(s))
	return d
}

// Text writes a line of encoded text followed by a line feed.
func (d *Document) Text(s string) *Document {
	d.buf.Write(d.codec.Encode(s))
	d.buf.WriteByte(LF)
	return d
}

// TextF writes a formatted line of encoded text followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	return d.Text(fmt.Sprintf(format, args...))
}

// LineFeed sends a single line feed.
func (d *Document) LineFeed() *Document {
	d.buf.WriteByte(LF)
	return d
}

// FeedLines sends n line feeds.
func (d *Document) FeedLines(n int) *Document {
	for i := 0; i < n; i++ {
		d.buf.WriteByte(LF)
	}
	return d
}

// Separator prints a full-width separator line, e.g. 32 '=' characters.
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints a left-aligned key and right-aligned value on one line.
// Widths are measured on the encoded bytes so multibyte glyphs (the euro
// sign becomes a single code-page byte) do not skew the column alignment.
// Example: "SUBTOTAL:            EUR24.00"
func (d *Document) KeyValue(key, value string) *Document {
	k := d.codec.Encode(key)
	v := d.codec.Encode(value)
	spaces := d.width - len(k) - len(v)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.Write(k)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.Write(v)
	d.buf.WriteByte(LF)
	return d
}

// ItemLine prints a receipt item line: qty x name, then a right-aligned
// amount. Example: "2x Nachos              EUR16.00"
func (d *Document) ItemLine(qty int, name, amount string) *Document {
	return d.KeyValue(fmt.Sprintf("%dx %s", qty, name), amount)
}

// Cut sends the full paper cut command (GS V 0).
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// PartialCut sends the partial paper cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS byte stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}
