package printer

import (
	"bytes"
	"testing"
)

func TestDocumentStartsWithInit(t *testing.T) {
	doc := NewDocument(32, NewCP858Codec())
	got := doc.Bytes()
	if !bytes.HasPrefix(got, []byte{ESC, '@'}) {
		t.Errorf("document does not start with ESC @: %v", got[:2])
	}
}

func TestControlSequences(t *testing.T) {
	tests := []struct {
		name  string
		build func(*Document) *Document
		want  []byte
	}{
		{"code page", func(d *Document) *Document { return d.SetCodePage(CodePage858) }, []byte{ESC, 't', 0x13}},
		{"emphasis mode", func(d *Document) *Document { return d.Mode(ModeEmphasis) }, []byte{ESC, '!', 0x38}},
		{"normal mode", func(d *Document) *Document { return d.Mode(ModeNormal) }, []byte{ESC, '!', 0x00}},
		{"small mode", func(d *Document) *Document { return d.Mode(ModeSmall) }, []byte{ESC, '!', 0x01}},
		{"full cut", func(d *Document) *Document { return d.Cut() }, []byte{GS, 'V', 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := tt.build(NewDocument(32, NewCP858Codec()))
			got := doc.Bytes()[2:] // skip ESC @
			if !bytes.Equal(got, tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSeparatorIsFullWidth(t *testing.T) {
	doc := NewDocument(32, NewCP858Codec()).Separator('=')
	got := doc.Bytes()[2:]
	want := append(bytes.Repeat([]byte{'='}, 32), LF)
	if !bytes.Equal(got, want) {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestKeyValueRightAlignsToWidth(t *testing.T) {
	doc := NewDocument(32, NewCP858Codec()).KeyValue("SUBTOTAL:", "EUR24.00")
	line := doc.Bytes()[2:]
	// strip trailing LF
	if line[len(line)-1] != LF {
		t.Fatal("missing trailing line feed")
	}
	line = line[:len(line)-1]
	if len(line) != 32 {
		t.Fatalf("line is %d columns, want 32: %q", len(line), line)
	}
	if !bytes.HasSuffix(line, []byte("EUR24.00")) {
		t.Errorf("value is not right-aligned: %q", line)
	}
}

func TestKeyValueMeasuresEncodedWidth(t *testing.T) {
	// "€" is 3 bytes of UTF-8 but a single CP858 byte; alignment must be
	// computed on the encoded length.
	doc := NewDocument(32, NewCP858Codec()).KeyValue("TOTAL:", "€24.00")
	line := doc.Bytes()[2:]
	line = line[:len(line)-1]
	if len(line) != 32 {
		t.Errorf("line is %d printed columns, want 32: %v", len(line), line)
	}
}

func TestItemLine(t *testing.T) {
	doc := NewDocument(32, NewCP858Codec()).ItemLine(2, "Nachos", "EUR16.00")
	line := doc.Bytes()[2:]
	line = line[:len(line)-1]
	if !bytes.HasPrefix(line, []byte("2x Nachos")) {
		t.Errorf("unexpected item prefix: %q", line)
	}
	if !bytes.HasSuffix(line, []byte("EUR16.00")) {
		t.Errorf("amount is not right-aligned: %q", line)
	}
	if len(line) != 32 {
		t.Errorf("line is %d columns, want 32", len(line))
	}
}

func TestOverlongLineKeepsSingleSpace(t *testing.T) {
	doc := NewDocument(32, NewCP858Codec()).
		ItemLine(1, "An impossibly long cocktail name", "EUR10.00")
	line := doc.Bytes()[2:]
	line = line[:len(line)-1]
	if !bytes.Contains(line, []byte(" EUR10.00")) {
		t.Errorf("expected single separating space on overflow: %q", line)
	}
}

func TestWidthDefaults(t *testing.T) {
	if got := NewDocument(0, nil).Width(); got != 32 {
		t.Errorf("default width = %d, want 32", got)
	}
	if got := NewDocument(48, nil).Width(); got != 48 {
		t.Errorf("width = %d, want 48", got)
	}
}
