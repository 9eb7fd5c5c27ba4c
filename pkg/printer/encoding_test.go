package printer

import (
	"bytes"
	"testing"
)

func TestCP858EncodesEuroNatively(t *testing.T) {
	codec := NewCP858Codec()
	got := codec.Encode("€8.00")
	want := []byte{0xD5, '8', '.', '0', '0'}
	if !bytes.Equal(got, want) {
		t.Errorf("Encode(€8.00) = %v, want %v", got, want)
	}
}

func TestASCIICodecSpellsOutEuro(t *testing.T) {
	codec := NewASCIICodec()
	got := codec.Encode("€8.00")
	if !bytes.Equal(got, []byte("EUR8.00")) {
		t.Errorf("Encode(€8.00) = %q, want EUR8.00", got)
	}
}

func TestUnsupportedCharactersNeverFail(t *testing.T) {
	codec := NewCP858Codec()
	// CJK is not representable in any single-byte code page; the glyph must
	// degrade to the substitute byte, never panic or error.
	got := codec.Encode("seat 市 A7")
	if len(got) == 0 {
		t.Fatal("Encode returned no bytes")
	}
	if bytes.ContainsRune(got, '市') {
		t.Error("unsupported rune leaked through encoding")
	}
}

func TestAccentedCharactersSurviveCP858(t *testing.T) {
	codec := NewCP858Codec()
	got := codec.Encode("Crème brûlée")
	if bytes.Contains(got, []byte{0x1A, 0x1A}) {
		t.Errorf("accented characters were not mapped: %v", got)
	}
	if len(got) != len([]rune("Crème brûlée")) {
		t.Errorf("expected one byte per character, got %d bytes", len(got))
	}
}
