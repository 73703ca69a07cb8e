// Package printer builds raw ESC/POS byte streams for thermal receipt and
// label printers. The builder is transport-agnostic: callers decide whether
// the bytes go to a USB device file, a TCP socket on port 9100 or a spooler.
package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ESC/POS command bytes.
const (
	ESC = 0x1B
	GS  = 0x1D
	LF  = 0x0A
)

// Text alignment.
const (
	AlignLeft   = 0
	AlignCenter = 1
	AlignRight  = 2
)

// Character size.
const (
	FontNormal = 0x00
	FontDouble = 0x11 // double width + double height
	FontWide   = 0x10 // double width only
	FontTall   = 0x01 // double height only
)

// Width80mm is the character width of an 80mm receipt at the default font.
const Width80mm = 48

// Document accumulates an ESC/POS byte stream.
type Document struct {
	buf   bytes.Buffer
	width int // print width in characters (48 for 80mm, 32 for 58mm)
}

// NewDocument creates an ESC/POS document with the given character width
// and emits the initialize command.
func NewDocument(charWidth int) *Document {
	if charWidth <= 0 {
		charWidth = Width80mm
	}
	d := &Document{width: charWidth}
	d.Init()
	return d
}

// Init sends ESC @ (initialize printer).
func (d *Document) Init() *Document {
	d.buf.Write([]byte{ESC, '@'})
	return d
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

// SetAlign sets text alignment: AlignLeft, AlignCenter or AlignRight.
func (d *Document) SetAlign(align int) *Document {
	d.buf.Write([]byte{ESC, 'a', byte(align)})
	return d
}

// SetBold enables or disables emphasized text.
func (d *Document) SetBold(on bool) *Document {
	b := byte(0)
	if on {
		b = 1
	}
	d.buf.Write([]byte{ESC, 'E', b})
	return d
}

// SetFontSize sets the character size. Use FontNormal, FontDouble, FontWide or FontTall.
func (d *Document) SetFontSize(size byte) *Document {
	d.buf.Write([]byte{GS, '!', size})
	return d
}

// Text writes a line of text followed by a line feed.
// Arabic text is written as UTF-8; printers configured for a legacy codepage
// should run behind a driver that transcodes.
func (d *Document) Text(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// TextF writes a formatted line followed by a line feed.
func (d *Document) TextF(format string, args ...interface{}) *Document {
	d.buf.WriteString(fmt.Sprintf(format, args...))
	d.buf.WriteByte(LF)
	return d
}

// Separator prints a full-width separator line.
func (d *Document) Separator(char byte) *Document {
	d.buf.WriteString(strings.Repeat(string(char), d.width))
	d.buf.WriteByte(LF)
	return d
}

// KeyValue prints a left-aligned key and a right-aligned value on one line.
// Example: "Remaining                    38.000 KWD"
func (d *Document) KeyValue(key, value string) *Document {
	spaces := d.width - utf8.RuneCountInString(key) - utf8.RuneCountInString(value)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(key)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(value)
	d.buf.WriteByte(LF)
	return d
}

// ItemLine prints a receipt item line: qty x name, then a right-aligned total.
// Example: "2x Acuvue Oasys              25.000"
func (d *Document) ItemLine(qty int, name, total string) *Document {
	prefix := fmt.Sprintf("%dx %s", qty, name)
	spaces := d.width - utf8.RuneCountInString(prefix) - utf8.RuneCountInString(total)
	if spaces < 1 {
		spaces = 1
	}
	d.buf.WriteString(prefix)
	d.buf.WriteString(strings.Repeat(" ", spaces))
	d.buf.WriteString(total)
	d.buf.WriteByte(LF)
	return d
}

// Barcode prints a CODE39 barcode for the given data (GS k). Work-order ids
// are uppercase alphanumeric, which CODE39 covers without an encoder table.
func (d *Document) Barcode(data string) *Document {
	// Height 80 dots, module width 2, HRI below the bars.
	d.buf.Write([]byte{GS, 'h', 80})
	d.buf.Write([]byte{GS, 'w', 2})
	d.buf.Write([]byte{GS, 'H', 2})
	d.buf.Write([]byte{GS, 'k', 4}) // CODE39, NUL-terminated variant
	d.buf.WriteString(data)
	d.buf.WriteByte(0)
	return d
}

// Cut sends the full paper cut command.
func (d *Document) Cut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x00})
	return d
}

// PartialCut sends the partial paper cut command.
func (d *Document) PartialCut() *Document {
	d.buf.Write([]byte{GS, 'V', 0x01})
	return d
}

// Bytes returns the accumulated ESC/POS stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// Reset clears the buffer and reinitializes the document.
func (d *Document) Reset() *Document {
	d.buf.Reset()
	d.Init()
	return d
}
