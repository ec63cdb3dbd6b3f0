package printer

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// ESC/POS control bytes
const (
	ESC byte = 0x1B
	GS  byte = 0x1D
	LF  byte = 0x0A
)

// Align is a justification mode for ESC a.
type Align byte

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Size is a character magnification for GS !.
type Size byte

const (
	SizeNormal Size = 0x00
	SizeTall   Size = 0x01
	SizeWide   Size = 0x10
	SizeDouble Size = 0x11
)

// DefaultWidth fits 58mm paper. 80mm paper takes 48.
const DefaultWidth = 32

// Document accumulates a ticket. A raw document carries ESC/POS control
// sequences; a plain one carries only the text, for terminals and logs.
type Document struct {
	buf   bytes.Buffer
	width int
	raw   bool
}

// NewDocument creates a raw ESC/POS document width characters wide.
func NewDocument(width int) *Document {
	return newDocument(width, true)
}

// NewPlainDocument creates a document with the same layout and no control
// sequences.
func NewPlainDocument(width int) *Document {
	return newDocument(width, false)
}

func newDocument(width int, raw bool) *Document {
	if width <= 0 {
		width = DefaultWidth
	}
	d := &Document{width: width, raw: raw}
	return d.Init()
}

// Width returns the line width in characters.
func (d *Document) Width() int {
	return d.width
}

func (d *Document) command(seq ...byte) *Document {
	if d.raw {
		d.buf.Write(seq)
	}
	return d
}

// Init resets the printer to its power-on state (ESC @).
func (d *Document) Init() *Document {
	return d.command(ESC, '@')
}

// Align sets the justification of the following lines.
func (d *Document) Align(a Align) *Document {
	return d.command(ESC, 'a', byte(a))
}

// Bold toggles emphasized text.
func (d *Document) Bold(on bool) *Document {
	var flag byte
	if on {
		flag = 1
	}
	return d.command(ESC, 'E', flag)
}

// Size sets the character magnification.
func (d *Document) Size(s Size) *Document {
	return d.command(GS, '!', byte(s))
}

// Line writes s and ends the line.
func (d *Document) Line(s string) *Document {
	d.buf.WriteString(s)
	d.buf.WriteByte(LF)
	return d
}

// Linef writes a formatted line.
func (d *Document) Linef(format string, args ...interface{}) *Document {
	return d.Line(fmt.Sprintf(format, args...))
}

// Feed advances the paper n lines.
func (d *Document) Feed(n int) *Document {
	d.buf.Write(bytes.Repeat([]byte{LF}, max(n, 0)))
	return d
}

// Rule draws a full-width line of r.
func (d *Document) Rule(r rune) *Document {
	return d.Line(strings.Repeat(string(r), d.width))
}

// Columns writes left and right on one line, right flush with the margin.
// left is cut short when both do not fit.
//
//	"2x Widget              20.00"
func (d *Document) Columns(left, right string) *Document {
	rightLen := utf8.RuneCountInString(right)
	if room := d.width - rightLen - 1; room > 0 && utf8.RuneCountInString(left) > room {
		left = string([]rune(left)[:room])
	}
	gap := max(d.width-utf8.RuneCountInString(left)-rightLen, 1)
	return d.Line(left + strings.Repeat(" ", gap) + right)
}

// Cut feeds to the cutter and cuts the paper, leaving a hinge when partial.
func (d *Document) Cut(partial bool) *Document {
	var mode byte
	if partial {
		mode = 1
	}
	return d.command(GS, 'V', mode)
}

// Bytes returns the accumulated stream.
func (d *Document) Bytes() []byte {
	return d.buf.Bytes()
}

// String returns the accumulated stream as text.
func (d *Document) String() string {
	return d.buf.String()
}

// Reset discards the content and starts a new ticket in the same mode.
func (d *Document) Reset() *Document {
	d.buf.Reset()
	return d.Init()
}

// Money renders an amount with two decimals.
func Money(v decimal.Decimal) string {
	return v.StringFixed(2)
}
