package printer

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPlainDocumentLayout(t *testing.T) {
	doc := NewPlainDocument(20).
		Align(AlignCenter).
		Bold(true).
		Line("SHOP").
		Bold(false).
		Rule('-').
		Columns("Total:", "12.50").
		Columns("2x Bread", "5.00").
		Feed(1).
		Cut(true)

	want := "SHOP\n" +
		"--------------------\n" +
		"Total:         12.50\n" +
		"2x Bread        5.00\n" +
		"\n"
	assert.Equal(t, want, doc.String())
}

func TestColumnsCutsLongLeftText(t *testing.T) {
	doc := NewPlainDocument(16).Columns("1x Extra long product name", "9.99")

	line := strings.TrimSuffix(doc.String(), "\n")
	assert.Len(t, line, 16)
	assert.Equal(t, "1x Extra lo 9.99", line)
}

func TestColumnsCountsRunes(t *testing.T) {
	doc := NewPlainDocument(16).Columns("1x Café crème brûlée", "3.00")

	line := strings.TrimSuffix(doc.String(), "\n")
	assert.Equal(t, 16, utf8.RuneCountInString(line))
	assert.True(t, utf8.ValidString(line))
	assert.True(t, strings.HasSuffix(line, " 3.00"))
}

func TestDocumentEmitsControlCodes(t *testing.T) {
	doc := NewDocument(32).Bold(true).Size(SizeDouble).Line("A").Cut(true)

	data := doc.Bytes()
	assert.True(t, bytes.HasPrefix(data, []byte{ESC, '@'}))
	assert.True(t, bytes.Contains(data, []byte{ESC, 'E', 1}))
	assert.True(t, bytes.Contains(data, []byte{GS, '!', 0x11}))
	assert.True(t, bytes.HasSuffix(data, []byte{GS, 'V', 0x01}))

	full := NewPlainDocument(0).Cut(false)
	assert.Equal(t, DefaultWidth, full.Width())
	assert.Empty(t, full.Bytes())
}

func TestResetKeepsMode(t *testing.T) {
	plain := NewPlainDocument(32).Line("x").Reset()
	assert.Empty(t, plain.Bytes())

	raw := NewDocument(32).Line("x").Reset()
	assert.Equal(t, []byte{ESC, '@'}, raw.Bytes())
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "90.00", Money(decimal.NewFromInt(90)))
	assert.Equal(t, "0.10", Money(decimal.RequireFromString("0.1")))
}
