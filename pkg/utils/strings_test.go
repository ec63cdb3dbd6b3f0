package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Dairy Products", "dairy-products"},
		{"  Fruit & Veg  ", "fruit-veg"},
		{"TOOLS", "tools"},
		{"---", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestReceiptNo(t *testing.T) {
	date := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC)
	assert.Equal(t, "R-20240115-000042", ReceiptNo(42, date))
}
