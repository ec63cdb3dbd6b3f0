package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sangkips/trademarket/internal/application/service"
	"github.com/sangkips/trademarket/pkg/apperror"
)

func TestParseItems(t *testing.T) {
	items, err := ParseItems([]string{"3:2", " 7 ", "9:0"})
	require.NoError(t, err)
	assert.Equal(t, []service.ReceiptItemInput{
		{ProductID: 3, Quantity: 2},
		{ProductID: 7, Quantity: 1},
		{ProductID: 9, Quantity: 0},
	}, items)

	for _, bad := range []string{"", "x:1", "3:x", "-1:2"} {
		_, err := ParseItems([]string{bad})
		assert.True(t, apperror.IsKind(err, apperror.KindInvalidArgument), bad)
	}
}
