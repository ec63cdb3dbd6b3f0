package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 500}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 100, p.PerPage)

	p = &PaginationParams{Page: 3, PerPage: 0}
	p.Validate()
	assert.Equal(t, 15, p.PerPage)
	assert.Equal(t, 30, p.Offset())
}

func TestNewPagination(t *testing.T) {
	pag := NewPagination(2, 10, 25)
	assert.Equal(t, 3, pag.TotalPages)
	assert.True(t, pag.HasNext)
	assert.True(t, pag.HasPrev)

	pag = NewPagination(1, 10, 0)
	assert.Equal(t, 0, pag.TotalPages)
	assert.False(t, pag.HasNext)
	assert.False(t, pag.HasPrev)
}

func TestNewPaginatedResultNeverNil(t *testing.T) {
	res := NewPaginatedResult[int](nil, nil)
	assert.NotNil(t, res.Items)
	assert.Empty(t, res.Items)
}

func TestDescribe(t *testing.T) {
	p := &PaginationParams{Page: 1, PerPage: 2}
	pag := p.Describe(5)
	assert.Equal(t, 3, pag.TotalPages)
	assert.Equal(t, int64(5), pag.Total)
	assert.True(t, pag.HasNext)
	assert.False(t, pag.HasPrev)
}
