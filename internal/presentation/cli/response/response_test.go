package response

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sangkips/trademarket/pkg/apperror"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, ExitNotFound, ExitCode(apperror.KindNotFound))
	assert.Equal(t, ExitInvalidArgument, ExitCode(apperror.KindInvalidArgument))
	assert.Equal(t, ExitConflict, ExitCode(apperror.KindConflict))
	assert.Equal(t, ExitPersistence, ExitCode(apperror.KindPersistence))
	assert.Equal(t, ExitInternal, ExitCode(apperror.KindInternal))
}
