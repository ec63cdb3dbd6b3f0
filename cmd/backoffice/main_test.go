package main

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/urfave/cli/v2"
)

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, exitCode(nil))
	assert.Equal(t, 1, exitCode(errors.New("flag provided but not defined")))
	assert.Equal(t, 4, exitCode(cli.Exit("", 4)))
	assert.Equal(t, 3, exitCode(errors.Wrap(cli.Exit("", 3), "receipt add-product")))
}
