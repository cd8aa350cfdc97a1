package main

import (
	"errors"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntArg(t *testing.T) {
	n, err := intArg(nil, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = intArg([]string{"3"}, 1)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = intArg(nil, -1)
	assert.Error(t, err)
	_, err = intArg([]string{"-2"}, 1)
	assert.Error(t, err)
	_, err = intArg([]string{"two"}, 1)
	assert.Error(t, err)
}

func TestReportIgnoresNoChange(t *testing.T) {
	assert.NoError(t, report(nil, "done"))
	assert.NoError(t, report(migrate.ErrNoChange, "done"))

	boom := errors.New("boom")
	assert.ErrorIs(t, report(boom, "done"), boom)
}

func TestRunRejectsUnknownCommand(t *testing.T) {
	assert.Error(t, run(nil, "sideways", nil))
}
