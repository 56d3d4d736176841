package main

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShutdown_RunsEveryStep(t *testing.T) {
	httpErr := errors.New("http: deadline exceeded")
	var drained bool

	err := shutdown(context.Background(),
		func(context.Context) error { return httpErr },
		func(context.Context) error { drained = true; return nil },
	)

	assert.True(t, drained)
	assert.ErrorIs(t, err, httpErr)
}

func TestShutdown_Clean(t *testing.T) {
	assert.NoError(t, shutdown(context.Background(),
		func(context.Context) error { return nil },
		func(context.Context) error { return nil },
	))
}
