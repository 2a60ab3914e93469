package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/renttrack/internal/api"
)

func TestExitCode(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{api.ErrNotAuthenticated, 3},
		{fmt.Errorf("login: %w", api.ErrInvalidCredentials), 3},
		{fmt.Errorf("%w: tenant %q", api.ErrNotFound, "x"), 4},
		{&api.HTTPError{Status: 400, Code: api.CodeValidation}, 5},
		{api.ErrTimeout, 6},
		{&api.HTTPError{Status: 503}, 6},
		{errors.New("boom"), 1},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, exitCode(tc.err), tc.err.Error())
	}
}
