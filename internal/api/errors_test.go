package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		err    error
		code   string
		status int
	}{
		{fmt.Errorf("payment %q: %w", "x", ErrNotFound), CodeNotFound, http.StatusNotFound},
		{ErrInvalidCredentials, CodeInvalidCredentials, http.StatusUnauthorized},
		{ErrNotAuthenticated, CodeNotAuthenticated, http.StatusUnauthorized},
		{fmt.Errorf("price: %w", ErrValidation), CodeValidation, http.StatusBadRequest},
		{ErrBackendUnavailable, CodeBackendUnavailable, http.StatusServiceUnavailable},
		{ErrForbidden, CodeForbidden, http.StatusForbidden},
		{context.DeadlineExceeded, CodeTimeout, http.StatusGatewayTimeout},
		{errors.New("boom"), CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		code, status := Classify(tc.err)
		assert.Equal(t, tc.code, code, tc.err.Error())
		assert.Equal(t, tc.status, status, tc.err.Error())
	}
}

func TestHTTPErrorUnwrap(t *testing.T) {
	err := error(&HTTPError{Status: http.StatusNotFound, Code: CodeNotFound, Message: "payment not found"})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "payment not found")

	// No code: the status decides.
	assert.ErrorIs(t, &HTTPError{Status: http.StatusNotImplemented}, ErrBackendUnavailable)
	assert.ErrorIs(t, &HTTPError{Status: http.StatusBadGateway}, ErrBackendUnavailable)

	var he *HTTPError
	require.ErrorAs(t, fmt.Errorf("wrapped: %w", err), &he)
	assert.Equal(t, http.StatusNotFound, he.Status)
	assert.Nil(t, (&HTTPError{Status: http.StatusTeapot}).Unwrap())
}

func TestFlexNumber(t *testing.T) {
	var in TenantInput
	require.NoError(t, json.Unmarshal([]byte(`{"rentAmount":"2,500","deposit":5000}`), &in))
	assert.Equal(t, 2500.0, in.RentAmount.Float())
	assert.Equal(t, 5000.0, in.Deposit.Float())

	require.NoError(t, json.Unmarshal([]byte(`{"rentAmount":"","deposit":null}`), &in))
	assert.Zero(t, in.RentAmount)
	assert.Zero(t, in.Deposit)

	err := json.Unmarshal([]byte(`{"rentAmount":"abc"}`), &in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestFlexNumberRejectsNonFinite(t *testing.T) {
	bodies := []string{
		`{"rentAmount":"NaN"}`,
		`{"rentAmount":"nan"}`,
		`{"rentAmount":"Inf"}`,
		`{"rentAmount":"+Inf"}`,
		`{"rentAmount":"-Infinity"}`,
		`{"rentAmount":"1e400"}`,
		`{"rentAmount":1e400}`,
		`{"rentAmount":-1e400}`,
	}
	for _, body := range bodies {
		var in TenantInput
		err := json.Unmarshal([]byte(body), &in)
		assert.ErrorIs(t, err, ErrValidation, body)
	}

	for _, s := range []string{"NaN", "Inf", "-Infinity", "1e400", "$1e999"} {
		_, err := ParseNumber(s)
		assert.ErrorIs(t, err, ErrValidation, s)
	}
	v, err := ParseNumber("$1,234.5")
	require.NoError(t, err)
	assert.Equal(t, 1234.5, v)

	assert.True(t, FlexNumber(12).Finite())
	assert.False(t, FlexNumber(math.NaN()).Finite())
	assert.False(t, FlexNumber(math.Inf(-1)).Finite())
}
