package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthError_Error(t *testing.T) {
	assert.Equal(t, "token expired", (&AuthError{Status: 401, Message: "token expired"}).Error())
	assert.Equal(t, "authentication failed (status 403)", (&AuthError{Status: 403}).Error())
}

func TestTransportError_Error(t *testing.T) {
	withStatus := &TransportError{Method: "GET", Path: "/jobs", Status: 500, Message: "boom"}
	assert.Equal(t, "GET /jobs: status 500: boom", withStatus.Error())

	noResponse := &TransportError{Method: "GET", Path: "/jobs", Message: "connection refused"}
	assert.Equal(t, "GET /jobs: connection refused", noResponse.Error())
}

func TestErrorSentinels(t *testing.T) {
	assert.ErrorIs(t, &AuthError{Status: 401}, ErrUnauthorized)
	assert.ErrorIs(t, &TransportError{Status: 500}, ErrUnavailable)
	assert.False(t, errors.Is(&AuthError{Status: 401}, ErrUnavailable))
	assert.False(t, errors.Is(&TransportError{Status: 500}, ErrUnauthorized))
}
