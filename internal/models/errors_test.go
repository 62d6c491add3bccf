package models

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDomainError_IsMatchesOnCode(t *testing.T) {
	constructed := NewUserNotFound("follower", "550e8400-e29b-41d4-a716-446655440000")

	assert.True(t, errors.Is(constructed, ErrUserNotFound))
	assert.False(t, errors.Is(constructed, ErrFollowNotFound))
	assert.False(t, errors.Is(ErrSelfFollow, ErrUserNotFound))
}

func TestDomainError_StatusMapping(t *testing.T) {
	tests := []struct {
		err        *DomainError
		wantStatus int
	}{
		{err: ErrSelfFollow, wantStatus: http.StatusBadRequest},
		{err: ErrUserNotFound, wantStatus: http.StatusNotFound},
		{err: ErrDuplicateFollow, wantStatus: http.StatusConflict},
		{err: ErrFollowNotFound, wantStatus: http.StatusNotFound},
		{err: NewInvalidInput("limit must be an integer"), wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Code), func(t *testing.T) {
			assert.Equal(t, tt.wantStatus, tt.err.Status)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

func TestNewUserNotFound_NamesRole(t *testing.T) {
	err := NewUserNotFound("followee", "550e8400-e29b-41d4-a716-446655440001")

	assert.Contains(t, err.Error(), "followee")
	assert.Contains(t, err.Error(), "550e8400-e29b-41d4-a716-446655440001")
	assert.Equal(t, CodeUserNotFound, err.Code)
}
