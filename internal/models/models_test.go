package models

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUserFullName(t *testing.T) {
	u := User{FirstName: "Ada", LastName: "Lovelace"}
	assert.Equal(t, "Ada Lovelace", u.FullName())
}

func TestPostFriendlyDate(t *testing.T) {
	p := Post{CreatedAt: time.Date(2024, time.March, 5, 14, 30, 0, 0, time.UTC)}
	assert.Equal(t, "Tue Mar 5 2024, 2:30 PM", p.FriendlyDate())
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFoundError("User", 7)))
	assert.False(t, IsNotFound(NewInternalError(errors.New("boom"))))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestNotFoundErrorMessage(t *testing.T) {
	err := NewNotFoundError("Post", 42)
	assert.Contains(t, err.Error(), "Post")
	assert.Contains(t, err.Error(), "42")
}

func TestInternalErrorUnwraps(t *testing.T) {
	cause := errors.New("disk full")
	err := NewInternalError(cause)
	assert.True(t, errors.Is(err, cause))
}
