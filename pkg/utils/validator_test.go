package utils

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Title string `json:"title" validate:"required,min=2"`
	Name  string `query:"logger-name" validate:"required"`
	Level string `json:"level" validate:"omitempty,oneof=ERROR INFO DEBUG"`
}

func TestValidateStruct(t *testing.T) {
	require.NoError(t, ValidateStruct(&sampleRequest{Title: "ab", Name: "x", Level: "INFO"}))

	err := ValidateStruct(&sampleRequest{Title: "a", Level: "debug"})
	require.Error(t, err)

	fields := GetValidationErrors(err)
	assert.Equal(t, "title must be at least 2 characters", fields["title"])
	assert.Equal(t, "logger-name is required", fields["logger-name"])
	assert.Equal(t, "level must be one of [ERROR INFO DEBUG]", fields["level"])

	assert.Equal(t,
		"title must be at least 2 characters; logger-name is required; level must be one of [ERROR INFO DEBUG]",
		ValidationMessage(err),
	)
}

func TestValidationMessage_NonValidatorError(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, "boom", ValidationMessage(err))
	assert.Equal(t, map[string]string{"_": "boom"}, GetValidationErrors(err))
}
