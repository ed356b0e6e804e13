package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	all := []error{ErrInsufficientArguments, ErrInvalidText, ErrInvalidSetting}

	for i, a := range all {
		for j, b := range all {
			if i != j {
				assert.False(t, errors.Is(a, b), "%v should not match %v", a, b)
			}
		}
	}
}

func TestErrors_SurviveWrapping(t *testing.T) {
	wrapped := fmt.Errorf("problem parsing arguments: %w", ErrInsufficientArguments)

	assert.ErrorIs(t, wrapped, ErrInsufficientArguments)
	assert.Equal(t, "problem parsing arguments: not enough arguments", wrapped.Error())
}
