package validator

import (
	"testing"

	domainerrors "brewlog/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	ImageRef string `json:"image_ref" validate:"required,max=8"`
	CoffeeID string `json:"coffee_id,omitempty" validate:"omitempty,uuid"`
	Internal string `json:"-" validate:"omitempty,max=1"`
}

func TestRequestValidator_Validate(t *testing.T) {
	v := New()

	tests := []struct {
		name        string
		req         sampleRequest
		wantDetails string
	}{
		{name: "valid", req: sampleRequest{ImageRef: "bags/1"}},
		{name: "missing field", req: sampleRequest{}, wantDetails: "image_ref failed required"},
		{
			name:        "several problems use json names",
			req:         sampleRequest{ImageRef: "bags/too-long", CoffeeID: "latte"},
			wantDetails: "image_ref failed max; coffee_id failed uuid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantDetails == "" {
				assert.NoError(t, err)

				return
			}

			require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			var appErr domainerrors.AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.wantDetails, appErr.Details())
		})
	}
}

func TestRequestValidator_NonStruct(t *testing.T) {
	err := New().Validate("not a struct")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrValidationFailed)
}
