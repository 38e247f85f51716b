package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type sampleTable struct {
	Name     string  `json:"name" validate:"required,notblank,max=100"`
	Shape    string  `json:"shape" validate:"omitempty,table_shape"`
	Capacity int     `json:"capacity" validate:"required,min=1,max=100"`
	RSVP     *string `json:"rsvp_status,omitempty" validate:"omitempty,rsvp_status"`
}

func TestValidateStruct(t *testing.T) {
	t.Run("accepts a valid struct", func(t *testing.T) {
		errs := ValidateStruct(sampleTable{Name: "Table 1", Shape: "oval", Capacity: 8})
		require.Empty(t, errs)
	})

	t.Run("keys errors by json field name", func(t *testing.T) {
		errs := ValidateStruct(sampleTable{Name: "  ", Shape: "triangle", Capacity: 101})

		require.Contains(t, errs, "name")
		require.Contains(t, errs, "shape")
		require.Contains(t, errs, "capacity")
		require.Equal(t, "Maximum value is 100", errs["capacity"])
		require.Contains(t, errs["shape"], "head_table")
	})

	t.Run("rejects unknown rsvp status", func(t *testing.T) {
		bad := "attending"
		errs := ValidateStruct(sampleTable{Name: "A", Capacity: 2, RSVP: &bad})
		require.Contains(t, errs, "rsvp_status")
	})
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{
		"name":     "This field is required",
		"capacity": "Minimum value is 1",
	})
	require.Equal(t, "capacity: Minimum value is 1; name: This field is required", msg)
}
