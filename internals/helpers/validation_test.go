package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	UserName  string `validate:"required,max=255"`
	UserEmail string `validate:"required,email"`
	UserRole  string `validate:"required,oneof=admin user"`
}

func TestValidatorMessagesFieldKeys(t *testing.T) {
	err := Validate(sampleRequest{UserRole: "moderator"})
	require.Error(t, err)

	msgs := ValidatorMessages(err)
	assert.Contains(t, msgs, "user_name")
	assert.Contains(t, msgs, "user_email")
	assert.Contains(t, msgs, "user_role")
	assert.Equal(t, []string{"is required."}, msgs["user_name"])
	assert.Equal(t, []string{"must be one of: admin user."}, msgs["user_role"])
}

func TestValidatorMessagesEmail(t *testing.T) {
	err := Validate(sampleRequest{UserName: "A", UserEmail: "not-an-email", UserRole: "user"})
	require.Error(t, err)

	msgs := ValidatorMessages(err)
	require.Len(t, msgs, 1)
	assert.Equal(t, []string{"must be a valid email address."}, msgs["user_email"])
}

func TestValidatorMessagesPassThrough(t *testing.T) {
	assert.NoError(t, Validate(sampleRequest{UserName: "A", UserEmail: "a@example.com", UserRole: "admin"}))
}

func TestFieldError(t *testing.T) {
	m := FieldError("tour_end_date", "must be on or after tour_start_date.")
	assert.Equal(t, map[string][]string{"tour_end_date": {"must be on or after tour_start_date."}}, m)
}

func TestSnakeCase(t *testing.T) {
	assert.Equal(t, "user_name", snakeCase("UserName"))
	assert.Equal(t, "tour_start_date", snakeCase("TourStartDate"))
	assert.Equal(t, "id", snakeCase("Id"))
	// acronym runs stay one word
	assert.Equal(t, "tour_location_id", snakeCase("TourLocationID"))
	assert.Equal(t, "user_dob", snakeCase("UserDOB"))
	assert.Equal(t, "id_token", snakeCase("IDToken"))
	assert.Equal(t, "booking_hotel_id", snakeCase("BookingHotelID"))
}

// the validator key must match the json tag for acronym-suffixed fields, so
// manual FieldError calls and validator output agree on the same key
func TestValidatorMessagesAcronymFields(t *testing.T) {
	type linkRequest struct {
		TourLocationID string `json:"tour_location_id" validate:"required,uuid"`
		UserDOB        string `json:"user_dob" validate:"required,datetime=2006-01-02"`
	}

	err := Validate(linkRequest{})
	require.Error(t, err)

	msgs := ValidatorMessages(err)
	assert.Contains(t, msgs, "tour_location_id")
	assert.Contains(t, msgs, "user_dob")
	assert.NotContains(t, msgs, "tour_location_i_d")
	assert.Equal(t, []string{"is required."}, msgs["tour_location_id"])
}
