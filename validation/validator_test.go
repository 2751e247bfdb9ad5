package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetValidator_Singleton(t *testing.T) {
	t.Parallel()

	assert.Same(t, GetValidator(), GetValidator())
}

func TestValidatePick_SortsValidPick(t *testing.T) {
	t.Parallel()

	pick, err := ValidatePick([]int{45, 3, 17, 1, 22, 9})
	require.NoError(t, err)
	assert.Equal(t, [6]int{1, 3, 9, 17, 22, 45}, pick)
}

func TestValidatePick_Rejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		numbers []int
		field   string
		tag     string
	}{
		{"missing", nil, "numbers", "required"},
		{"too few", []int{1, 2, 3, 4, 5}, "numbers", "len"},
		{"too many", []int{1, 2, 3, 4, 5, 6, 7}, "numbers", "len"},
		{"duplicates", []int{1, 1, 2, 3, 4, 5}, "numbers", "unique"},
		{"zero", []int{0, 1, 2, 3, 4, 5}, "numbers[0]", "min"},
		{"above range", []int{1, 2, 3, 4, 5, 46}, "numbers[5]", "max"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := ValidatePick(tt.numbers)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidPick)

			var ve *RequestValidationError
			require.ErrorAs(t, err, &ve)
			require.NotEmpty(t, ve.Fields())
			assert.Equal(t, tt.field, ve.Fields()[0].Field)
			assert.Equal(t, tt.tag, ve.Fields()[0].Tag)
			assert.NotEmpty(t, ve.Message())
		})
	}
}

func TestValidateSignup(t *testing.T) {
	t.Parallel()

	req, err := ValidateSignup(SignupRequest{Username: "  lucky7 ", Password: "correct-horse"})
	require.NoError(t, err)
	assert.Equal(t, "lucky7", req.Username)

	_, err = ValidateSignup(SignupRequest{Username: "ab", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidSignup)

	_, err = ValidateSignup(SignupRequest{Username: "lucky 7", Password: "correct-horse"})
	assert.ErrorIs(t, err, ErrInvalidSignup)

	_, err = ValidateSignup(SignupRequest{Username: "lucky7", Password: "short"})
	require.ErrorIs(t, err, ErrInvalidSignup)

	var ve *RequestValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "password must be at least 8 characters", ve.Message())
}

func TestValidateLogin(t *testing.T) {
	t.Parallel()

	_, err := ValidateLogin(LoginRequest{Username: "lucky7", Password: "x"})
	assert.NoError(t, err)

	_, err = ValidateLogin(LoginRequest{Username: "   ", Password: "x"})
	assert.ErrorIs(t, err, ErrInvalidLogin)
	assert.NotErrorIs(t, err, ErrInvalidPick)
}
