package validation

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrInvalidPick is returned for picks that are not six distinct numbers in 1..45
	ErrInvalidPick = errors.New("invalid pick")

	// ErrInvalidSignup is returned for signup credentials that break the account rules
	ErrInvalidSignup = errors.New("invalid signup")

	ErrInvalidLogin = errors.New("invalid login")
)

// PickRequest is a user-submitted set of numbers
type PickRequest struct {
	Numbers []int `json:"numbers" validate:"required,len=6,unique,dive,min=1,max=45"`
}

// SignupRequest holds the credentials for a new account
type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=30,alphanum"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest holds login credentials. Only presence is checked so that
// accounts created under older rules can still log in.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// ValidatePick checks a submitted pick and returns it sorted ascending.
// Input is never coerced beyond sorting.
func ValidatePick(numbers []int) ([6]int, error) {
	var pick [6]int
	if err := validateStruct(ErrInvalidPick, &PickRequest{Numbers: numbers}); err != nil {
		return pick, err
	}
	copy(pick[:], numbers)
	sort.Ints(pick[:])
	return pick, nil
}

// ValidateSignup checks new account credentials. The username is trimmed
// before validation and returned in its trimmed form.
func ValidateSignup(req SignupRequest) (SignupRequest, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validateStruct(ErrInvalidSignup, &req); err != nil {
		return req, err
	}
	return req, nil
}

// ValidateLogin checks that both login fields are present
func ValidateLogin(req LoginRequest) (LoginRequest, error) {
	req.Username = strings.TrimSpace(req.Username)
	if err := validateStruct(ErrInvalidLogin, &req); err != nil {
		return req, err
	}
	return req, nil
}
