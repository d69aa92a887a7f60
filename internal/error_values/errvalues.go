package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong email or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrReferralCodeNotFound = errors.New("referral code doesn't exist")

	ErrStepsEntryNotFound  = errors.New("steps entry doesn't exist")
	ErrStepsDateNotAllowed = errors.New("steps date is in the future")
)
