package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/grebnev/fitmate/internal/error_values"
	"github.com/grebnev/fitmate/internal/repository"
	"github.com/grebnev/fitmate/pkg/entity"
)

// Registration retries code generation this many times before giving up;
// collisions on an 8-char code are rare enough that hitting the cap means
// something else is wrong.
const referralCodeAttempts = 10

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	req.ReferralCode = strings.ToUpper(strings.TrimSpace(req.ReferralCode))
	err := validate.Struct(*req)
	if err != nil {
		if validationError, ok := err.(validator.ValidationErrors); ok {
			err = errors.New("validation error: ")
			for _, fieldErr := range validationError {
				err = errors.Join(err, fieldErr)
			}
			return nil, err
		}
		return nil, errors.New("validation unexpected error: " + err.Error())
	}
	var referredByID *uuid.UUID
	if req.ReferralCode != "" {
		referrer, err := us.repo.FindByReferralCode(ctx, req.ReferralCode)
		if err != nil {
			if errors.Is(err, errorvalues.ErrReferralCodeNotFound) {
				return nil, errorvalues.ErrReferralCodeNotFound
			}
			return nil, errors.New("repository searching error: " + err.Error())
		}
		referredByID = &referrer.ID
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	code, err := us.uniqueReferralCode(ctx)
	if err != nil {
		return nil, err
	}
	err = us.repo.Create(ctx, &entity.User{
		Email:        req.Email,
		PasswordHash: passwordHash,
		ReferralCode: code,
		ReferredByID: referredByID,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, errorvalues.ErrUserExists
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	user, err := us.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) uniqueReferralCode(ctx context.Context) (string, error) {
	for i := 0; i < referralCodeAttempts; i++ {
		code, err := generateReferralCode()
		if err != nil {
			return "", err
		}
		_, err = us.repo.FindByReferralCode(ctx, code)
		if errors.Is(err, errorvalues.ErrReferralCodeNotFound) {
			return code, nil
		}
		if err != nil {
			return "", errors.New("repository searching error: " + err.Error())
		}
	}
	return "", errors.New("couldn't generate unique referral code")
}

func (us *UserService) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := us.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetReferralInfo(ctx context.Context, id uuid.UUID) (*ReferralInfo, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	referrals, err := us.repo.ListReferrals(ctx, id)
	if err != nil {
		return nil, errors.New("repository listing error: " + err.Error())
	}
	return &ReferralInfo{
		Code:      user.ReferralCode,
		Referrals: referrals,
	}, nil
}
