package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/customizeworkflow/portal/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrAccountEmailExists  = errors.New("account email already exists")
	ErrAccountEmailInvalid = errors.New("account email invalid")
	ErrAccountProfile      = errors.New("account profile incomplete")
	ErrAccountNotFound     = errors.New("account not found")
)

type AccountRepository interface {
	ExistsByNormalizedEmail(email string) (bool, error)
	FindByNormalizedEmail(email string) (models.Account, error)
	FindByID(accountID uint) (models.Account, error)
	Create(account *models.Account) error
	UpdatePasswordHash(accountID uint, passwordHash string) error
}

// AccountService is the account backend behind the login and signup forms.
type AccountService struct {
	accounts AccountRepository
	hashCost int
	now      func() time.Time
}

func NewAccountService(accounts AccountRepository) *AccountService {
	return &AccountService{
		accounts: accounts,
		hashCost: bcrypt.DefaultCost,
		now:      time.Now,
	}
}

// Register creates an account from a submitted signup wizard.
func (service *AccountService) Register(payload SignupPayload) (models.Account, error) {
	email := NormalizeAuthEmail(payload.Email)
	if email == "" {
		return models.Account{}, ErrAccountEmailInvalid
	}
	if err := ValidatePasswordStrength(payload.Password); err != nil {
		return models.Account{}, err
	}
	if payload.DateOfBirth.IsZero() || !payload.Gender.Valid() {
		return models.Account{}, ErrAccountProfile
	}

	exists, err := service.accounts.ExistsByNormalizedEmail(email)
	if err != nil {
		return models.Account{}, fmt.Errorf("check account email: %w", err)
	}
	if exists {
		return models.Account{}, ErrAccountEmailExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), service.hashCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("hash password: %w", err)
	}

	dob := payload.DateOfBirth
	account := models.Account{
		FirstName:    strings.TrimSpace(payload.FirstName),
		LastName:     strings.TrimSpace(payload.LastName),
		Email:        email,
		Phone:        strings.TrimSpace(payload.Phone),
		PasswordHash: string(passwordHash),
		DateOfBirth:  time.Date(dob.Year(), dob.Month(), dob.Day(), 0, 0, 0, 0, time.UTC),
		Gender:       string(payload.Gender),
		CreatedAt:    service.now().UTC(),
	}
	if err := service.accounts.Create(&account); err != nil {
		// A concurrent signup can still win the unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.Account{}, ErrAccountEmailExists
		}
		return models.Account{}, fmt.Errorf("create account: %w", err)
	}
	return account, nil
}

// Authenticate resolves login credentials to an account. Unknown email and
// wrong password are indistinguishable to the caller.
func (service *AccountService) Authenticate(credentials LoginCredentials) (models.Account, error) {
	email := NormalizeAuthEmail(credentials.Email)
	if email == "" || credentials.Password == "" {
		return models.Account{}, ErrAuthCredentialsInvalid
	}

	account, err := service.accounts.FindByNormalizedEmail(email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Account{}, ErrAuthCredentialsInvalid
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("find account: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(credentials.Password)); err != nil {
		return models.Account{}, ErrAuthCredentialsInvalid
	}
	return account, nil
}

func (service *AccountService) FindByID(accountID uint) (models.Account, error) {
	return service.accounts.FindByID(accountID)
}

// ResetPassword replaces the password of the account registered under email.
// The new password must meet the same policy as a signup password.
func (service *AccountService) ResetPassword(email string, password string) (models.Account, error) {
	normalized := NormalizeAuthEmail(email)
	if normalized == "" {
		return models.Account{}, ErrAccountEmailInvalid
	}
	if err := ValidatePasswordStrength(password); err != nil {
		return models.Account{}, err
	}

	account, err := service.accounts.FindByNormalizedEmail(normalized)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, normalized)
	}
	if err != nil {
		return models.Account{}, fmt.Errorf("find account: %w", err)
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), service.hashCost)
	if err != nil {
		return models.Account{}, fmt.Errorf("hash password: %w", err)
	}
	if err := service.accounts.UpdatePasswordHash(account.ID, string(passwordHash)); err != nil {
		return models.Account{}, fmt.Errorf("update password: %w", err)
	}
	account.PasswordHash = string(passwordHash)
	return account, nil
}
