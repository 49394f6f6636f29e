package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/customizeworkflow/portal/internal/db"
	"github.com/customizeworkflow/portal/internal/security"
	"github.com/customizeworkflow/portal/internal/services"
	"gorm.io/gorm"
)

const (
	temporaryPasswordLength   = 16
	temporaryPasswordAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz23456789!#%&*+-=?@"
	temporaryPasswordAttempts = 32
)

var (
	errNoTerminal        = errors.New("stdin is not a terminal")
	errPasswordMismatch  = errors.New("passwords do not match")
	errEmailRequired     = errors.New("email is required")
	errPasswordGenFailed = errors.New("could not generate a temporary password")
)

// ResetPasswordOptions configures the reset-password operator command.
// Without Prompt a temporary password is generated and printed.
type ResetPasswordOptions struct {
	DBPath string
	Email  string
	Prompt bool
	Stdin  *os.File
	Stdout io.Writer
}

func RunResetPasswordCommand(options ResetPasswordOptions) error {
	if strings.TrimSpace(options.Email) == "" {
		return errEmailRequired
	}
	if options.Stdout == nil {
		options.Stdout = os.Stdout
	}

	password := ""
	var err error
	if options.Prompt {
		password, err = promptNewPassword(options.Stdin, options.Stdout)
	} else {
		password, err = generateTemporaryPassword()
	}
	if err != nil {
		return err
	}

	database, err := db.OpenSQLite(options.DBPath)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	if sqlDB, err := database.DB(); err == nil {
		defer sqlDB.Close()
	}

	email, err := resetAccountPassword(database, options.Email, password)
	if err != nil {
		return err
	}

	fmt.Fprintf(options.Stdout, "Password reset for %s\n", email)
	if !options.Prompt {
		fmt.Fprintf(options.Stdout, "Temporary password: %s\n", password)
	}
	return nil
}

func resetAccountPassword(database *gorm.DB, email string, password string) (string, error) {
	service := services.NewAccountService(db.NewAccountRepository(database))
	account, err := service.ResetPassword(email, password)
	switch {
	case err == nil:
		return account.Email, nil
	case errors.Is(err, services.ErrWeakPassword):
		return "", errors.New(services.CheckPassword(password).FirstFailure())
	default:
		return "", err
	}
}

func promptNewPassword(stdin *os.File, stdout io.Writer) (string, error) {
	fmt.Fprint(stdout, "New password: ")
	password, err := readHiddenLine(stdin)
	fmt.Fprintln(stdout)
	if err != nil {
		return "", err
	}

	fmt.Fprint(stdout, "Confirm password: ")
	confirmation, err := readHiddenLine(stdin)
	fmt.Fprintln(stdout)
	if err != nil {
		return "", err
	}

	if password != confirmation {
		return "", errPasswordMismatch
	}
	if checks := services.CheckPassword(password); !checks.AllPassed() {
		return "", errors.New(checks.FirstFailure())
	}
	return password, nil
}

// generateTemporaryPassword draws until the result satisfies every password
// rule, so it is accepted by the same policy as a signup password.
func generateTemporaryPassword() (string, error) {
	for attempt := 0; attempt < temporaryPasswordAttempts; attempt++ {
		candidate, err := security.RandomString(temporaryPasswordLength, temporaryPasswordAlphabet)
		if err != nil {
			return "", err
		}
		if services.CheckPassword(candidate).AllPassed() {
			return candidate, nil
		}
	}
	return "", errPasswordGenFailed
}

// readLine reads up to a newline one byte at a time so nothing past the
// line is consumed from the terminal.
func readLine(input io.Reader) (string, error) {
	var line []byte
	buffer := make([]byte, 1)
	for {
		n, err := input.Read(buffer)
		if n > 0 {
			if buffer[0] == '\n' {
				break
			}
			line = append(line, buffer[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", err
		}
	}
	return strings.TrimRight(string(line), "\r"), nil
}
