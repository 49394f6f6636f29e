package api

import (
	"html/template"
	"time"

	"github.com/customizeworkflow/portal/internal/db"
	"github.com/customizeworkflow/portal/internal/services"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	cookieSecure bool
	templates    map[string]*template.Template
	cookieCodec  *secureCookieCodec
	loginLimiter *attemptLimiter
	signupSteps  []services.SignupStep

	repositories *db.Repositories
	accounts     *services.AccountService
}

type FlashPayload struct {
	FormError   string            `json:"form_error,omitempty"`
	LoginEmail  string            `json:"login_email,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

const (
	authTokenTTL     = 7 * 24 * time.Hour
	signupSessionTTL = 30 * time.Minute
	postAuthPath     = "/welcome"
)

type authClaims struct {
	AccountID uint `json:"aid"`
	jwt.RegisteredClaims
}
