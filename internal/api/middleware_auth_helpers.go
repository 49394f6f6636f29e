package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/customizeworkflow/portal/internal/models"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var errInvalidAuthToken = errors.New("invalid token")

func (handler *Handler) authenticateRequest(c *fiber.Ctx) (*models.Account, error) {
	rawToken := strings.TrimSpace(c.Cookies(authCookieName))
	if rawToken == "" {
		return nil, errors.New("missing auth cookie")
	}

	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(rawToken, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method")
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidAuthToken
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Time.Before(time.Now()) {
		return nil, errors.New("token expired")
	}

	handler.ensureDependencies()
	account, err := handler.accounts.FindByID(claims.AccountID)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (handler *Handler) optionalAuthenticatedAccount(c *fiber.Ctx) *models.Account {
	account, err := handler.authenticateRequest(c)
	if err != nil {
		return nil
	}
	return account
}
