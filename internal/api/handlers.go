package api

import (
	"errors"
	"fmt"
	"html/template"
	"os"

	"github.com/customizeworkflow/portal/internal/services"
	"gorm.io/gorm"
)

var pageTemplates = []string{
	"login",
	"signup",
	"welcome",
	"not_found",
}

func NewHandler(database *gorm.DB, secret string, templateDir string, cookieSecure bool) (*Handler, error) {
	if database == nil {
		return nil, errors.New("database is required")
	}

	templates, err := parsePageTemplates(os.DirFS(templateDir), templateFuncMap(), pageTemplates)
	if err != nil {
		return nil, err
	}

	codec, err := newSecureCookieCodec([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("init cookie codec: %w", err)
	}

	handler := &Handler{
		db:           database,
		secretKey:    []byte(secret),
		cookieSecure: cookieSecure,
		templates:    templates,
		cookieCodec:  codec,
		loginLimiter: newAttemptLimiter(loginAttemptLimit, loginAttemptWindow),
		signupSteps:  services.DefaultSignupSteps,
	}
	return handler.withDependencies(database), nil
}

func templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate":     formatTemplateDate,
		"fieldError":     templateFieldError,
		"stepAnimation":  templateStepAnimation,
		"strengthTone":   templateStrengthTone,
		"isActiveGender": templateIsActiveGender,
		"seq":            templateSeq,
	}
}
