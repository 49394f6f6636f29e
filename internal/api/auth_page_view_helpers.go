package api

import (
	"github.com/customizeworkflow/portal/internal/services"
	"github.com/gofiber/fiber/v2"
)

const siteName = "Customize Workflow"

type genderOption struct {
	Value string
	Label string
}

var genderOptions = []genderOption{
	{Value: string(services.GenderMale), Label: "Male"},
	{Value: string(services.GenderFemale), Label: "Female"},
	{Value: string(services.GenderOther), Label: "Other"},
}

// signupFormValues is the wizard state as the inputs of the page show it.
type signupFormValues struct {
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	OTP             string
	Password        string
	ConfirmPassword string
	Gender          string
}

func pageTitle(page string) string {
	return siteName + " | " + page
}

func buildLoginPageData(flash FlashPayload) fiber.Map {
	fieldErrors := flash.FieldErrors
	if fieldErrors == nil {
		fieldErrors = map[string]string{}
	}
	return fiber.Map{
		"Title":       pageTitle("Login"),
		"Email":       flash.LoginEmail,
		"FieldErrors": fieldErrors,
		"FormError":   flash.FormError,
	}
}

func buildSignupPageData(wizard *services.SignupWizard, formError string) fiber.Map {
	fields := wizard.Fields()
	return fiber.Map{
		"Title":     pageTitle("Sign Up"),
		"Step":      wizard.View(),
		"Values":    signupValuesFromFields(fields),
		"DOB":       fields.DateOfBirth,
		"Errors":    wizard.Errors().Strings(),
		"Strength":  wizard.Strength(),
		"Genders":   genderOptions,
		"FormError": formError,
	}
}

func signupValuesFromFields(fields services.SignupFields) signupFormValues {
	return signupFormValues{
		FirstName:       fields.FirstName,
		LastName:        fields.LastName,
		Email:           fields.Email,
		Phone:           fields.Phone,
		OTP:             fields.OTP,
		Password:        fields.Password,
		ConfirmPassword: fields.ConfirmPassword,
		Gender:          string(fields.Gender),
	}
}
