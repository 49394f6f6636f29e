package services

// LoginCredentials is what a valid login form hands to the account backend.
type LoginCredentials struct {
	Email    string
	Password string
}

// LoginForm is the single-step form behind the login page.
type LoginForm struct {
	email    string
	password string
	errors   FieldErrors
}

func NewLoginForm() *LoginForm {
	return &LoginForm{errors: FieldErrors{}}
}

func (form *LoginForm) SetEmail(value string) {
	form.email = value
	delete(form.errors, FieldEmail)
}

func (form *LoginForm) SetPassword(value string) {
	form.password = value
	delete(form.errors, FieldPassword)
}

func (form *LoginForm) Email() string { return form.email }

func (form *LoginForm) Errors() FieldErrors { return form.errors.Clone() }

// Submit validates both fields together and replaces the error map. The
// credentials are only meaningful when ok is true.
func (form *LoginForm) Submit() (LoginCredentials, bool) {
	errs := FieldErrors{}
	errs.set(FieldEmail, validateEmailInput(form.email))
	if form.password == "" {
		errs.set(FieldPassword, MessagePasswordRequired)
	}
	form.errors = errs
	if len(errs) > 0 {
		return LoginCredentials{}, false
	}
	return LoginCredentials{Email: form.email, Password: form.password}, true
}
