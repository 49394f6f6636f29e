package api

type loginInput struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type passwordStrengthInput struct {
	Password string `json:"password" form:"password"`
}
