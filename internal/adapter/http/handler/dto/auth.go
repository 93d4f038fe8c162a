package dto

import "github.com/teleka/teleka-taxi/pkg/validator"

type LoginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginReq) Validate(v *validator.Validator) {
	v.Check(r.Username != "", "username", "must be provided")
	v.Check(r.Password != "", "password", "must be provided")
}
