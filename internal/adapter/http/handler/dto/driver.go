package dto

import (
	"github.com/teleka/teleka-taxi/internal/domain/models"
	"github.com/teleka/teleka-taxi/pkg/validator"
)

type RegisterDriverReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	License string `json:"license"`
}

func (r *RegisterDriverReq) Validate(v *validator.Validator) {
	v.Check(r.Name != "", "name", "must be provided")
	v.Check(len(r.Name) < 100, "name", "must be less than 100 characters")

	v.Check(r.Email != "", "email", "must be provided")
	v.Check(validator.Matches(r.Email, validator.EmailRX), "email", "must be a valid email address")

	v.Check(r.Phone != "", "phone", "must be provided")

	v.Check(r.License != "", "license", "must be provided")
	v.Check(len(r.License) < 20, "license", "must be less than 20 characters")
}

func (r *RegisterDriverReq) ToModel() *models.Driver {
	return &models.Driver{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		License: r.License,
	}
}
