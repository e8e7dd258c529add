package models

import (
	"strings"
	"time"

	"frotavistoria-api/utils"
)

type Driver struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	Name      string    `json:"name" gorm:"not null;size:255"`
	CPF       string    `json:"cpf" gorm:"not null;size:11;index"`
	Email     *string   `json:"email" gorm:"size:255"`
	Photo     *string   `json:"photo" gorm:"size:500"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DriverPatch struct {
	Name  *string `json:"name"`
	CPF   *string `json:"cpf"`
	Email *string `json:"email"`
	Photo *string `json:"photo"`
}

func (p DriverPatch) Apply(d Driver) Driver {
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.CPF != nil {
		d.CPF = *p.CPF
	}
	if p.Email != nil {
		d.Email = p.Email
	}
	if p.Photo != nil {
		d.Photo = p.Photo
	}
	return d
}

func (d *Driver) Validate() error {
	if len(strings.TrimSpace(d.Name)) < 3 {
		return utils.NewValidationError("Nome do motorista deve ter pelo menos 3 caracteres")
	}
	if !utils.IsValidCPF(d.CPF) {
		return utils.NewValidationError("CPF deve conter 11 dígitos")
	}
	if d.Email != nil && *d.Email != "" && !utils.IsValidEmail(*d.Email) {
		return utils.NewValidationError("E-mail do motorista inválido")
	}
	return nil
}
