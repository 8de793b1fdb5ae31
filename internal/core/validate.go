package core

import (
	"net/mail"
	"strings"
)

const MinPasswordLength = 8

func ValidateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" || strings.ContainsAny(email, " \t") {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	at := strings.LastIndex(email, "@")
	if !strings.Contains(email[at+1:], ".") {
		return ErrInvalidEmail
	}
	return nil
}

func ValidatePassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidatePasswordChange checks the new password and its confirmation.
func ValidatePasswordChange(newPassword, confirm string) error {
	if newPassword != confirm {
		return ErrPasswordMismatch
	}
	return ValidatePassword(newPassword)
}

func ValidateAmount(m Money) error {
	if !m.IsPositive() {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateName trims the name and rejects an empty result.
func ValidateName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrNameRequired
	}
	return name, nil
}

// OptionalText trims s and maps an empty result to nil.
func OptionalText(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func (r *CreateCategory) Validate() error {
	name, err := ValidateName(r.Name)
	if err != nil {
		return err
	}
	r.Name = name
	if r.Type != "" && !r.Type.IsValid() {
		return ErrInvalidType
	}
	return nil
}

func (r *CreatePocket) Validate() error {
	name, err := ValidateName(r.Name)
	if err != nil {
		return err
	}
	r.Name = name
	if r.Description != nil {
		r.Description = OptionalText(*r.Description)
	}
	return nil
}

func (r *CreateTransaction) Validate() error {
	if !r.Type.IsValid() {
		return ErrInvalidType
	}
	if err := ValidateAmount(r.Amount); err != nil {
		return err
	}
	r.Description = strings.TrimSpace(r.Description)
	if r.Description == "" {
		return ErrDescriptionEmpty
	}
	if r.Type == Income && r.PocketID != nil {
		return ErrIncomeWithPocket
	}
	return nil
}

func (r *UpdateTransaction) Validate(current TransactionType) error {
	if r.Amount != nil {
		if err := ValidateAmount(*r.Amount); err != nil {
			return err
		}
	}
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		if d == "" {
			return ErrDescriptionEmpty
		}
		r.Description = &d
	}
	if current == Income && r.PocketID != nil {
		return ErrIncomeWithPocket
	}
	return nil
}

func (r *CreateFixedExpense) Validate() error {
	name, err := ValidateName(r.Name)
	if err != nil {
		return err
	}
	r.Name = name
	return ValidateAmount(r.DefaultAmount)
}

func (r *UpdateFixedExpense) Validate() error {
	if r.Name != nil {
		name, err := ValidateName(*r.Name)
		if err != nil {
			return err
		}
		r.Name = &name
	}
	if r.DefaultAmount != nil {
		return ValidateAmount(*r.DefaultAmount)
	}
	return nil
}

func (r *PayFixedExpense) Validate() error {
	if r.Amount != nil {
		return ValidateAmount(*r.Amount)
	}
	return nil
}
