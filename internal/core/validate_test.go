package core

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{"ana@example.com", "a.b+c@mail.co"}
	invalid := []string{"", "ana", "ana@", "@example.com", "ana example@x.com", "ana@localhost"}
	for _, e := range valid {
		if err := ValidateEmail(e); err != nil {
			t.Errorf("ValidateEmail(%q) = %v", e, err)
		}
	}
	for _, e := range invalid {
		if err := ValidateEmail(e); !errors.Is(err, ErrInvalidEmail) {
			t.Errorf("ValidateEmail(%q) = %v, want ErrInvalidEmail", e, err)
		}
	}
}

func TestValidatePasswordChange(t *testing.T) {
	if err := ValidatePasswordChange("short", "short"); !errors.Is(err, ErrPasswordTooShort) {
		t.Errorf("got %v", err)
	}
	if err := ValidatePasswordChange("longenough", "different"); !errors.Is(err, ErrPasswordMismatch) {
		t.Errorf("got %v", err)
	}
	if err := ValidatePasswordChange("longenough", "longenough"); err != nil {
		t.Errorf("got %v", err)
	}
}

func TestCreateTransactionValidate(t *testing.T) {
	pocket := int64(3)
	tests := []struct {
		name string
		req  CreateTransaction
		want error
	}{
		{"valid expense", CreateTransaction{Type: Expense, Amount: NewMoney(10), Description: " café ", PocketID: &pocket}, nil},
		{"zero amount", CreateTransaction{Type: Expense, Amount: NewMoney(0), Description: "x"}, ErrInvalidAmount},
		{"negative amount", CreateTransaction{Type: Income, Amount: NewMoney(-5), Description: "x"}, ErrInvalidAmount},
		{"bad type", CreateTransaction{Type: "transfer", Amount: NewMoney(1), Description: "x"}, ErrInvalidType},
		{"empty description", CreateTransaction{Type: Expense, Amount: NewMoney(1), Description: "  "}, ErrDescriptionEmpty},
		{"income with pocket", CreateTransaction{Type: Income, Amount: NewMoney(1), Description: "x", PocketID: &pocket}, ErrIncomeWithPocket},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestCreatePocketNormalizesDescription(t *testing.T) {
	blank := "   "
	req := CreatePocket{Name: "  Ahorro ", Description: &blank}
	if err := req.Validate(); err != nil {
		t.Fatal(err)
	}
	if req.Name != "Ahorro" || req.Description != nil {
		t.Errorf("got %+v", req)
	}
	b, _ := json.Marshal(req)
	if string(b) != `{"name":"Ahorro"}` {
		t.Errorf("body %s", b)
	}
}

func TestUpdateTransactionMarshal(t *testing.T) {
	desc := "almuerzo"
	when := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	pocket := int64(7)

	tests := []struct {
		name string
		req  UpdateTransaction
		want string
	}{
		{"empty", UpdateTransaction{}, `{}`},
		{"clear pocket", UpdateTransaction{ClearPocket: true}, `{"pocketId":null}`},
		{"set pocket", UpdateTransaction{PocketID: &pocket}, `{"pocketId":7}`},
		{"fields", UpdateTransaction{Description: &desc, OccurredAt: &when}, `{"description":"almuerzo","occurredAt":"2024-03-05T12:00:00Z"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := json.Marshal(tt.req)
			if err != nil {
				t.Fatal(err)
			}
			if string(b) != tt.want {
				t.Errorf("got %s, want %s", b, tt.want)
			}
		})
	}
}

func TestParseTransactionType(t *testing.T) {
	for in, want := range map[string]TransactionType{"expense": Expense, "Gasto": Expense, "ingreso": Income, "INCOME": Income} {
		got, err := ParseTransactionType(in)
		if err != nil || got != want {
			t.Errorf("ParseTransactionType(%q) = %v, %v", in, got, err)
		}
	}
	if _, err := ParseTransactionType("otro"); !errors.Is(err, ErrInvalidType) {
		t.Errorf("got %v", err)
	}
}
