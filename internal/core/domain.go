package core

import (
	"encoding/json"
	"slices"
	"strings"
	"time"
)

const (
	Expense TransactionType = "expense"
	Income  TransactionType = "income"
)

type (
	TransactionType string

	// User is the authenticated account as returned by /auth/me.
	User struct {
		ID                 int64     `json:"id"`
		Email              *string   `json:"email"`
		Name               string    `json:"name"`
		Phone              *string   `json:"phone"`
		WhatsappID         *string   `json:"whatsappId"`
		IsActive           bool      `json:"isActive"`
		OnboardingStatus   string    `json:"onboardingStatus"`
		MustChangePassword bool      `json:"mustChangePassword"`
		CreatedAt          time.Time `json:"createdAt"`
		UpdatedAt          time.Time `json:"updatedAt"`
	}

	// CategoryRef and PocketRef are the embedded summaries the API returns
	// inside transactions and fixed expenses.
	CategoryRef struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	PocketRef struct {
		ID   int64  `json:"id"`
		Name string `json:"name"`
	}

	Transaction struct {
		ID             int64           `json:"id"`
		Type           TransactionType `json:"type"`
		Amount         Money           `json:"amount"`
		Description    string          `json:"description"`
		Category       *CategoryRef    `json:"category,omitempty"`
		Pocket         *PocketRef      `json:"pocket,omitempty"`
		OccurredAt     time.Time       `json:"occurredAt"`
		Year           int             `json:"year"`
		Month          int             `json:"month"`
		AccountID      int64           `json:"accountId"`
		CreatedBy      int64           `json:"createdBy"`
		ImageURL       *string         `json:"imageUrl,omitempty"`
		FixedExpenseID *int64          `json:"fixedExpenseId,omitempty"`
	}

	Category struct {
		ID        int64           `json:"id"`
		Name      string          `json:"name"`
		Type      TransactionType `json:"type"`
		AccountID int64           `json:"accountId"`
		IsActive  bool            `json:"isActive"`
		IsDefault bool            `json:"isDefault"`
	}

	Pocket struct {
		ID          int64  `json:"id"`
		Name        string `json:"name"`
		Description string `json:"description,omitempty"`
		IsDefault   bool   `json:"isDefault"`
		IsActive    bool   `json:"isActive"`
		AccountID   int64  `json:"accountId"`
	}

	FixedExpense struct {
		ID            int64        `json:"id"`
		Name          string       `json:"name"`
		DefaultAmount Money        `json:"defaultAmount"`
		Category      *CategoryRef `json:"category,omitempty"`
		IsActive      bool         `json:"isActive"`
		AccountID     int64        `json:"accountId"`
		CreatedBy     int64        `json:"createdBy"`
		PaidThisMonth bool         `json:"paidThisMonth"`
		LastPaidAt    *time.Time   `json:"lastPaidAt,omitempty"`
	}
)

// Request and response bodies.
type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		User               User `json:"user"`
		MustChangePassword bool `json:"mustChangePassword"`
	}

	ChangePasswordRequest struct {
		CurrentPassword string `json:"currentPassword"`
		NewPassword     string `json:"newPassword"`
	}

	CreateCategory struct {
		Name string          `json:"name"`
		Type TransactionType `json:"type,omitempty"`
	}

	UpdateCategory struct {
		Name     *string          `json:"name,omitempty"`
		Type     *TransactionType `json:"type,omitempty"`
		IsActive *bool            `json:"isActive,omitempty"`
	}

	CreatePocket struct {
		Name        string  `json:"name"`
		Description *string `json:"description,omitempty"`
	}

	UpdatePocket struct {
		Name        *string `json:"name,omitempty"`
		Description *string `json:"description,omitempty"`
		IsActive    *bool   `json:"isActive,omitempty"`
	}

	CreateTransaction struct {
		Type        TransactionType `json:"type"`
		Amount      Money           `json:"amount"`
		Description string          `json:"description"`
		CategoryID  *int64          `json:"categoryId,omitempty"`
		PocketID    *int64          `json:"pocketId,omitempty"`
		OccurredAt  *time.Time      `json:"occurredAt,omitempty"`
	}

	// UpdateTransaction has no Type: a transaction's type never changes once
	// created. ClearPocket sends an explicit null pocketId.
	UpdateTransaction struct {
		Amount      *Money
		Description *string
		CategoryID  *int64
		PocketID    *int64
		ClearPocket bool
		OccurredAt  *time.Time
	}

	CreateFixedExpense struct {
		Name          string `json:"name"`
		DefaultAmount Money  `json:"defaultAmount"`
		CategoryID    *int64 `json:"categoryId,omitempty"`
	}

	UpdateFixedExpense struct {
		Name          *string `json:"name,omitempty"`
		DefaultAmount *Money  `json:"defaultAmount,omitempty"`
		CategoryID    *int64  `json:"categoryId,omitempty"`
	}

	PayFixedExpense struct {
		Amount     *Money     `json:"amount,omitempty"`
		OccurredAt *time.Time `json:"occurredAt,omitempty"`
	}
)

// MarshalJSON keeps absent fields out of the body and writes pocketId as
// null when the pocket is being cleared.
func (u UpdateTransaction) MarshalJSON() ([]byte, error) {
	body := map[string]any{}
	if u.Amount != nil {
		body["amount"] = *u.Amount
	}
	if u.Description != nil {
		body["description"] = *u.Description
	}
	if u.CategoryID != nil {
		body["categoryId"] = *u.CategoryID
	}
	switch {
	case u.ClearPocket:
		body["pocketId"] = nil
	case u.PocketID != nil:
		body["pocketId"] = *u.PocketID
	}
	if u.OccurredAt != nil {
		body["occurredAt"] = u.OccurredAt.Format(time.RFC3339)
	}
	return json.Marshal(body)
}

func (t TransactionType) IsValid() bool {
	return t == Expense || t == Income
}

// ParseTransactionType accepts "expense"/"income" and their Spanish labels.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense", "gasto", "gastos":
		return Expense, nil
	case "income", "ingreso", "ingresos":
		return Income, nil
	default:
		return "", ErrInvalidType
	}
}

// Label is the display name used by the pages.
func (t TransactionType) Label() string {
	if t == Income {
		return "Ingreso"
	}
	return "Gasto"
}

func (t Transaction) IsExpense() bool { return t.Type == Expense }
func (t Transaction) IsIncome() bool  { return t.Type == Income }

func (u User) EntityID() int64         { return u.ID }
func (t Transaction) EntityID() int64  { return t.ID }
func (c Category) EntityID() int64     { return c.ID }
func (p Pocket) EntityID() int64       { return p.ID }
func (f FixedExpense) EntityID() int64 { return f.ID }

// SortNewestFirst orders transactions by OccurredAt descending, keeping the
// input order for equal timestamps.
func SortNewestFirst(txs []Transaction) {
	slices.SortStableFunc(txs, func(a, b Transaction) int {
		return b.OccurredAt.Compare(a.OccurredAt)
	})
}
