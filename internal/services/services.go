// Package services maps each backend resource to typed calls on the API client.
package services

import (
	"fmt"

	"github.com/adrianAraqueG/gaston/internal/apiclient"
)

// Services groups every resource service behind one client.
type Services struct {
	Auth          *AuthService
	Categories    *CategoryService
	Pockets       *PocketService
	Transactions  *TransactionService
	FixedExpenses *FixedExpenseService
}

func New(client *apiclient.Client) *Services {
	return &Services{
		Auth:          &AuthService{client: client},
		Categories:    &CategoryService{client: client},
		Pockets:       &PocketService{client: client},
		Transactions:  &TransactionService{client: client},
		FixedExpenses: &FixedExpenseService{client: client},
	}
}

func itemPath(base string, id int64) string {
	return fmt.Sprintf("%s/%d", base, id)
}
