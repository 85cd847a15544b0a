package ports

import (
	"context"

	"github.com/moneypad/expense-tracker/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, username, password string) (*domain.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}
