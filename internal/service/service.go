package service

import (
	"github.com/vmdanyliuk/receipta/internal/config"
	"github.com/vmdanyliuk/receipta/internal/handlers/auth"
	"github.com/vmdanyliuk/receipta/internal/handlers/receipts"

	pkgauth "github.com/vmdanyliuk/receipta/pkg/auth"

	"github.com/vmdanyliuk/receipta/internal/repo"
	authservice "github.com/vmdanyliuk/receipta/internal/service/authservice"
	receiptservice "github.com/vmdanyliuk/receipta/internal/service/receiptservice"
)

type Services struct {
	AuthService    auth.Service
	ReceiptService receipts.Service
}

func New(repo *repo.Repositories, cfg *config.Config, jwtService pkgauth.JWTServiceInterface) *Services {
	authService := authservice.New(repo.UserRepo, &pkgauth.HashService{}, jwtService, cfg.TokenTTL)
	receiptService := receiptservice.New(repo.ReceiptRepo)

	return &Services{
		AuthService:    authService,
		ReceiptService: receiptService,
	}
}
