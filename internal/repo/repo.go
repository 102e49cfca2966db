package repo

import (
	"github.com/vmdanyliuk/receipta/internal/pg"
	receiptrepo "github.com/vmdanyliuk/receipta/internal/repo/receipt-repo"
	userrepo "github.com/vmdanyliuk/receipta/internal/repo/user-repo"
	"github.com/vmdanyliuk/receipta/internal/service/authservice"
	"github.com/vmdanyliuk/receipta/internal/service/receiptservice"
)

type Repositories struct {
	UserRepo    authservice.Repo
	ReceiptRepo receiptservice.Repo
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	userRepo := userrepo.New(conn)
	receiptRepo := receiptrepo.New(conn, txManager)

	return &Repositories{
		UserRepo:    userRepo,
		ReceiptRepo: receiptRepo,
	}
}
