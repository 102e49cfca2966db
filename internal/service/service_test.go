package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vmdanyliuk/receipta/internal/config"
	"github.com/vmdanyliuk/receipta/internal/repo"
	authservice "github.com/vmdanyliuk/receipta/internal/service/authservice"
	receiptservice "github.com/vmdanyliuk/receipta/internal/service/receiptservice"
	"github.com/vmdanyliuk/receipta/pkg/auth"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repositories := &repo.Repositories{
		UserRepo:    authservice.NewMockRepo(ctrl),
		ReceiptRepo: receiptservice.NewMockRepo(ctrl),
	}
	cfg := &config.Config{TokenTTL: 15 * time.Minute}

	services := New(repositories, cfg, auth.NewMockJWTServiceInterface(ctrl))

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.ReceiptService)

	assert.IsType(t, &authservice.Service{}, services.AuthService)
	assert.IsType(t, &receiptservice.Service{}, services.ReceiptService)
}
