package receiptservice

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vmdanyliuk/receipta/internal/domain"
	"github.com/vmdanyliuk/receipta/pkg/printer"
)

type Repo interface {
	Create(ctx context.Context, receipt *domain.Receipt) (*domain.Receipt, error)
	FindByID(ctx context.Context, receiptID int) (*domain.Receipt, error)
	FindByIDForUser(ctx context.Context, receiptID, userID int) (*domain.Receipt, error)
	FindByFilter(ctx context.Context, userID int, filter domain.ReceiptFilter) ([]domain.Receipt, error)
	CountByFilter(ctx context.Context, userID int, filter domain.ReceiptFilter) (int, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

var (
	ErrReceiptNotFound    = errors.New("receipt not found")
	ErrInvalidPaymentType = errors.New("unknown payment type")
)

// DefaultLimit is the page size applied when the caller doesn't set one.
const DefaultLimit = 10

func (s *Service) CreateReceipt(ctx context.Context, userID int, items []domain.ItemInput, payment domain.Payment) (*domain.Receipt, error) {
	if !payment.Type.Valid() {
		return nil, ErrInvalidPaymentType
	}

	lineItems, total, err := CalculateTotals(items)
	if err != nil {
		return nil, err
	}

	// Rest may be negative; insufficient payment is passed through as-is.
	receipt := &domain.Receipt{
		UserID:        userID,
		Total:         total,
		Rest:          payment.Amount.Sub(total),
		PaymentType:   payment.Type,
		PaymentAmount: payment.Amount,
		Items:         lineItems,
	}

	created, err := s.repo.Create(ctx, receipt)
	if err != nil {
		zap.L().Error("can't create receipt: ", zap.Error(err))
		return nil, err
	}

	zap.L().Info("receipt created", zap.Int("receipt_id", created.ID), zap.Int("user_id", userID))
	return created, nil
}

// ListReceipts returns one page of the user's receipts plus the total number
// of receipts matching the filter. The page and the count are fetched
// concurrently over the same predicate set.
func (s *Service) ListReceipts(ctx context.Context, userID int, filter domain.ReceiptFilter) ([]domain.Receipt, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultLimit
	}

	var (
		receipts []domain.Receipt
		total    int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		receipts, err = s.repo.FindByFilter(gctx, userID, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.repo.CountByFilter(gctx, userID, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		zap.L().Error("can't list receipts", zap.Error(err))
		return nil, 0, err
	}

	return receipts, total, nil
}

func (s *Service) GetReceipt(ctx context.Context, userID, receiptID int) (*domain.Receipt, error) {
	receipt, err := s.repo.FindByIDForUser(ctx, receiptID, userID)
	if err != nil {
		zap.L().Error("can't get receipt", zap.Error(err))
		return nil, err
	}
	if receipt == nil {
		return nil, ErrReceiptNotFound
	}
	return receipt, nil
}

// GetReceiptText renders a stored receipt as printable plain text. The lookup
// is deliberately not owner-scoped: anyone holding the id may print it.
func (s *Service) GetReceiptText(ctx context.Context, receiptID, lineWidth int) (string, error) {
	receipt, err := s.repo.FindByID(ctx, receiptID)
	if err != nil {
		zap.L().Error("can't get receipt for printing", zap.Error(err))
		return "", err
	}
	if receipt == nil {
		return "", ErrReceiptNotFound
	}
	return printer.Render(*receipt, lineWidth), nil
}
