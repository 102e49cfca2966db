package receiptrepo

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vmdanyliuk/receipta/internal/domain"
	"github.com/vmdanyliuk/receipta/internal/pg"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface, *pg.MockTXManager) {
	ctrl := gomock.NewController(t)
	mockTxManager := pg.NewMockTXManager(ctrl)

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	repo := New(mockDB, mockTxManager)
	defer mockDB.Close()
	defer ctrl.Finish()

	return repo, mockDB, mockTxManager
}

func newReceipt() *domain.Receipt {
	return &domain.Receipt{
		UserID:        1,
		Total:         decimal.RequireFromString("80.00"),
		Rest:          decimal.RequireFromString("20.00"),
		PaymentType:   domain.PaymentTypeCash,
		PaymentAmount: decimal.RequireFromString("100.00"),
		Items: []domain.LineItem{
			{Name: "Milk", Price: decimal.RequireFromString("30.00"), Quantity: decimal.NewFromInt(2), Total: decimal.RequireFromString("60.00")},
			{Name: "Bread", Price: decimal.RequireFromString("20.00"), Quantity: decimal.NewFromInt(1), Total: decimal.RequireFromString("20.00")},
		},
	}
}

func TestRepository_Create(t *testing.T) {
	repo, mock, mockTxManager := NewMock(t)
	createdAt := time.Now()

	tests := []struct {
		name      string
		receipt   *domain.Receipt
		mockSetup func(receipt *domain.Receipt)
		expectErr bool
	}{
		{
			name:    "Receipt and items saved in one transaction",
			receipt: newReceipt(),
			mockSetup: func(receipt *domain.Receipt) {
				mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO receipts (user_id, total, rest, payment_type, payment_amount)")).
					WithArgs(receipt.UserID, receipt.Total, receipt.Rest, receipt.PaymentType, receipt.PaymentAmount).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt))
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO line_items (receipt_id, name, price, quantity, total)")).
					WithArgs(1, "Milk", receipt.Items[0].Price, receipt.Items[0].Quantity, receipt.Items[0].Total).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(10))
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO line_items (receipt_id, name, price, quantity, total)")).
					WithArgs(1, "Bread", receipt.Items[1].Price, receipt.Items[1].Quantity, receipt.Items[1].Total).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(11))
			},
			expectErr: false,
		},
		{
			name:    "Header insert failure aborts the transaction",
			receipt: newReceipt(),
			mockSetup: func(receipt *domain.Receipt) {
				mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO receipts (user_id, total, rest, payment_type, payment_amount)")).
					WithArgs(receipt.UserID, receipt.Total, receipt.Rest, receipt.PaymentType, receipt.PaymentAmount).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
		{
			name:    "Item insert failure aborts the transaction",
			receipt: newReceipt(),
			mockSetup: func(receipt *domain.Receipt) {
				mockTxManager.EXPECT().Begin(gomock.Any(), gomock.Any()).DoAndReturn(
					func(ctx context.Context, fn func(ctx context.Context) error) error {
						return fn(ctx)
					})
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO receipts (user_id, total, rest, payment_type, payment_amount)")).
					WithArgs(receipt.UserID, receipt.Total, receipt.Rest, receipt.PaymentType, receipt.PaymentAmount).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(1, createdAt))
				mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO line_items (receipt_id, name, price, quantity, total)")).
					WithArgs(1, "Milk", receipt.Items[0].Price, receipt.Items[0].Quantity, receipt.Items[0].Total).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.receipt)
			result, err := repo.Create(context.Background(), tt.receipt)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, result.ID)
				assert.Equal(t, createdAt, result.CreatedAt)
				assert.Equal(t, 10, result.Items[0].ID)
				assert.Equal(t, 1, result.Items[0].ReceiptID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdAt := time.Now()

	receiptColumns := []string{"id", "user_id", "total", "rest", "payment_type", "payment_amount", "created_at"}
	itemColumns := []string{"id", "receipt_id", "name", "price", "quantity", "total"}

	tests := []struct {
		name      string
		mockSetup func()
		expectErr bool
		found     bool
	}{
		{
			name: "Receipt with items",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(5).
					WillReturnRows(pgxmock.NewRows(receiptColumns).AddRow(
						5, 1, decimal.RequireFromString("80.00"), decimal.RequireFromString("20.00"),
						domain.PaymentTypeCash, decimal.RequireFromString("100.00"), createdAt,
					))
				mock.ExpectQuery(regexp.QuoteMeta("WHERE receipt_id = $1")).
					WithArgs(5).
					WillReturnRows(pgxmock.NewRows(itemColumns).AddRow(
						10, 5, "Milk", decimal.RequireFromString("30.00"), decimal.NewFromInt(2), decimal.RequireFromString("60.00"),
					))
			},
			found: true,
		},
		{
			name: "Receipt does not exist",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(5).
					WillReturnError(pgx.ErrNoRows)
			},
			found: false,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1")).
					WithArgs(5).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			result, err := repo.FindByID(context.Background(), 5)
			if tt.expectErr {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			assert.NoError(t, err)
			if tt.found {
				assert.NotNil(t, result)
				assert.Equal(t, 5, result.ID)
				assert.Len(t, result.Items, 1)
				assert.Equal(t, "Milk", result.Items[0].Name)
			} else {
				assert.Nil(t, result)
			}
		})
	}
}

func TestRepository_FindByIDForUser(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdAt := time.Now()

	receiptColumns := []string{"id", "user_id", "total", "rest", "payment_type", "payment_amount", "created_at"}
	itemColumns := []string{"id", "receipt_id", "name", "price", "quantity", "total"}

	t.Run("Own receipt is returned", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2")).
			WithArgs(5, 1).
			WillReturnRows(pgxmock.NewRows(receiptColumns).AddRow(
				5, 1, decimal.RequireFromString("80.00"), decimal.RequireFromString("20.00"),
				domain.PaymentTypeCash, decimal.RequireFromString("100.00"), createdAt,
			))
		mock.ExpectQuery(regexp.QuoteMeta("WHERE receipt_id = $1")).
			WithArgs(5).
			WillReturnRows(pgxmock.NewRows(itemColumns))

		result, err := repo.FindByIDForUser(context.Background(), 5, 1)
		assert.NoError(t, err)
		assert.NotNil(t, result)
		assert.Equal(t, 1, result.UserID)
	})

	t.Run("Foreign receipt looks nonexistent", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("WHERE id = $1 AND user_id = $2")).
			WithArgs(5, 2).
			WillReturnError(pgx.ErrNoRows)

		result, err := repo.FindByIDForUser(context.Background(), 5, 2)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
}

func TestRepository_FindByFilter(t *testing.T) {
	repo, mock, _ := NewMock(t)
	createdAt := time.Now()
	receiptColumns := []string{"id", "user_id", "total", "rest", "payment_type", "payment_amount", "created_at"}

	minTotal := decimal.RequireFromString("50")
	paymentType := domain.PaymentTypeCash
	dateFrom := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		filter    domain.ReceiptFilter
		mockSetup func(filter domain.ReceiptFilter)
		expected  int
		expectErr bool
	}{
		{
			name:   "Owner predicate only",
			filter: domain.ReceiptFilter{Limit: 10, Offset: 0},
			mockSetup: func(filter domain.ReceiptFilter) {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1\n        ORDER BY created_at DESC, id ASC\n        LIMIT $2 OFFSET $3")).
					WithArgs(1, 10, 0).
					WillReturnRows(pgxmock.NewRows(receiptColumns).
						AddRow(2, 1, decimal.RequireFromString("80.00"), decimal.RequireFromString("20.00"), domain.PaymentTypeCash, decimal.RequireFromString("100.00"), createdAt).
						AddRow(1, 1, decimal.RequireFromString("15.50"), decimal.RequireFromString("4.50"), domain.PaymentTypeCashless, decimal.RequireFromString("20.00"), createdAt.Add(-time.Hour)))
			},
			expected: 2,
		},
		{
			name: "All predicates set",
			filter: domain.ReceiptFilter{
				DateFrom:    &dateFrom,
				MinTotal:    &minTotal,
				PaymentType: &paymentType,
				Limit:       5,
				Offset:      10,
			},
			mockSetup: func(filter domain.ReceiptFilter) {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1 AND created_at >= $2 AND total >= $3 AND payment_type = $4")).
					WithArgs(1, dateFrom, minTotal, paymentType, 5, 10).
					WillReturnRows(pgxmock.NewRows(receiptColumns))
			},
			expected: 0,
		},
		{
			name:   "Database error",
			filter: domain.ReceiptFilter{Limit: 10},
			mockSetup: func(filter domain.ReceiptFilter) {
				mock.ExpectQuery(regexp.QuoteMeta("WHERE user_id = $1")).
					WithArgs(1, 10, 0).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup(tt.filter)
			result, err := repo.FindByFilter(context.Background(), 1, tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, result, tt.expected)
		})
	}
}

func TestRepository_CountByFilter(t *testing.T) {
	repo, mock, _ := NewMock(t)
	maxTotal := decimal.RequireFromString("90")

	tests := []struct {
		name      string
		filter    domain.ReceiptFilter
		mockSetup func()
		expected  int
		expectErr bool
	}{
		{
			name:   "Count without optional predicates",
			filter: domain.ReceiptFilter{Limit: 10},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM receipts WHERE user_id = $1")).
					WithArgs(1).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(42))
			},
			expected: 42,
		},
		{
			name:   "Count ignores the page window",
			filter: domain.ReceiptFilter{MaxTotal: &maxTotal, Limit: 1, Offset: 100},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM receipts WHERE user_id = $1 AND total <= $2")).
					WithArgs(1, maxTotal).
					WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(3))
			},
			expected: 3,
		},
		{
			name:   "Database error",
			filter: domain.ReceiptFilter{Limit: 10},
			mockSetup: func() {
				mock.ExpectQuery(regexp.QuoteMeta("SELECT count(*) FROM receipts WHERE user_id = $1")).
					WithArgs(1).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			count, err := repo.CountByFilter(context.Background(), 1, tt.filter)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, count)
		})
	}
}
