package receiptrepo

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/vmdanyliuk/receipta/internal/domain"
	"github.com/vmdanyliuk/receipta/internal/pg"
)

type Repository struct {
	db        pg.Database
	txManager pg.TXManager
}

func New(db pg.Database, txManager pg.TXManager) *Repository {
	return &Repository{
		db:        db,
		txManager: txManager,
	}
}

// Create persists the receipt header and all of its line items in a single
// transaction. The store assigns id and created_at.
func (r *Repository) Create(ctx context.Context, receipt *domain.Receipt) (*domain.Receipt, error) {
	receiptQuery := `
        INSERT INTO receipts (user_id, total, rest, payment_type, payment_amount)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at
    `
	itemQuery := `
        INSERT INTO line_items (receipt_id, name, price, quantity, total)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.txManager.Begin(ctx, func(ctx context.Context) error {
		err := r.db.QueryRow(ctx, receiptQuery,
			receipt.UserID, receipt.Total, receipt.Rest, receipt.PaymentType, receipt.PaymentAmount,
		).Scan(&receipt.ID, &receipt.CreatedAt)
		if err != nil {
			zap.L().Error("can't save receipt", zap.Error(err))
			return err
		}
		for i := range receipt.Items {
			item := &receipt.Items[i]
			item.ReceiptID = receipt.ID
			err := r.db.QueryRow(ctx, itemQuery,
				item.ReceiptID, item.Name, item.Price, item.Quantity, item.Total,
			).Scan(&item.ID)
			if err != nil {
				zap.L().Error("can't save line item", zap.Error(err))
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

// FindByID returns a receipt with its line items regardless of owner.
// Used by the public text endpoint.
func (r *Repository) FindByID(ctx context.Context, receiptID int) (*domain.Receipt, error) {
	query := `
        SELECT id, user_id, total, rest, payment_type, payment_amount, created_at
        FROM receipts
        WHERE id = $1
    `
	return r.findOne(ctx, query, receiptID)
}

// FindByIDForUser scopes the lookup by both id and owner. A receipt that
// belongs to another user is indistinguishable from a nonexistent one.
func (r *Repository) FindByIDForUser(ctx context.Context, receiptID, userID int) (*domain.Receipt, error) {
	query := `
        SELECT id, user_id, total, rest, payment_type, payment_amount, created_at
        FROM receipts
        WHERE id = $1 AND user_id = $2
    `
	return r.findOne(ctx, query, receiptID, userID)
}

func (r *Repository) findOne(ctx context.Context, query string, args ...any) (*domain.Receipt, error) {
	var receipt domain.Receipt
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&receipt.ID, &receipt.UserID, &receipt.Total, &receipt.Rest,
		&receipt.PaymentType, &receipt.PaymentAmount, &receipt.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		zap.L().Error("can't find receipt", zap.Error(err))
		return nil, err
	}

	items, err := r.findItems(ctx, receipt.ID)
	if err != nil {
		return nil, err
	}
	receipt.Items = items
	return &receipt, nil
}

func (r *Repository) findItems(ctx context.Context, receiptID int) ([]domain.LineItem, error) {
	query := `
        SELECT id, receipt_id, name, price, quantity, total
        FROM line_items
        WHERE receipt_id = $1
        ORDER BY id ASC
    `
	rows, err := r.db.Query(ctx, query, receiptID)
	if err != nil {
		zap.L().Error("can't get line items", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var items []domain.LineItem
	for rows.Next() {
		var item domain.LineItem
		err := rows.Scan(&item.ID, &item.ReceiptID, &item.Name, &item.Price, &item.Quantity, &item.Total)
		if err != nil {
			zap.L().Error("can't scan line item row", zap.Error(err))
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// FindByFilter returns one page of receipt summaries (no line items), most
// recent first, ties broken by insertion order.
func (r *Repository) FindByFilter(ctx context.Context, userID int, filter domain.ReceiptFilter) ([]domain.Receipt, error) {
	where, args := filterConditions(userID, filter)
	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`
        SELECT id, user_id, total, rest, payment_type, payment_amount, created_at
        FROM receipts
        WHERE %s
        ORDER BY created_at DESC, id ASC
        LIMIT $%d OFFSET $%d
    `, where, len(args)-1, len(args))

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		zap.L().Error("can't get receipts", zap.Error(err))
		return nil, err
	}
	defer rows.Close()

	var receipts []domain.Receipt
	for rows.Next() {
		var receipt domain.Receipt
		err := rows.Scan(
			&receipt.ID, &receipt.UserID, &receipt.Total, &receipt.Rest,
			&receipt.PaymentType, &receipt.PaymentAmount, &receipt.CreatedAt,
		)
		if err != nil {
			zap.L().Error("can't scan receipt row", zap.Error(err))
			return nil, err
		}
		receipts = append(receipts, receipt)
	}
	return receipts, nil
}

// CountByFilter counts every receipt matching the predicate set, independent
// of the page window.
func (r *Repository) CountByFilter(ctx context.Context, userID int, filter domain.ReceiptFilter) (int, error) {
	where, args := filterConditions(userID, filter)
	query := fmt.Sprintf("SELECT count(*) FROM receipts WHERE %s", where)

	var count int
	err := r.db.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		zap.L().Error("can't count receipts", zap.Error(err))
		return 0, err
	}
	return count, nil
}

// filterConditions builds the conjunctive predicate set. Unset filter fields
// are omitted entirely, never matched against NULL.
func filterConditions(userID int, filter domain.ReceiptFilter) (string, []any) {
	conds := []string{"user_id = $1"}
	args := []any{userID}

	if filter.DateFrom != nil {
		args = append(args, *filter.DateFrom)
		conds = append(conds, fmt.Sprintf("created_at >= $%d", len(args)))
	}
	if filter.DateTo != nil {
		args = append(args, *filter.DateTo)
		conds = append(conds, fmt.Sprintf("created_at <= $%d", len(args)))
	}
	if filter.MinTotal != nil {
		args = append(args, *filter.MinTotal)
		conds = append(conds, fmt.Sprintf("total >= $%d", len(args)))
	}
	if filter.MaxTotal != nil {
		args = append(args, *filter.MaxTotal)
		conds = append(conds, fmt.Sprintf("total <= $%d", len(args)))
	}
	if filter.PaymentType != nil {
		args = append(args, *filter.PaymentType)
		conds = append(conds, fmt.Sprintf("payment_type = $%d", len(args)))
	}

	return strings.Join(conds, " AND "), args
}
