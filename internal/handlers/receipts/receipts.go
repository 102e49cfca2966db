package receipts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/vmdanyliuk/receipta/internal/domain"
	"github.com/vmdanyliuk/receipta/internal/dto"
	receiptservice "github.com/vmdanyliuk/receipta/internal/service/receiptservice"
	"github.com/vmdanyliuk/receipta/pkg/auth"
	"github.com/vmdanyliuk/receipta/pkg/printer"
	"github.com/vmdanyliuk/receipta/pkg/utils"
)

type Service interface {
	CreateReceipt(ctx context.Context, userID int, items []domain.ItemInput, payment domain.Payment) (*domain.Receipt, error)
	ListReceipts(ctx context.Context, userID int, filter domain.ReceiptFilter) ([]domain.Receipt, int, error)
	GetReceipt(ctx context.Context, userID, receiptID int) (*domain.Receipt, error)
	GetReceiptText(ctx context.Context, receiptID, lineWidth int) (string, error)
}

type ReceiptHandler struct {
	receiptService Service
}

func New(receiptService Service) *ReceiptHandler {
	return &ReceiptHandler{
		receiptService: receiptService,
	}
}

// Create godoc
//
//	@Summary		Create a receipt
//	@Description	Compute totals and change for the supplied items and persist the receipt atomically.
//	@Tags			Receipts
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		dto.CreateReceiptRequestDTO	true	"Receipt items and payment"
//	@Success		200		{object}	dto.ReceiptResponseDTO
//	@Failure		400		{object}	utils.Response	"Invalid request body or item values"
//	@Failure		401		{object}	utils.Response	"User not authorized"
//	@Failure		500		{object}	utils.Response	"Internal server error"
//	@Router			/api/receipts [post]
func (h *ReceiptHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	var req dto.CreateReceiptRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	items := make([]domain.ItemInput, 0, len(req.Products))
	for _, p := range req.Products {
		items = append(items, domain.ItemInput{
			Name:     p.Name,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}
	payment := domain.Payment{
		Type:   domain.PaymentType(req.Payment.Type),
		Amount: req.Payment.Amount,
	}

	receipt, err := h.receiptService.CreateReceipt(r.Context(), userID, items, payment)
	if err != nil {
		switch {
		case errors.Is(err, receiptservice.ErrNoItems),
			errors.Is(err, receiptservice.ErrNegativeAmount),
			errors.Is(err, receiptservice.ErrInvalidPaymentType):
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReceiptDTO(receipt))
}

// List godoc
//
//	@Summary		List receipts
//	@Description	Return one page of the user's receipts, newest first, with the total matching count.
//	@Tags			Receipts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			date_from		query		string	false	"Created at or after (RFC 3339)"
//	@Param			date_to			query		string	false	"Created at or before (RFC 3339)"
//	@Param			min_total		query		number	false	"Minimum receipt total"
//	@Param			max_total		query		number	false	"Maximum receipt total"
//	@Param			payment_type	query		string	false	"Payment type (cash or cashless)"
//	@Param			limit			query		int		false	"Page size (default 10)"
//	@Param			offset			query		int		false	"Page offset (default 0)"
//	@Success		200				{object}	dto.ListReceiptsResponseDTO
//	@Failure		400				{object}	utils.Response	"Malformed filter values"
//	@Failure		401				{object}	utils.Response	"User not authorized"
//	@Failure		500				{object}	utils.Response	"Internal server error"
//	@Router			/api/receipts [get]
func (h *ReceiptHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	filter, err := parseFilter(r)
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	receipts, total, err := h.receiptService.ListReceipts(r.Context(), userID, filter)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	summaries := make([]dto.ReceiptSummaryDTO, 0, len(receipts))
	for _, receipt := range receipts {
		summaries = append(summaries, dto.ReceiptSummaryDTO{
			ID:            receipt.ID,
			Total:         receipt.Total,
			Rest:          receipt.Rest,
			PaymentType:   string(receipt.PaymentType),
			PaymentAmount: receipt.PaymentAmount,
			CreatedAt:     receipt.CreatedAt,
		})
	}
	utils.RespondWithJSON(w, http.StatusOK, dto.ListReceiptsResponseDTO{
		Total:    total,
		Receipts: summaries,
	})
}

// GetByID godoc
//
//	@Summary		Get a receipt
//	@Description	Return a full receipt owned by the user. A receipt belonging to someone else is reported as not found.
//	@Tags			Receipts
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Receipt id"
//	@Success		200	{object}	dto.ReceiptResponseDTO
//	@Failure		400	{object}	utils.Response	"Invalid receipt id"
//	@Failure		401	{object}	utils.Response	"User not authorized"
//	@Failure		404	{object}	utils.Response	"Receipt not found"
//	@Failure		500	{object}	utils.Response	"Internal server error"
//	@Router			/api/receipts/{id} [get]
func (h *ReceiptHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value(auth.UserIDKey).(int)

	receiptID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid receipt id")
		return
	}

	receipt, err := h.receiptService.GetReceipt(r.Context(), userID, receiptID)
	if err != nil {
		switch {
		case errors.Is(err, receiptservice.ErrReceiptNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, toReceiptDTO(receipt))
}

// GetText godoc
//
//	@Summary		Get printable receipt text
//	@Description	Render the receipt as fixed-width plain text. Anyone holding the id may print it; no authentication required.
//	@Tags			Receipts
//	@Produce		plain
//	@Param			id			path		int	true	"Receipt id"
//	@Param			line_width	query		int	false	"Line width between 10 and 100 (default 32)"
//	@Success		200			{string}	string
//	@Failure		400			{object}	utils.Response	"Invalid receipt id or line width"
//	@Failure		404			{object}	utils.Response	"Receipt not found"
//	@Failure		500			{object}	utils.Response	"Internal server error"
//	@Router			/api/receipts/{id}/text [get]
func (h *ReceiptHandler) GetText(w http.ResponseWriter, r *http.Request) {
	receiptID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid receipt id")
		return
	}

	lineWidth := printer.DefaultLineWidth
	if v := r.URL.Query().Get("line_width"); v != "" {
		lineWidth, err = strconv.Atoi(v)
		if err != nil || lineWidth < printer.MinLineWidth || lineWidth > printer.MaxLineWidth {
			utils.RespondWithError(w, http.StatusBadRequest,
				fmt.Sprintf("line_width must be an integer between %d and %d", printer.MinLineWidth, printer.MaxLineWidth))
			return
		}
	}

	text, err := h.receiptService.GetReceiptText(r.Context(), receiptID, lineWidth)
	if err != nil {
		switch {
		case errors.Is(err, receiptservice.ErrReceiptNotFound):
			utils.RespondWithError(w, http.StatusNotFound, err.Error())
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(text))
}

func parseFilter(r *http.Request) (domain.ReceiptFilter, error) {
	q := r.URL.Query()
	filter := domain.ReceiptFilter{
		Limit:  receiptservice.DefaultLimit,
		Offset: 0,
	}

	if v := q.Get("date_from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, fmt.Errorf("invalid date_from: %s", v)
		}
		filter.DateFrom = &t
	}
	if v := q.Get("date_to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return filter, fmt.Errorf("invalid date_to: %s", v)
		}
		filter.DateTo = &t
	}
	if v := q.Get("min_total"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filter, fmt.Errorf("invalid min_total: %s", v)
		}
		filter.MinTotal = &d
	}
	if v := q.Get("max_total"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return filter, fmt.Errorf("invalid max_total: %s", v)
		}
		filter.MaxTotal = &d
	}
	if v := q.Get("payment_type"); v != "" {
		pt := domain.PaymentType(v)
		if !pt.Valid() {
			return filter, fmt.Errorf("invalid payment_type: %s", v)
		}
		filter.PaymentType = &pt
	}
	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return filter, fmt.Errorf("limit must be a positive integer")
		}
		filter.Limit = n
	}
	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return filter, fmt.Errorf("offset must be a non-negative integer")
		}
		filter.Offset = n
	}

	return filter, nil
}

func toReceiptDTO(receipt *domain.Receipt) dto.ReceiptResponseDTO {
	products := make([]dto.ProductResponseDTO, 0, len(receipt.Items))
	for _, item := range receipt.Items {
		products = append(products, dto.ProductResponseDTO{
			Name:     item.Name,
			Price:    item.Price,
			Quantity: item.Quantity,
			Total:    item.Total,
		})
	}
	return dto.ReceiptResponseDTO{
		ID:       receipt.ID,
		Products: products,
		Payment: dto.PaymentDTO{
			Type:   string(receipt.PaymentType),
			Amount: receipt.PaymentAmount,
		},
		Total:     receipt.Total,
		Rest:      receipt.Rest,
		CreatedAt: receipt.CreatedAt,
	}
}
