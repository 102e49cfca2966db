package printer

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/vmdanyliuk/receipta/internal/domain"
)

// Line width bounds for rendered receipts.
const (
	MinLineWidth     = 10
	MaxLineWidth     = 100
	DefaultLineWidth = 32
)

const (
	merchantName = "ФОП Джонсонюк Борис"
	totalLabel   = "СУМА"
	restLabel    = "Решта"
	cashLabel    = "Готівка"
	cardLabel    = "Картка"
	footerLine   = "Дякуємо за покупку!"

	createdAtLayout = "02.01.2006 15:04"
)

// Render lays out a receipt as fixed-width plain text. The output is a pure
// function of the receipt and lineWidth: identical inputs produce identical
// bytes.
func Render(receipt domain.Receipt, lineWidth int) string {
	rows := []string{
		center(merchantName, lineWidth),
		strings.Repeat("=", lineWidth),
	}

	for _, item := range receipt.Items {
		rows = append(rows,
			item.Quantity.StringFixed(2)+" x "+groupedInt(item.Price),
			item.Name+" "+groupedInt(item.Total),
		)
	}

	paymentLabel := cashLabel
	if receipt.PaymentType == domain.PaymentTypeCashless {
		paymentLabel = cardLabel
	}

	rows = append(rows,
		strings.Repeat("-", lineWidth),
		totalLabel+" "+groupedInt(receipt.Total),
		paymentLabel+" "+groupedInt(receipt.PaymentAmount),
		restLabel+" "+groupedInt(receipt.Rest),
		strings.Repeat("=", lineWidth),
		receipt.CreatedAt.Format(createdAtLayout),
		footerLine,
	)

	return strings.Join(rows, "\n")
}

// center pads text with spaces to width; when the padding is odd the extra
// space goes after the text. Width is counted in runes, not bytes.
func center(text string, width int) string {
	pad := width - utf8.RuneCountInString(text)
	if pad <= 0 {
		return text
	}
	left := pad / 2
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", pad-left)
}

// groupedInt rounds a monetary value half-up to an integer and groups its
// digits in threes separated by a single space: 1234567 -> "1 234 567".
func groupedInt(value decimal.Decimal) string {
	n := value.Round(0).IntPart()

	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return sign + digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return sign + b.String()
}
