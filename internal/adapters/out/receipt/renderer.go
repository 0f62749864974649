// Package receipt implements the ReceiptRenderer port as a plain-text spool:
// each settled order that requested a receipt is rendered into a text file in
// the spool directory, where the printer daemon of the point of sale picks it
// up. Rendering runs detached from settlement and is retried only by
// reprinting.
package receipt

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Didier2101/plato-facil-sub001/internal/core/domain/model/order"
	"github.com/Didier2101/plato-facil-sub001/internal/pkg/errs"
)

// TextRenderer renders receipts as plain text files into a spool directory.
type TextRenderer struct {
	spoolDir string
}

// NewTextRenderer creates a renderer spooling into dir, creating it if
// needed.
func NewTextRenderer(dir string) (*TextRenderer, error) {
	if dir == "" {
		return nil, errs.NewValueIsRequiredError("spool directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create spool directory: %w", err)
	}
	return &TextRenderer{spoolDir: dir}, nil
}

// Render writes the receipt for a settled order into the spool directory.
func (r *TextRenderer) Render(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	payment := aggregate.Payment()
	if payment == nil {
		return errs.NewValueIsRequiredError("payment")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "ORDER %s (%s)\n", aggregate.ID(), aggregate.Type())
	fmt.Fprintf(&b, "Customer: %s\n", aggregate.Customer().Name())
	b.WriteString("----------------------------------------\n")

	for _, item := range aggregate.Items() {
		fmt.Fprintf(&b, "%dx %-26s %s\n", item.Quantity(), item.ProductName(), item.Subtotal())
		for _, c := range item.Customizations() {
			prefix := "with"
			if c.Excluded() {
				prefix = "without"
			}
			fmt.Fprintf(&b, "   %s %s\n", prefix, c.Modifier())
		}
	}

	b.WriteString("----------------------------------------\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", aggregate.Subtotal())
	if delivery := aggregate.Delivery(); delivery != nil {
		fmt.Fprintf(&b, "Delivery: %s\n", delivery.Fee())
	}
	fmt.Fprintf(&b, "Tip:      %s\n", payment.Tip())
	fmt.Fprintf(&b, "Total:    %s (%s)\n", payment.Total(), payment.Method())
	if payment.Method() == order.Cash {
		fmt.Fprintf(&b, "Change:   %s\n", payment.Change())
	}

	path := filepath.Join(r.spoolDir, fmt.Sprintf("receipt-%s.txt", aggregate.ID()))
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write receipt: %w", err)
	}
	return nil
}
