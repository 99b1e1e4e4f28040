package cart

import (
	"strings"

	"github.com/dmelo/assistech-api/pkg/apperror"
	"github.com/google/uuid"
)

// LineItem is one product/quantity/price entry in a cart. Immutable once
// added, except for removal; merging happens through AddItem.
type LineItem struct {
	ID          uuid.UUID
	ProductID   *uuid.UUID
	Description string
	Quantity    int
	UnitPrice   int64 // cents
	Subtotal    int64 // cents
}

// Cart accumulates line items for one sale-in-progress. Purely in-memory,
// scoped to a single editing session; no persistence, no I/O.
type Cart struct {
	items []LineItem
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{}
}

// AddItem appends a line item, or merges it into an existing line with the
// same product identity by summing quantity and subtotal. Rejects blank
// descriptions, non-positive quantities and non-positive unit prices
// without mutating the cart.
func (c *Cart) AddItem(productID *uuid.UUID, description string, quantity int, unitPrice int64) (*LineItem, error) {
	description = strings.TrimSpace(description)

	var fieldErrs []apperror.FieldError
	if description == "" {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "description", Message: "Description is required"})
	}
	if quantity <= 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "quantity", Message: "Quantity must be positive"})
	}
	if unitPrice <= 0 {
		fieldErrs = append(fieldErrs, apperror.FieldError{Field: "unit_price", Message: "Unit price must be positive"})
	}
	if len(fieldErrs) > 0 {
		return nil, apperror.NewValidationError(fieldErrs)
	}

	key := identityKey(productID, description)
	for i := range c.items {
		if identityKey(c.items[i].ProductID, c.items[i].Description) == key {
			c.items[i].Quantity += quantity
			c.items[i].Subtotal += int64(quantity) * unitPrice
			return &c.items[i], nil
		}
	}

	item := LineItem{
		ID:          uuid.New(),
		ProductID:   productID,
		Description: description,
		Quantity:    quantity,
		UnitPrice:   unitPrice,
		Subtotal:    int64(quantity) * unitPrice,
	}
	c.items = append(c.items, item)
	return &c.items[len(c.items)-1], nil
}

// RemoveItem removes a line by identity. Removing an absent line is a no-op.
func (c *Cart) RemoveItem(id uuid.UUID) {
	for i := range c.items {
		if c.items[i].ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

// Size returns the number of lines.
func (c *Cart) Size() int {
	return len(c.items)
}

// Total returns the sum of all subtotals in cents. Recomputed on every
// call; the total is never stored separately from the lines.
func (c *Cart) Total() int64 {
	var total int64
	for _, item := range c.items {
		total += item.Subtotal
	}
	return total
}

// identityKey defines product identity for merging: the product ID when the
// line is backed by a catalog product, otherwise the normalized description.
func identityKey(productID *uuid.UUID, description string) string {
	if productID != nil {
		return "p:" + productID.String()
	}
	return "d:" + strings.ToLower(description)
}
