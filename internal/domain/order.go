package domain

import "time"

// Order field names as they appear on the wire and in the orders table.
const (
	OrderFieldOrderDate = "order_date"
	OrderFieldUserID    = "user_id"
	OrderFieldProductID = "product_id"
)

// Order belongs to exactly one User. Its products live in the order_products
// join table and are loaded with an explicit query, never with the order.
type Order struct {
	ID        int64
	OrderDate time.Time
	UserID    int64
}

// OrderPatch is a validated order payload.
type OrderPatch struct {
	OrderDate Optional[time.Time]
	UserID    Optional[int64]
}

// ParseOrder validates an order payload. It does not check that the user
// exists; that lookup belongs to the transaction that writes the order.
func ParseOrder(p Payload, partial bool) (OrderPatch, error) {
	r := newSchemaReader(p, partial)
	patch := OrderPatch{
		OrderDate: r.Time(OrderFieldOrderDate, true),
		UserID:    r.Int(OrderFieldUserID, true, ""),
	}
	if err := r.err(); err != nil {
		return OrderPatch{}, err
	}
	return patch, nil
}

// Order builds a new, unsaved Order from a fully validated patch.
func (p OrderPatch) Order() *Order {
	o := &Order{}
	p.Apply(o)
	return o
}

// Apply copies the supplied fields onto o.
func (p OrderPatch) Apply(o *Order) {
	if p.OrderDate.Set && p.OrderDate.Value != nil {
		o.OrderDate = *p.OrderDate.Value
	}
	if p.UserID.Set && p.UserID.Value != nil {
		o.UserID = *p.UserID.Value
	}
}

// IsEmpty reports whether the patch supplies no fields.
func (p OrderPatch) IsEmpty() bool {
	return !p.OrderDate.Set && !p.UserID.Set
}

// ParseProductLink reads the product_id of an order/product link request.
// A missing or null product_id yields ErrProductIDRequired; a value of the
// wrong type yields a ValidationError.
func ParseProductLink(p Payload) (int64, error) {
	raw, ok := p[OrderFieldProductID]
	if !ok || isJSONNull(raw) {
		return 0, ErrProductIDRequired
	}

	r := newSchemaReader(p, false)
	id := r.Int(OrderFieldProductID, true, "")
	if err := r.err(); err != nil {
		return 0, err
	}
	return *id.Value, nil
}
