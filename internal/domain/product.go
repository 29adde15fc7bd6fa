package domain

// Product field names as they appear on the wire and in the products table.
const (
	ProductFieldName  = "name"
	ProductFieldPrice = "price"
)

// Product is an item that can be placed on orders.
type Product struct {
	ID    int64
	Name  string
	Price float64
}

// ProductPatch is a validated product payload.
type ProductPatch struct {
	Name  Optional[string]
	Price Optional[float64]
}

// ParseProduct validates a product payload. Both fields are required in a
// full parse; neither may be null. Any numeric price is accepted, including
// negative ones.
func ParseProduct(p Payload, partial bool) (ProductPatch, error) {
	r := newSchemaReader(p, partial)
	patch := ProductPatch{
		Name:  r.String(ProductFieldName, true, "max=100"),
		Price: r.Float(ProductFieldPrice, true, ""),
	}
	if err := r.err(); err != nil {
		return ProductPatch{}, err
	}
	return patch, nil
}

// Product builds a new, unsaved Product from a fully validated patch.
func (p ProductPatch) Product() *Product {
	prod := &Product{}
	p.Apply(prod)
	return prod
}

// Apply copies the supplied fields onto prod.
func (p ProductPatch) Apply(prod *Product) {
	if p.Name.Set && p.Name.Value != nil {
		prod.Name = *p.Name.Value
	}
	if p.Price.Set && p.Price.Value != nil {
		prod.Price = *p.Price.Value
	}
}

// IsEmpty reports whether the patch supplies no fields.
func (p ProductPatch) IsEmpty() bool {
	return !p.Name.Set && !p.Price.Set
}
