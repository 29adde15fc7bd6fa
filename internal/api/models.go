package api

import (
	"github.com/phrazzld/ecommerce-api/internal/domain"
)

// UserResponse is the wire form of a user. Unset optional fields render as null.
type UserResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        *string `json:"email"`
	StreetNumber *int64  `json:"street_number"`
	StreetName   *string `json:"street_name"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	ZipCode      *string `json:"zip_code"`
}

// ProductResponse is the wire form of a product.
type ProductResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// OrderResponse is the wire form of an order. OrderDate uses
// domain.TimestampLayout.
type OrderResponse struct {
	ID        int64  `json:"id"`
	OrderDate string `json:"order_date"`
	UserID    int64  `json:"user_id"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		StreetNumber: u.StreetNumber,
		StreetName:   u.StreetName,
		City:         u.City,
		State:        u.State,
		ZipCode:      u.ZipCode,
	}
}

func usersToResponse(users []domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, userToResponse(&users[i]))
	}
	return out
}

func productToResponse(p *domain.Product) ProductResponse {
	return ProductResponse{ID: p.ID, Name: p.Name, Price: p.Price}
}

func productsToResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, productToResponse(&products[i]))
	}
	return out
}

func orderToResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		OrderDate: domain.FormatTimestamp(o.OrderDate),
		UserID:    o.UserID,
	}
}

func ordersToResponse(orders []domain.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, orderToResponse(&orders[i]))
	}
	return out
}
