package resources

import (
	"context"
	"net/url"

	"github.com/jrsteele09/greenos-console/apiclient"
)

type Customer struct {
	ID           string         `json:"id"`
	FarmID       string         `json:"farm_id"`
	Name         string         `json:"name"`
	Company      string         `json:"company,omitempty"`
	Email        string         `json:"email,omitempty"`
	Phone        string         `json:"phone,omitempty"`
	Address      string         `json:"address,omitempty"`
	CustomerType string         `json:"customer_type"`
	Notes        string         `json:"notes,omitempty"`
	IsActive     bool           `json:"is_active"`
	CreatedAt    apiclient.Time `json:"created_at"`
}

type CustomerInput struct {
	Name         string `json:"name"`
	Company      string `json:"company,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Address      string `json:"address,omitempty"`
	CustomerType string `json:"customer_type"`
	Notes        string `json:"notes,omitempty"`
}

type OrderItem struct {
	ID            string  `json:"id"`
	OrderID       string  `json:"order_id"`
	CropProfileID string  `json:"crop_profile_id"`
	QuantityKG    float64 `json:"quantity_kg"`
	UnitPrice     float64 `json:"unit_price"`
	TotalPrice    float64 `json:"total_price"`
}

type Order struct {
	ID           string          `json:"id"`
	FarmID       string          `json:"farm_id"`
	CustomerID   string          `json:"customer_id"`
	OrderNumber  string          `json:"order_number"`
	Status       string          `json:"status"`
	OrderDate    apiclient.Date  `json:"order_date"`
	DeliveryDate *apiclient.Date `json:"delivery_date,omitempty"`
	TotalAmount  float64         `json:"total_amount"`
	Notes        string          `json:"notes,omitempty"`
	Items        []OrderItem     `json:"items"`
	CreatedAt    apiclient.Time  `json:"created_at"`
}

type OrderItemInput struct {
	CropProfileID string  `json:"crop_profile_id"`
	QuantityKG    float64 `json:"quantity_kg"`
	UnitPrice     float64 `json:"unit_price"`
}

type OrderInput struct {
	CustomerID   string           `json:"customer_id"`
	OrderDate    apiclient.Date   `json:"order_date"`
	DeliveryDate *apiclient.Date  `json:"delivery_date,omitempty"`
	Items        []OrderItemInput `json:"items"`
	Notes        string           `json:"notes,omitempty"`
}

type Orders struct {
	client *apiclient.Client
}

// List pages through orders; filter may carry status, customer_id, skip and limit.
func (o *Orders) List(ctx context.Context, farmID string, filter url.Values) (apiclient.Page[Order], error) {
	return get[apiclient.Page[Order]](ctx, o.client, farmPath(farmID, "orders", "/"), filter)
}

func (o *Orders) Create(ctx context.Context, farmID string, in OrderInput) (Order, error) {
	return post[Order](ctx, o.client, farmPath(farmID, "orders", "/"), in)
}

func (o *Orders) Customers(ctx context.Context, farmID string) (apiclient.Page[Customer], error) {
	return get[apiclient.Page[Customer]](ctx, o.client, farmPath(farmID, "orders", "customers"), nil)
}

func (o *Orders) CreateCustomer(ctx context.Context, farmID string, in CustomerInput) (Customer, error) {
	return post[Customer](ctx, o.client, farmPath(farmID, "orders", "customers"), in)
}
