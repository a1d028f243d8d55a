package resources

import (
	"context"
	"net/url"

	"github.com/jrsteele09/greenos-console/apiclient"
)

type InventoryItem struct {
	ID               string         `json:"id"`
	FarmID           string         `json:"farm_id"`
	Name             string         `json:"name"`
	Category         string         `json:"category"`
	SKU              string         `json:"sku,omitempty"`
	Unit             string         `json:"unit"`
	CurrentStock     float64        `json:"current_stock"`
	ReorderThreshold *float64       `json:"reorder_threshold,omitempty"`
	ReorderQuantity  *float64       `json:"reorder_quantity,omitempty"`
	UnitCost         *float64       `json:"unit_cost,omitempty"`
	Supplier         string         `json:"supplier,omitempty"`
	CreatedAt        apiclient.Time `json:"created_at"`
}

// LowStock reports whether stock is at or under the reorder threshold.
func (i InventoryItem) LowStock() bool {
	return i.ReorderThreshold != nil && i.CurrentStock <= *i.ReorderThreshold
}

type InventoryItemInput struct {
	Name             string   `json:"name"`
	Category         string   `json:"category"`
	SKU              string   `json:"sku,omitempty"`
	Unit             string   `json:"unit"`
	CurrentStock     float64  `json:"current_stock"`
	ReorderThreshold *float64 `json:"reorder_threshold,omitempty"`
	ReorderQuantity  *float64 `json:"reorder_quantity,omitempty"`
	UnitCost         *float64 `json:"unit_cost,omitempty"`
	Supplier         string   `json:"supplier,omitempty"`
}

type StockTransaction struct {
	ID              string         `json:"id"`
	InventoryItemID string         `json:"inventory_item_id"`
	TransactionType string         `json:"transaction_type"`
	Quantity        float64        `json:"quantity"`
	Reference       string         `json:"reference,omitempty"`
	PerformedBy     string         `json:"performed_by"`
	CreatedAt       apiclient.Time `json:"created_at"`
}

// StockTransactionInput adjusts stock. TransactionType is e.g. "purchase", "usage" or "adjustment".
type StockTransactionInput struct {
	TransactionType string  `json:"transaction_type"`
	Quantity        float64 `json:"quantity"`
	Reference       string  `json:"reference,omitempty"`
}

type Inventory struct {
	client *apiclient.Client
}

func (i *Inventory) List(ctx context.Context, farmID string, filter url.Values) (apiclient.Page[InventoryItem], error) {
	return get[apiclient.Page[InventoryItem]](ctx, i.client, farmPath(farmID, "inventory", "items"), filter)
}

func (i *Inventory) Create(ctx context.Context, farmID string, in InventoryItemInput) (InventoryItem, error) {
	return post[InventoryItem](ctx, i.client, farmPath(farmID, "inventory", "items"), in)
}

func (i *Inventory) LowStock(ctx context.Context, farmID string) ([]InventoryItem, error) {
	return get[[]InventoryItem](ctx, i.client, farmPath(farmID, "inventory", "items", "low-stock"), nil)
}

func (i *Inventory) CreateTransaction(ctx context.Context, farmID, itemID string, in StockTransactionInput) (StockTransaction, error) {
	return post[StockTransaction](ctx, i.client, farmPath(farmID, "inventory", "items", url.PathEscape(itemID), "transactions"), in)
}
