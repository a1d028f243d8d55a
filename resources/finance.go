package resources

import (
	"context"
	"net/url"

	"github.com/jrsteele09/greenos-console/apiclient"
)

type Cost struct {
	ID          string         `json:"id"`
	FarmID      string         `json:"farm_id"`
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Amount      float64        `json:"amount"`
	Date        apiclient.Date `json:"date"`
	CropCycleID string         `json:"crop_cycle_id,omitempty"`
	ZoneID      string         `json:"zone_id,omitempty"`
	CreatedBy   string         `json:"created_by"`
	CreatedAt   apiclient.Time `json:"created_at"`
}

type CostInput struct {
	Category    string         `json:"category"`
	Description string         `json:"description"`
	Amount      float64        `json:"amount"`
	Date        apiclient.Date `json:"date"`
	CropCycleID string         `json:"crop_cycle_id,omitempty"`
	ZoneID      string         `json:"zone_id,omitempty"`
}

type RevenueSummary struct {
	TotalRevenue float64 `json:"total_revenue"`
	TotalCosts   float64 `json:"total_costs"`
	NetProfit    float64 `json:"net_profit"`
	ProfitMargin float64 `json:"profit_margin"`
}

type CropProfit struct {
	CropName string  `json:"crop_name"`
	Revenue  float64 `json:"revenue"`
	Costs    float64 `json:"costs"`
	Profit   float64 `json:"profit"`
	Margin   float64 `json:"margin"`
	Cycles   int     `json:"cycles"`
}

// Period bounds finance queries by day, both ends inclusive. Nil bounds are open.
type Period struct {
	Start *apiclient.Date
	End   *apiclient.Date
}

// Values renders the period as start_date and end_date query parameters.
func (p Period) Values() url.Values {
	values := url.Values{}
	if p.Start != nil {
		values.Set("start_date", p.Start.String())
	}
	if p.End != nil {
		values.Set("end_date", p.End.String())
	}
	return values
}

type Finance struct {
	client *apiclient.Client
}

// Costs pages through costs; filter may carry category, start_date, end_date, skip and limit.
func (f *Finance) Costs(ctx context.Context, farmID string, filter url.Values) (apiclient.Page[Cost], error) {
	return get[apiclient.Page[Cost]](ctx, f.client, farmPath(farmID, "finance", "costs"), filter)
}

func (f *Finance) CreateCost(ctx context.Context, farmID string, in CostInput) (Cost, error) {
	return post[Cost](ctx, f.client, farmPath(farmID, "finance", "costs"), in)
}

func (f *Finance) RevenueSummary(ctx context.Context, farmID string, period Period) (RevenueSummary, error) {
	return get[RevenueSummary](ctx, f.client, farmPath(farmID, "finance", "revenue-summary"), period.Values())
}

func (f *Finance) ProfitByCrop(ctx context.Context, farmID string) ([]CropProfit, error) {
	return get[[]CropProfit](ctx, f.client, farmPath(farmID, "finance", "profit-by-crop"), nil)
}
