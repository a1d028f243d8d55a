package resources

import (
	"context"
	"net/url"

	"github.com/jrsteele09/greenos-console/apiclient"
)

type Harvest struct {
	ID           string         `json:"id"`
	CropCycleID  string         `json:"crop_cycle_id"`
	HarvestedBy  string         `json:"harvested_by"`
	HarvestDate  apiclient.Date `json:"harvest_date"`
	WeightKG     float64        `json:"weight_kg"`
	Grade        string         `json:"grade"`
	QualityNotes string         `json:"quality_notes,omitempty"`
	WasteKG      float64        `json:"waste_kg"`
	CreatedAt    apiclient.Time `json:"created_at"`
}

type HarvestInput struct {
	CropCycleID  string         `json:"crop_cycle_id"`
	HarvestDate  apiclient.Date `json:"harvest_date"`
	WeightKG     float64        `json:"weight_kg"`
	Grade        string         `json:"grade,omitempty"`
	QualityNotes string         `json:"quality_notes,omitempty"`
	WasteKG      float64        `json:"waste_kg,omitempty"`
}

type YieldReport struct {
	CropName         string  `json:"crop_name"`
	ZoneName         string  `json:"zone_name,omitempty"`
	TotalHarvestedKG float64 `json:"total_harvested_kg"`
	ExpectedKG       float64 `json:"expected_kg"`
	VariancePercent  float64 `json:"variance_percent"`
	CycleCount       int     `json:"cycle_count"`
}

// HarvestCalendarEntry is an expected or actual harvest day.
type HarvestCalendarEntry struct {
	Date        apiclient.Date `json:"date"`
	CropName    string         `json:"crop_name"`
	BatchCode   string         `json:"batch_code"`
	ExpectedKG  *float64       `json:"expected_kg,omitempty"`
	IsActual    bool           `json:"is_actual"`
	CropCycleID string         `json:"crop_cycle_id"`
}

type Harvests struct {
	client *apiclient.Client
}

func (h *Harvests) List(ctx context.Context, farmID string, filter url.Values) (apiclient.Page[Harvest], error) {
	return get[apiclient.Page[Harvest]](ctx, h.client, farmPath(farmID, "harvests", "/"), filter)
}

func (h *Harvests) Create(ctx context.Context, farmID string, in HarvestInput) (Harvest, error) {
	return post[Harvest](ctx, h.client, farmPath(farmID, "harvests", "/"), in)
}

func (h *Harvests) YieldReport(ctx context.Context, farmID string) ([]YieldReport, error) {
	return get[[]YieldReport](ctx, h.client, farmPath(farmID, "harvests", "yield-report"), nil)
}

func (h *Harvests) Calendar(ctx context.Context, farmID string) ([]HarvestCalendarEntry, error) {
	return get[[]HarvestCalendarEntry](ctx, h.client, farmPath(farmID, "harvests", "calendar"), nil)
}
