package resources

import (
	"context"
	"net/url"

	"github.com/jrsteele09/greenos-console/apiclient"
)

type PlantScan struct {
	ID             string         `json:"id"`
	FarmID         string         `json:"farm_id"`
	CropCycleID    string         `json:"crop_cycle_id,omitempty"`
	ZoneID         string         `json:"zone_id,omitempty"`
	ImageURL       string         `json:"image_url"`
	ScanType       string         `json:"scan_type"`
	ScannedBy      string         `json:"scanned_by,omitempty"`
	AnalysisStatus string         `json:"analysis_status"`
	AnalysisResult map[string]any `json:"analysis_result,omitempty"`
	CreatedAt      apiclient.Time `json:"created_at"`
}

type PlantScanInput struct {
	ImageURL    string `json:"image_url"`
	ScanType    string `json:"scan_type,omitempty"`
	CropCycleID string `json:"crop_cycle_id,omitempty"`
	ZoneID      string `json:"zone_id,omitempty"`
}

// Advisory holds free-form recommendation records produced from recent scans.
type Advisory struct {
	Recommendations          []map[string]any `json:"recommendations"`
	YieldPredictions         []map[string]any `json:"yield_predictions"`
	EnvironmentalSuggestions []map[string]any `json:"environmental_suggestions"`
}

type AnomalyStat struct {
	AnomalyType   string  `json:"anomaly_type"`
	Count         int     `json:"count"`
	AvgConfidence float64 `json:"avg_confidence"`
}

type Vision struct {
	client *apiclient.Client
}

func (v *Vision) Scans(ctx context.Context, farmID string, filter url.Values) (apiclient.Page[PlantScan], error) {
	return get[apiclient.Page[PlantScan]](ctx, v.client, farmPath(farmID, "vision", "scans"), filter)
}

func (v *Vision) CreateScan(ctx context.Context, farmID string, in PlantScanInput) (PlantScan, error) {
	return post[PlantScan](ctx, v.client, farmPath(farmID, "vision", "scans"), in)
}

func (v *Vision) Advisory(ctx context.Context, farmID string) (Advisory, error) {
	return get[Advisory](ctx, v.client, farmPath(farmID, "vision", "advisory"), nil)
}

func (v *Vision) AnomalyStats(ctx context.Context, farmID string) ([]AnomalyStat, error) {
	return get[[]AnomalyStat](ctx, v.client, farmPath(farmID, "vision", "anomaly-stats"), nil)
}
