package resources

import (
	"context"
	"net/url"

	"github.com/jrsteele09/greenos-console/apiclient"
)

type DosingPump struct {
	ID          string          `json:"id"`
	FarmID      string          `json:"farm_id"`
	ZoneID      string          `json:"zone_id,omitempty"`
	Name        string          `json:"name"`
	PumpType    string          `json:"pump_type"`
	MLPerSecond float64         `json:"ml_per_second"`
	IsActive    bool            `json:"is_active"`
	LastDoseAt  *apiclient.Time `json:"last_dose_at,omitempty"`
	CreatedAt   apiclient.Time  `json:"created_at"`
}

type DosingRecipe struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	CropProfileID  string         `json:"crop_profile_id,omitempty"`
	GrowthStage    string         `json:"growth_stage,omitempty"`
	TargetPHMin    float64        `json:"target_ph_min"`
	TargetPHMax    float64        `json:"target_ph_max"`
	TargetEC       float64        `json:"target_ec"`
	NutrientRatios map[string]any `json:"nutrient_ratios,omitempty"`
	IsActive       bool           `json:"is_active"`
	CreatedAt      apiclient.Time `json:"created_at"`
}

type DosingEvent struct {
	ID                  string         `json:"id"`
	PumpID              string         `json:"pump_id"`
	RecipeID            string         `json:"recipe_id,omitempty"`
	Trigger             string         `json:"trigger"`
	VolumeML            float64        `json:"volume_ml"`
	DurationSeconds     float64        `json:"duration_seconds"`
	SensorReadingBefore float64        `json:"sensor_reading_before"`
	SensorReadingAfter  *float64       `json:"sensor_reading_after,omitempty"`
	Status              string         `json:"status"`
	InitiatedBy         string         `json:"initiated_by,omitempty"`
	CreatedAt           apiclient.Time `json:"created_at"`
}

type Dosing struct {
	client *apiclient.Client
}

func (d *Dosing) Pumps(ctx context.Context, farmID string) ([]DosingPump, error) {
	return get[[]DosingPump](ctx, d.client, farmPath(farmID, "dosing", "pumps"), nil)
}

func (d *Dosing) Recipes(ctx context.Context, farmID string) ([]DosingRecipe, error) {
	return get[[]DosingRecipe](ctx, d.client, farmPath(farmID, "dosing", "recipes"), nil)
}

// Dose runs a pump manually for volumeML millilitres.
func (d *Dosing) Dose(ctx context.Context, farmID, pumpID string, volumeML float64) (DosingEvent, error) {
	body := map[string]float64{"volume_ml": volumeML}
	return post[DosingEvent](ctx, d.client, farmPath(farmID, "dosing", "pumps", url.PathEscape(pumpID), "dose"), body)
}

func (d *Dosing) Events(ctx context.Context, farmID string, filter url.Values) (apiclient.Page[DosingEvent], error) {
	return get[apiclient.Page[DosingEvent]](ctx, d.client, farmPath(farmID, "dosing", "events"), filter)
}
