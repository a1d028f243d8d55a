package resources

import (
	"context"
	"net/url"

	"github.com/jrsteele09/greenos-console/apiclient"
)

const cropsPath = "/crops"

type CropProfile struct {
	ID                string         `json:"id"`
	Name              string         `json:"name"`
	ScientificName    string         `json:"scientific_name,omitempty"`
	Category          string         `json:"category"`
	DaysToGermination int            `json:"days_to_germination"`
	DaysToHarvest     int            `json:"days_to_harvest"`
	IdealPHMin        float64        `json:"ideal_ph_min"`
	IdealPHMax        float64        `json:"ideal_ph_max"`
	IdealECMin        float64        `json:"ideal_ec_min"`
	IdealECMax        float64        `json:"ideal_ec_max"`
	IdealTempMin      float64        `json:"ideal_temp_min"`
	IdealTempMax      float64        `json:"ideal_temp_max"`
	IdealHumidityMin  float64        `json:"ideal_humidity_min"`
	IdealHumidityMax  float64        `json:"ideal_humidity_max"`
	IdealLightHours   *float64       `json:"ideal_light_hours,omitempty"`
	Notes             string         `json:"notes,omitempty"`
	IsSystemDefault   bool           `json:"is_system_default"`
	CreatedAt         apiclient.Time `json:"created_at"`
}

type CropProfileInput struct {
	Name              string   `json:"name"`
	ScientificName    string   `json:"scientific_name,omitempty"`
	Category          string   `json:"category"`
	DaysToGermination int      `json:"days_to_germination"`
	DaysToHarvest     int      `json:"days_to_harvest"`
	IdealPHMin        float64  `json:"ideal_ph_min"`
	IdealPHMax        float64  `json:"ideal_ph_max"`
	IdealECMin        float64  `json:"ideal_ec_min"`
	IdealECMax        float64  `json:"ideal_ec_max"`
	IdealTempMin      float64  `json:"ideal_temp_min"`
	IdealTempMax      float64  `json:"ideal_temp_max"`
	IdealHumidityMin  float64  `json:"ideal_humidity_min"`
	IdealHumidityMax  float64  `json:"ideal_humidity_max"`
	IdealLightHours   *float64 `json:"ideal_light_hours,omitempty"`
	Notes             string   `json:"notes,omitempty"`
}

type CropCycle struct {
	ID                string          `json:"id"`
	FarmID            string          `json:"farm_id"`
	ZoneID            string          `json:"zone_id,omitempty"`
	CropProfileID     string          `json:"crop_profile_id"`
	BatchCode         string          `json:"batch_code"`
	SeedSource        string          `json:"seed_source,omitempty"`
	QuantityPlanted   int             `json:"quantity_planted"`
	GerminationCount  *int            `json:"germination_count,omitempty"`
	GerminationRate   *float64        `json:"germination_rate,omitempty"`
	SeededAt          apiclient.Date  `json:"seeded_at"`
	ExpectedHarvestAt *apiclient.Date `json:"expected_harvest_at,omitempty"`
	ActualHarvestAt   *apiclient.Date `json:"actual_harvest_at,omitempty"`
	Status            string          `json:"status"`
	Notes             string          `json:"notes,omitempty"`
	CropProfile       *CropProfile    `json:"crop_profile,omitempty"`
	CreatedAt         apiclient.Time  `json:"created_at"`
}

// CropName is the profile name when the cycle embeds it, else the batch code.
func (c CropCycle) CropName() string {
	if c.CropProfile != nil && c.CropProfile.Name != "" {
		return c.CropProfile.Name
	}
	return c.BatchCode
}

type CropCycleInput struct {
	FarmID          string         `json:"farm_id"`
	CropProfileID   string         `json:"crop_profile_id"`
	ZoneID          string         `json:"zone_id,omitempty"`
	SeedSource      string         `json:"seed_source,omitempty"`
	SeedLotNumber   string         `json:"seed_lot_number,omitempty"`
	QuantityPlanted int            `json:"quantity_planted"`
	SeededAt        apiclient.Date `json:"seeded_at"`
	Notes           string         `json:"notes,omitempty"`
}

type GrowthLog struct {
	ID           string         `json:"id"`
	CropCycleID  string         `json:"crop_cycle_id"`
	LoggedBy     string         `json:"logged_by"`
	LogDate      apiclient.Date `json:"log_date"`
	HeightCM     *float64       `json:"height_cm,omitempty"`
	LeafCount    *int           `json:"leaf_count,omitempty"`
	HealthRating int            `json:"health_rating"`
	Notes        string         `json:"notes,omitempty"`
	CreatedAt    apiclient.Time `json:"created_at"`
}

// GrowthLogInput records an observation. HealthRating is 1 to 5.
type GrowthLogInput struct {
	LogDate      apiclient.Date `json:"log_date"`
	HeightCM     *float64       `json:"height_cm,omitempty"`
	LeafCount    *int           `json:"leaf_count,omitempty"`
	HealthRating int            `json:"health_rating"`
	Notes        string         `json:"notes,omitempty"`
}

// Crops covers crop profiles and cycles. Unlike the other resources these
// live under /crops and take the farm as a query parameter.
type Crops struct {
	client *apiclient.Client
}

func (c *Crops) Profiles(ctx context.Context) ([]CropProfile, error) {
	return get[[]CropProfile](ctx, c.client, cropsPath+"/profiles", nil)
}

func (c *Crops) CreateProfile(ctx context.Context, in CropProfileInput) (CropProfile, error) {
	return post[CropProfile](ctx, c.client, cropsPath+"/profiles", in)
}

// Cycles pages through a farm's crop cycles; filter may carry status, skip and limit.
func (c *Crops) Cycles(ctx context.Context, farmID string, filter url.Values) (apiclient.Page[CropCycle], error) {
	query := url.Values{}
	for k, v := range filter {
		query[k] = v
	}
	query.Set("farm_id", farmID)
	return get[apiclient.Page[CropCycle]](ctx, c.client, cropsPath+"/cycles", query)
}

func (c *Crops) CreateCycle(ctx context.Context, in CropCycleInput) (CropCycle, error) {
	return post[CropCycle](ctx, c.client, cropsPath+"/cycles", in)
}

func (c *Crops) GetCycle(ctx context.Context, cycleID string) (CropCycle, error) {
	return get[CropCycle](ctx, c.client, cyclePath(cycleID), nil)
}

func (c *Crops) GrowthLogs(ctx context.Context, cycleID string) ([]GrowthLog, error) {
	return get[[]GrowthLog](ctx, c.client, cyclePath(cycleID)+"/growth-logs", nil)
}

func (c *Crops) AddGrowthLog(ctx context.Context, cycleID string, in GrowthLogInput) (GrowthLog, error) {
	return post[GrowthLog](ctx, c.client, cyclePath(cycleID)+"/growth-logs", in)
}

func cyclePath(cycleID string) string {
	return cropsPath + "/cycles/" + url.PathEscape(cycleID)
}
