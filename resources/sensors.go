package resources

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/jrsteele09/greenos-console/apiclient"
)

type Sensor struct {
	ID                string          `json:"id"`
	FarmID            string          `json:"farm_id"`
	ZoneID            string          `json:"zone_id,omitempty"`
	Name              string          `json:"name"`
	SensorType        string          `json:"sensor_type"`
	Unit              string          `json:"unit,omitempty"`
	MQTTTopic         string          `json:"mqtt_topic,omitempty"`
	HardwareID        string          `json:"hardware_id,omitempty"`
	CalibrationOffset float64         `json:"calibration_offset"`
	IsActive          bool            `json:"is_active"`
	LastReadingAt     *apiclient.Time `json:"last_reading_at,omitempty"`
	LastValue         *float64        `json:"last_value,omitempty"`
	CreatedAt         apiclient.Time  `json:"created_at"`
}

type SensorInput struct {
	Name              string  `json:"name"`
	SensorType        string  `json:"sensor_type"`
	Unit              string  `json:"unit,omitempty"`
	ZoneID            string  `json:"zone_id,omitempty"`
	MQTTTopic         string  `json:"mqtt_topic,omitempty"`
	HardwareID        string  `json:"hardware_id,omitempty"`
	CalibrationOffset float64 `json:"calibration_offset"`
}

// SensorSummary is the latest value per sensor, as shown on the dashboard.
type SensorSummary struct {
	SensorID        string          `json:"sensor_id"`
	SensorType      string          `json:"sensor_type"`
	Name            string          `json:"name"`
	LatestValue     *float64        `json:"latest_value,omitempty"`
	LatestReadingAt *apiclient.Time `json:"latest_reading_at,omitempty"`
	Status          string          `json:"status"`
	ZoneName        string          `json:"zone_name,omitempty"`
}

type Reading struct {
	ID         int64          `json:"id"`
	SensorID   string         `json:"sensor_id"`
	Value      float64        `json:"value"`
	RawValue   *float64       `json:"raw_value,omitempty"`
	RecordedAt apiclient.Time `json:"recorded_at"`
	ReceivedAt apiclient.Time `json:"received_at"`
}

// ReadingQuery filters a sensor's readings. Zero values are not sent.
type ReadingQuery struct {
	Start time.Time
	End   time.Time
	Limit int
}

func (q ReadingQuery) values() url.Values {
	values := url.Values{}
	if !q.Start.IsZero() {
		values.Set("start", q.Start.UTC().Format(time.RFC3339))
	}
	if !q.End.IsZero() {
		values.Set("end", q.End.UTC().Format(time.RFC3339))
	}
	if q.Limit > 0 {
		values.Set("limit", strconv.Itoa(q.Limit))
	}
	return values
}

type Sensors struct {
	client *apiclient.Client
}

// List returns the farm's sensors, optionally filtered by zone_id or sensor_type.
func (s *Sensors) List(ctx context.Context, farmID string, filter url.Values) ([]Sensor, error) {
	return get[[]Sensor](ctx, s.client, farmPath(farmID, "sensors", "/"), filter)
}

func (s *Sensors) Get(ctx context.Context, farmID, sensorID string) (Sensor, error) {
	return get[Sensor](ctx, s.client, farmPath(farmID, "sensors", url.PathEscape(sensorID)), nil)
}

func (s *Sensors) Create(ctx context.Context, farmID string, in SensorInput) (Sensor, error) {
	return post[Sensor](ctx, s.client, farmPath(farmID, "sensors", "/"), in)
}

func (s *Sensors) Summary(ctx context.Context, farmID string) ([]SensorSummary, error) {
	return get[[]SensorSummary](ctx, s.client, farmPath(farmID, "sensors", "summary"), nil)
}

func (s *Sensors) Readings(ctx context.Context, farmID, sensorID string, q ReadingQuery) ([]Reading, error) {
	return get[[]Reading](ctx, s.client, farmPath(farmID, "sensors", url.PathEscape(sensorID), "readings"), q.values())
}

// RecordReading posts a manual reading. A zero recordedAt means now.
func (s *Sensors) RecordReading(ctx context.Context, farmID, sensorID string, value float64, recordedAt time.Time) (Reading, error) {
	if recordedAt.IsZero() {
		recordedAt = time.Now()
	}
	body := map[string]any{"value": value, "recorded_at": recordedAt.UTC().Format(time.RFC3339)}
	return post[Reading](ctx, s.client, farmPath(farmID, "sensors", url.PathEscape(sensorID), "readings"), body)
}
