package resources

import (
	"context"
	"net/url"

	"github.com/jrsteele09/greenos-console/apiclient"
)

type LightZone struct {
	ID                  string         `json:"id"`
	ZoneID              string         `json:"zone_id"`
	Name                string         `json:"name"`
	FixtureType         string         `json:"fixture_type,omitempty"`
	MaxIntensityPercent int            `json:"max_intensity_percent"`
	CurrentState        map[string]any `json:"current_state,omitempty"`
	IsActive            bool           `json:"is_active"`
	CreatedAt           apiclient.Time `json:"created_at"`
}

type LightSchedule struct {
	ID            string         `json:"id"`
	LightZoneID   string         `json:"light_zone_id"`
	CropProfileID string         `json:"crop_profile_id,omitempty"`
	Name          string         `json:"name"`
	Schedule      any            `json:"schedule"`
	IsActive      bool           `json:"is_active"`
	CreatedAt     apiclient.Time `json:"created_at"`
}

// LightCommand switches a light zone. Action is "on", "off" or "set_intensity".
type LightCommand struct {
	Action    string         `json:"action"`
	Intensity *int           `json:"intensity,omitempty"`
	Spectrum  map[string]any `json:"spectrum,omitempty"`
}

type Lighting struct {
	client *apiclient.Client
}

func (l *Lighting) Zones(ctx context.Context, farmID string) ([]LightZone, error) {
	return get[[]LightZone](ctx, l.client, farmPath(farmID, "lighting", "zones"), nil)
}

func (l *Lighting) Schedules(ctx context.Context, farmID string) ([]LightSchedule, error) {
	return get[[]LightSchedule](ctx, l.client, farmPath(farmID, "lighting", "schedules"), nil)
}

// Command sends cmd to a light zone and returns the backend's confirmation message.
func (l *Lighting) Command(ctx context.Context, farmID, lightZoneID string, cmd LightCommand) (string, error) {
	out, err := post[struct {
		Message string `json:"message"`
	}](ctx, l.client, farmPath(farmID, "lighting", "zones", url.PathEscape(lightZoneID), "command"), cmd)
	return out.Message, err
}
