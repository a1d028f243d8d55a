package farms

import (
	"github.com/jrsteele09/greenos-console/apiclient"
)

type Farm struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Location  string         `json:"location,omitempty"`
	Latitude  *float64       `json:"latitude,omitempty"`
	Longitude *float64       `json:"longitude,omitempty"`
	Timezone  string         `json:"timezone,omitempty"`
	OwnerID   string         `json:"owner_id,omitempty"`
	Settings  map[string]any `json:"settings,omitempty"`
	IsActive  bool           `json:"is_active"`
	CreatedAt apiclient.Time `json:"created_at"`
	UpdatedAt apiclient.Time `json:"updated_at"`
}

type Zone struct {
	ID              string         `json:"id"`
	FarmID          string         `json:"farm_id"`
	Name            string         `json:"name"`
	ZoneType        string         `json:"zone_type,omitempty"`
	EnvironmentType string         `json:"environment_type,omitempty"`
	PositionX       int            `json:"position_x"`
	PositionY       int            `json:"position_y"`
	Width           int            `json:"width"`
	Height          int            `json:"height"`
	CreatedAt       apiclient.Time `json:"created_at"`
}

// FarmInput is the body for create and update. Nil fields are omitted, so a
// PATCH only touches what is set.
type FarmInput struct {
	Name      *string        `json:"name,omitempty"`
	Location  *string        `json:"location,omitempty"`
	Latitude  *float64       `json:"latitude,omitempty"`
	Longitude *float64       `json:"longitude,omitempty"`
	Timezone  *string        `json:"timezone,omitempty"`
	Settings  map[string]any `json:"settings,omitempty"`
	IsActive  *bool          `json:"is_active,omitempty"`
}

type ZoneInput struct {
	Name            string `json:"name"`
	ZoneType        string `json:"zone_type,omitempty"`
	EnvironmentType string `json:"environment_type,omitempty"`
	PositionX       int    `json:"position_x"`
	PositionY       int    `json:"position_y"`
	Width           int    `json:"width,omitempty"`
	Height          int    `json:"height,omitempty"`
}
