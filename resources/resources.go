package resources

import (
	"context"
	"net/url"
	"strings"

	"github.com/jrsteele09/greenos-console/apiclient"
)

// Resources groups the farm-scoped domain endpoints. Every call goes through
// the client's request pipeline.
type Resources struct {
	Sensors   *Sensors
	Alerts    *Alerts
	Crops     *Crops
	Dashboard *Dashboard
	Harvests  *Harvests
	Orders    *Orders
	Tasks     *Tasks
	Finance   *Finance
	Inventory *Inventory
	Vision    *Vision
	Lighting  *Lighting
	Dosing    *Dosing
}

func New(client *apiclient.Client) *Resources {
	return &Resources{
		Sensors:   &Sensors{client: client},
		Alerts:    &Alerts{client: client},
		Crops:     &Crops{client: client},
		Dashboard: &Dashboard{client: client},
		Harvests:  &Harvests{client: client},
		Orders:    &Orders{client: client},
		Tasks:     &Tasks{client: client},
		Finance:   &Finance{client: client},
		Inventory: &Inventory{client: client},
		Vision:    &Vision{client: client},
		Lighting:  &Lighting{client: client},
		Dosing:    &Dosing{client: client},
	}
}

// farmPath builds /farms/{farmID}/<parts...>. Ids are path-escaped; a trailing
// "/" part keeps the collection slash the backend routes on.
func farmPath(farmID string, parts ...string) string {
	var b strings.Builder
	b.WriteString("/farms/")
	b.WriteString(url.PathEscape(farmID))
	for _, p := range parts {
		if p == "/" {
			b.WriteString("/")
			continue
		}
		b.WriteString("/")
		b.WriteString(p)
	}
	return b.String()
}

func get[T any](ctx context.Context, c *apiclient.Client, path string, query url.Values) (T, error) {
	var out T
	err := c.Get(ctx, path, query, &out)
	return out, err
}

func post[T any](ctx context.Context, c *apiclient.Client, path string, body any) (T, error) {
	var out T
	err := c.Post(ctx, path, body, &out)
	return out, err
}
