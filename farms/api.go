package farms

import (
	"context"
	"net/url"
	"strconv"

	"github.com/jrsteele09/greenos-console/apiclient"
)

const (
	DefaultPageSize = 20
	farmsPath       = "/farms/"
)

// API wraps the /farms endpoints.
type API struct {
	client *apiclient.Client
}

func NewAPI(client *apiclient.Client) *API {
	return &API{client: client}
}

func (a *API) List(ctx context.Context, skip, limit int) (*apiclient.Page[Farm], error) {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	query := url.Values{}
	query.Set("skip", strconv.Itoa(skip))
	query.Set("limit", strconv.Itoa(limit))

	var page apiclient.Page[Farm]
	if err := a.client.Get(ctx, farmsPath, query, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

func (a *API) Get(ctx context.Context, id string) (*Farm, error) {
	var farm Farm
	if err := a.client.Get(ctx, farmPath(id), nil, &farm); err != nil {
		return nil, err
	}
	return &farm, nil
}

func (a *API) Create(ctx context.Context, in FarmInput) (*Farm, error) {
	var farm Farm
	if err := a.client.Post(ctx, farmsPath, in, &farm); err != nil {
		return nil, err
	}
	return &farm, nil
}

func (a *API) Update(ctx context.Context, id string, in FarmInput) (*Farm, error) {
	var farm Farm
	if err := a.client.Patch(ctx, farmPath(id), in, &farm); err != nil {
		return nil, err
	}
	return &farm, nil
}

func (a *API) Delete(ctx context.Context, id string) error {
	return a.client.Delete(ctx, farmPath(id))
}

func (a *API) Zones(ctx context.Context, farmID string) ([]Zone, error) {
	var zones []Zone
	if err := a.client.Get(ctx, farmPath(farmID)+"/zones", nil, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (a *API) CreateZone(ctx context.Context, farmID string, in ZoneInput) (*Zone, error) {
	var zone Zone
	if err := a.client.Post(ctx, farmPath(farmID)+"/zones", in, &zone); err != nil {
		return nil, err
	}
	return &zone, nil
}

func farmPath(id string) string {
	return farmsPath + url.PathEscape(id)
}
