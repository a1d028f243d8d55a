package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/jrsteele09/greenos-console/apiclient"
	"github.com/jrsteele09/greenos-console/auth"
	"github.com/jrsteele09/greenos-console/credentials"
	"github.com/jrsteele09/greenos-console/farms"
	"github.com/jrsteele09/greenos-console/guard"
	"github.com/jrsteele09/greenos-console/internal/config"
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
	"github.com/jrsteele09/greenos-console/resources"
	"github.com/jrsteele09/greenos-console/sessions"
	"github.com/rs/zerolog/log"
)

// App owns the client-side state: the credential store, the request pipeline,
// the session, the farm selection and the guard. It is also the pipeline's
// navigator, so a hard logout resets everything it holds.
type App struct {
	Config    config.Config
	Store     credentials.Store
	Client    *apiclient.Client
	Auth      *auth.Service
	Session   *sessions.State
	Farms     *farms.API
	Selection *farms.Selection
	Guard     *guard.Guard
	Resources *resources.Resources

	lock      sync.Mutex
	redirects int
}

// New opens the file store for the configured backend and wires the app around it.
func New(c config.Config, opts ...apiclient.Option) (*App, error) {
	store, err := credentials.NewFileStore(c.GetConfigDir(), c.GetAPIBaseURL())
	if err != nil {
		return nil, fmt.Errorf("[app.New] open credential store: %w", err)
	}
	return NewWithStore(c, store, opts...), nil
}

// NewWithStore wires the app over an existing store. Options are applied after
// the configured timeout, navigator and coalescing.
func NewWithStore(c config.Config, store credentials.Store, opts ...apiclient.Option) *App {
	a := &App{Config: c, Store: store}

	clientOpts := []apiclient.Option{
		apiclient.WithTimeout(c.GetRequestTimeout()),
		apiclient.WithNavigator(a),
		apiclient.WithRefreshCoalescing(c.GetCoalesceRefresh()),
	}
	a.Client = apiclient.New(c.GetAPIBaseURL(), store, append(clientOpts, opts...)...)
	a.Auth = auth.NewService(a.Client)
	a.Session = sessions.New(a.Auth, store, a)
	a.Farms = farms.NewAPI(a.Client)
	a.Selection = farms.NewSelection(store)
	a.Guard = guard.New(store, a.Session, a.Farms, a.Selection, a)
	a.Resources = resources.New(a.Client)
	return a
}

// RedirectToLogin discards the in-memory session and farm selection. Stored
// tokens are cleared by whoever triggers the redirect; the persisted farm id is kept.
func (a *App) RedirectToLogin() {
	a.Session.Reset()
	a.Selection.Reset()

	a.lock.Lock()
	a.redirects++
	a.lock.Unlock()

	log.Debug().Msg("Redirected to login")
}

// Redirects counts the login redirects since the app was created.
func (a *App) Redirects() int {
	a.lock.Lock()
	defer a.lock.Unlock()
	return a.redirects
}

// Bootstrap runs the guard and reports why the authenticated area is unavailable.
// It returns nil once the user is known, whether or not a farm is selected.
func (a *App) Bootstrap(ctx context.Context) error {
	before := a.Redirects()
	outcome := a.Guard.Run(ctx)
	switch {
	case outcome == guard.RedirectedToLogin:
		return autherrors.ErrNotAuthenticated
	case a.Redirects() > before:
		return autherrors.ErrSessionExpired
	case outcome == guard.Loading:
		return autherrors.ErrProfileUnavailable
	}
	return nil
}

// CurrentFarm bootstraps and returns the selected farm.
func (a *App) CurrentFarm(ctx context.Context) (farms.Farm, error) {
	if err := a.Bootstrap(ctx); err != nil {
		return farms.Farm{}, err
	}
	farm, ok := a.Selection.Current()
	if !ok {
		return farms.Farm{}, autherrors.ErrNoFarmSelected
	}
	return farm, nil
}

// UseFarm bootstraps and switches the selection to the farm with id.
func (a *App) UseFarm(ctx context.Context, id string) (farms.Farm, error) {
	if err := a.Bootstrap(ctx); err != nil {
		return farms.Farm{}, err
	}
	if len(a.Selection.Farms()) == 0 {
		page, err := a.Farms.List(ctx, 0, farms.DefaultPageSize)
		if err != nil {
			return farms.Farm{}, err
		}
		a.Selection.SetFarms(page.Items)
	}
	return a.Selection.SelectByID(id)
}
