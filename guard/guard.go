package guard

import (
	"context"
	"fmt"

	"github.com/jrsteele09/greenos-console/apiclient"
	"github.com/jrsteele09/greenos-console/credentials"
	"github.com/jrsteele09/greenos-console/farms"
	"github.com/jrsteele09/greenos-console/users"
	"github.com/rs/zerolog/log"
)

// Outcome is what the authenticated area should show after a Run.
type Outcome int

const (
	// RedirectedToLogin means no access token was stored and the login redirect fired.
	RedirectedToLogin Outcome = iota
	// Loading means the profile is still absent; only a loading indicator is shown.
	Loading
	// Ready means the user is known. A farm may or may not be selected.
	Ready
)

func (o Outcome) String() string {
	switch o {
	case RedirectedToLogin:
		return "redirected-to-login"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Session is the part of the session state the guard reads and drives.
type Session interface {
	User() (*users.User, bool)
	FetchUser(ctx context.Context)
}

// FarmLister fetches the caller's farms.
type FarmLister interface {
	List(ctx context.Context, skip, limit int) (*apiclient.Page[farms.Farm], error)
}

// Guard bootstraps the authenticated area. Run is safe to call on every mount.
type Guard struct {
	store     credentials.Store
	session   Session
	farmAPI   FarmLister
	selection *farms.Selection
	navigator apiclient.Navigator
}

func New(store credentials.Store, session Session, farmAPI FarmLister, selection *farms.Selection, navigator apiclient.Navigator) *Guard {
	if navigator == nil {
		navigator = apiclient.NavigatorFunc(func() {})
	}
	return &Guard{
		store:     store,
		session:   session,
		farmAPI:   farmAPI,
		selection: selection,
		navigator: navigator,
	}
}

func (g *Guard) Run(ctx context.Context) Outcome {
	if _, ok := credentials.AccessToken(g.store); !ok {
		g.navigator.RedirectToLogin()
		return RedirectedToLogin
	}

	if _, ok := g.session.User(); !ok {
		g.session.FetchUser(ctx)
	}
	if _, ok := g.session.User(); !ok {
		return Loading
	}

	if _, ok := g.selection.Current(); !ok {
		g.selectFarm(ctx)
	}
	return Ready
}

// selectFarm loads the farm list and restores the selection. Failures leave
// the selection empty.
func (g *Guard) selectFarm(ctx context.Context) {
	page, err := g.farmAPI.List(ctx, 0, farms.DefaultPageSize)
	if err != nil {
		log.Warn().Err(err).Msg("Could not load farms")
		return
	}
	farm, ok, err := g.selection.Restore(page.Items)
	if err != nil {
		log.Warn().Err(err).Msg("Could not restore farm selection")
		return
	}
	if ok {
		log.Debug().Str("farm_id", farm.ID).Msg("Farm selected")
	}
}
