package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/jrsteele09/greenos-console/auth"
	"github.com/jrsteele09/greenos-console/credentials"
	"github.com/jrsteele09/greenos-console/format"
	"github.com/jrsteele09/greenos-console/internal/config"
	autherrors "github.com/jrsteele09/greenos-console/internal/errors"
	"github.com/jrsteele09/greenos-console/internal/utils"
	"github.com/rs/zerolog/log"
)

type command struct {
	name    string
	summary string
	run     func(ctx context.Context, c *console, args []string) error
}

var commands = []command{
	{"login", "Sign in and select a farm", runLogin},
	{"register", "Create an account", runRegister},
	{"logout", "Sign out and forget the stored tokens", runLogout},
	{"passwd", "Change your password", runChangePassword},
	{"whoami", "Show the signed-in user", runWhoami},
	{"status", "Show stored credentials without calling the API", runStatus},
	{"farms", "List your farms", runFarms},
	{"use-farm", "Select the farm other commands act on", runUseFarm},
	{"dashboard", "Farm overview", runDashboard},
	{"sensors", "Sensor summary or readings (-id)", runSensors},
	{"alerts", "List, acknowledge or resolve alerts", runAlerts},
	{"crops", "Crop cycles", runCrops},
	{"harvests", "Harvests, yield report or calendar", runHarvests},
	{"orders", "Orders and customers", runOrders},
	{"tasks", "Tasks, overdue tasks or status changes", runTasks},
	{"finance", "Revenue summary and profit by crop", runFinance},
	{"inventory", "Inventory items and low stock", runInventory},
	{"vision", "Plant scans, anomaly stats and advisory", runVision},
	{"lighting", "Light zones, schedules and commands", runLighting},
	{"dosing", "Dosing pumps, recipes, events and manual doses", runDosing},
	{"version", "Print the version", runVersion},
}

func findCommand(name string) (command, bool) {
	for _, cmd := range commands {
		if cmd.name == name {
			return cmd, true
		}
	}
	return command{}, false
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: greenos <command> [flags]")
	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 0, 3, ' ', 0)
	for _, cmd := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", cmd.name, cmd.summary)
	}
	_ = tw.Flush()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment: GREENOS_API_URL, GREENOS_CONFIG_DIR, GREENOS_LOG_LEVEL, GREENOS_TIMEOUT, GREENOS_COALESCE_REFRESH")
}

func newFlags(c *console, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.out)
	return fs
}

func runLogin(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "login")
	email := fs.String("email", "", "account email")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" {
		var err error
		if *email, err = c.prompt("Email"); err != nil {
			return err
		}
	}
	password, err := c.promptSecret("Password")
	if err != nil {
		return err
	}
	if err := auth.NewValidator().ValidateLogin(*email, password); err != nil {
		return err
	}

	if err := c.app.Session.Login(ctx, *email, password); err != nil {
		return err
	}
	user, _ := c.app.Session.User()
	c.printf("Signed in as %s\n", user.DisplayName())

	if err := c.app.Bootstrap(ctx); err != nil {
		return err
	}
	if farm, ok := c.app.Selection.Current(); ok {
		c.printf("Current farm: %s (%s)\n", farm.Name, farm.ID)
	} else {
		c.printf("You have no farms yet.\n")
	}
	return nil
}

func runRegister(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "register")
	email := fs.String("email", "", "account email")
	name := fs.String("name", "", "full name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	var err error
	if *email == "" {
		if *email, err = c.prompt("Email"); err != nil {
			return err
		}
	}
	if *name == "" {
		if *name, err = c.prompt("Full name"); err != nil {
			return err
		}
	}
	password, err := c.promptSecret("Password")
	if err != nil {
		return err
	}
	confirm, err := c.promptSecret("Confirm password")
	if err != nil {
		return err
	}
	req := auth.RegisterRequest{Email: *email, Password: password, FullName: *name}
	if err := auth.NewValidator().ValidateRegistration(req, confirm); err != nil {
		return err
	}

	if err := c.app.Session.Register(ctx, *email, password, *name); err != nil {
		return err
	}
	c.printf("Account created for %s. Run `greenos login` to sign in.\n", *email)
	return nil
}

func runLogout(_ context.Context, c *console, _ []string) error {
	c.app.Session.Logout()
	c.printf("Signed out.\n")
	return nil
}

func runChangePassword(ctx context.Context, c *console, _ []string) error {
	if err := c.app.Bootstrap(ctx); err != nil {
		return err
	}
	current, err := c.promptSecret("Current password")
	if err != nil {
		return err
	}
	next, err := c.promptSecret("New password")
	if err != nil {
		return err
	}
	if err := auth.NewValidator().ValidatePassword(next); err != nil {
		return err
	}
	if err := c.app.Auth.ChangePassword(ctx, current, next); err != nil {
		return err
	}
	c.printf("Password changed.\n")
	return nil
}

func runWhoami(ctx context.Context, c *console, _ []string) error {
	if err := c.app.Bootstrap(ctx); err != nil {
		return err
	}
	user, _ := c.app.Session.User()
	c.table("NAME\tEMAIL\tROLE\tACTIVE", [][]string{{
		user.DisplayName(), user.Email, user.RoleName(), fmt.Sprint(user.IsActive),
	}})
	return nil
}

func runStatus(_ context.Context, c *console, _ []string) error {
	cfg := c.app.Config
	c.printf("API:          %s\n", cfg.GetAPIBaseURL())
	if fs, ok := c.app.Store.(*credentials.FileStore); ok {
		c.printf("Credentials:  %s\n", fs.Path())
	}

	tok, signedIn := credentials.Tokens(c.app.Store)
	c.printf("Session:      %s\n", presence(signedIn))
	if signedIn {
		if sub, ok := credentials.AccessTokenSubject(tok.AccessToken); ok {
			c.printf("Subject:      %s\n", sub)
		}
		if !tok.Expiry.IsZero() {
			state := "valid"
			if time.Now().After(tok.Expiry) {
				state = "expired, will refresh on next call"
			}
			c.printf("Expires:      %s (%s)\n", format.FormatDateTime(tok.Expiry.Local()), state)
		}
	}
	farmID, _ := c.app.Store.Get(credentials.CurrentFarmIDKey)
	c.printf("Farm:         %s\n", utils.ValueOr(utils.NonZero(farmID), "none"))
	if cfg.GetEnv() != "DEV" {
		c.printf("Environment:  %s\n", cfg.GetEnv())
	}
	logRequestSettings(cfg)
	return nil
}

func logRequestSettings(cfg config.HTTPConfig) {
	log.Debug().
		Dur("timeout", cfg.GetRequestTimeout()).
		Bool("coalesce_refresh", cfg.GetCoalesceRefresh()).
		Msg("Request settings")
}

func presence(ok bool) string {
	if ok {
		return format.Colourize(format.Green, "present")
	}
	return format.Colourize(format.Gray, "absent")
}

func runFarms(ctx context.Context, c *console, _ []string) error {
	if err := c.app.Bootstrap(ctx); err != nil {
		return err
	}
	currentID, _ := c.app.Selection.CurrentID()
	rows := [][]string{}
	for _, farm := range c.app.Selection.Farms() {
		marker := ""
		if farm.ID == currentID {
			marker = "*"
		}
		rows = append(rows, []string{marker, farm.ID, farm.Name, farm.Location, farm.Timezone})
	}
	c.table(" \tID\tNAME\tLOCATION\tTIMEZONE", rows)
	return nil
}

func runUseFarm(ctx context.Context, c *console, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: greenos use-farm <farm-id>")
	}
	farm, err := c.app.UseFarm(ctx, strings.TrimSpace(args[0]))
	if err != nil {
		return err
	}
	c.printf("Current farm: %s (%s)\n", farm.Name, farm.ID)
	return nil
}

func runVersion(_ context.Context, c *console, _ []string) error {
	c.printf("greenos %s (%s)\n", Version, c.app.Config.GetAppName())
	return nil
}

// farmID bootstraps and returns the selected farm's id.
func farmID(ctx context.Context, c *console) (string, error) {
	farm, err := c.app.CurrentFarm(ctx)
	if err != nil {
		return "", err
	}
	if farm.ID == "" {
		return "", autherrors.ErrNoFarmSelected
	}
	return farm.ID, nil
}
