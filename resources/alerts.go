package resources

import (
	"context"
	"net/url"

	"github.com/jrsteele09/greenos-console/apiclient"
)

type Alert struct {
	ID             string          `json:"id"`
	AlertRuleID    string          `json:"alert_rule_id"`
	SensorID       string          `json:"sensor_id"`
	Severity       string          `json:"severity"`
	Title          string          `json:"title"`
	Message        string          `json:"message,omitempty"`
	TriggeredValue float64         `json:"triggered_value"`
	Status         string          `json:"status"`
	AcknowledgedBy string          `json:"acknowledged_by,omitempty"`
	AcknowledgedAt *apiclient.Time `json:"acknowledged_at,omitempty"`
	ResolvedAt     *apiclient.Time `json:"resolved_at,omitempty"`
	CreatedAt      apiclient.Time  `json:"created_at"`
}

type AlertRule struct {
	ID              string         `json:"id"`
	FarmID          string         `json:"farm_id"`
	ZoneID          string         `json:"zone_id,omitempty"`
	SensorType      string         `json:"sensor_type"`
	Condition       string         `json:"condition"`
	ThresholdMin    *float64       `json:"threshold_min,omitempty"`
	ThresholdMax    *float64       `json:"threshold_max,omitempty"`
	Severity        string         `json:"severity"`
	CooldownMinutes int            `json:"cooldown_minutes"`
	IsActive        bool           `json:"is_active"`
	NotifyChannels  []string       `json:"notify_channels,omitempty"`
	CreatedAt       apiclient.Time `json:"created_at"`
}

// AlertRuleInput creates a rule. Condition is "above", "below" or "outside_range".
type AlertRuleInput struct {
	SensorType      string   `json:"sensor_type"`
	Condition       string   `json:"condition"`
	ThresholdMin    *float64 `json:"threshold_min,omitempty"`
	ThresholdMax    *float64 `json:"threshold_max,omitempty"`
	Severity        string   `json:"severity,omitempty"`
	ZoneID          string   `json:"zone_id,omitempty"`
	CooldownMinutes int      `json:"cooldown_minutes,omitempty"`
	NotifyChannels  []string `json:"notify_channels,omitempty"`
}

type Alerts struct {
	client *apiclient.Client
}

// List pages through alerts; filter may carry status, skip and limit.
func (a *Alerts) List(ctx context.Context, farmID string, filter url.Values) (apiclient.Page[Alert], error) {
	return get[apiclient.Page[Alert]](ctx, a.client, farmPath(farmID, "alerts", "/"), filter)
}

func (a *Alerts) Acknowledge(ctx context.Context, farmID, alertID, notes string) (Alert, error) {
	body := map[string]any{"notes": nil}
	if notes != "" {
		body["notes"] = notes
	}
	return post[Alert](ctx, a.client, farmPath(farmID, "alerts", url.PathEscape(alertID), "acknowledge"), body)
}

func (a *Alerts) Resolve(ctx context.Context, farmID, alertID string) (Alert, error) {
	return post[Alert](ctx, a.client, farmPath(farmID, "alerts", url.PathEscape(alertID), "resolve"), nil)
}

func (a *Alerts) Rules(ctx context.Context, farmID string) ([]AlertRule, error) {
	return get[[]AlertRule](ctx, a.client, farmPath(farmID, "alerts", "rules"), nil)
}

func (a *Alerts) CreateRule(ctx context.Context, farmID string, in AlertRuleInput) (AlertRule, error) {
	return post[AlertRule](ctx, a.client, farmPath(farmID, "alerts", "rules"), in)
}

func (a *Alerts) CountActive(ctx context.Context, farmID string) (int, error) {
	out, err := get[struct {
		Count int `json:"count"`
	}](ctx, a.client, farmPath(farmID, "alerts", "count", "active"), nil)
	return out.Count, err
}
