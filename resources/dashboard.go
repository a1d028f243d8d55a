package resources

import (
	"context"

	"github.com/jrsteele09/greenos-console/apiclient"
)

type DashboardSummary struct {
	SensorSummary       []SensorSummary        `json:"sensor_summary"`
	ActiveAlertsCount   int                    `json:"active_alerts_count"`
	CriticalAlertsCount int                    `json:"critical_alerts_count"`
	ActiveCropCycles    int                    `json:"active_crop_cycles"`
	UpcomingHarvests    []HarvestCalendarEntry `json:"upcoming_harvests"`
	PendingTasks        int                    `json:"pending_tasks"`
	RecentOrders        int                    `json:"recent_orders"`
	TotalZones          int                    `json:"total_zones"`
	ActiveSensors       int                    `json:"active_sensors"`
	MonthlyYieldKG      float64                `json:"monthly_yield_kg"`
}

type Dashboard struct {
	client *apiclient.Client
}

func (d *Dashboard) Get(ctx context.Context, farmID string) (DashboardSummary, error) {
	return get[DashboardSummary](ctx, d.client, farmPath(farmID, "dashboard", "/"), nil)
}
