package main

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/jrsteele09/greenos-console/apiclient"
	"github.com/jrsteele09/greenos-console/format"
	"github.com/jrsteele09/greenos-console/internal/utils"
	"github.com/jrsteele09/greenos-console/resources"
)

func pageParams(skip, limit int, kv ...string) url.Values {
	values := apiclient.Params(kv...)
	values.Set("skip", strconv.Itoa(skip))
	values.Set("limit", strconv.Itoa(limit))
	return values
}

func optionalTime(t *apiclient.Time) string {
	if t == nil {
		return "-"
	}
	return format.FormatDateTime(t.Local())
}

func optionalDate(d *apiclient.Date) string {
	if d == nil {
		return "-"
	}
	return format.FormatDate(d.Time)
}

func optionalValue(sensorType string, v *float64) string {
	if v == nil {
		return "-"
	}
	return format.SensorValue(sensorType, *v)
}

// parsePeriod reads the -from and -to flags. Empty values leave that end open.
func parsePeriod(from, to string) (resources.Period, error) {
	var period resources.Period
	if from != "" {
		d, err := apiclient.ParseDate(from)
		if err != nil {
			return period, fmt.Errorf("-from: %w", err)
		}
		period.Start = &d
	}
	if to != "" {
		d, err := apiclient.ParseDate(to)
		if err != nil {
			return period, fmt.Errorf("-to: %w", err)
		}
		period.End = &d
	}
	if period.Start != nil && period.End != nil && period.End.Before(period.Start.Time) {
		return period, fmt.Errorf("-to %s is before -from %s", period.End, period.Start)
	}
	return period, nil
}

func status(s string) string {
	return format.Colourize(format.StatusColour(s), s)
}

func footer(c *console, shown, total int) {
	if total > shown {
		c.printf("Showing %d of %d.\n", shown, total)
	}
}

func runDashboard(ctx context.Context, c *console, _ []string) error {
	id, err := farmID(ctx, c)
	if err != nil {
		return err
	}
	d, err := c.app.Resources.Dashboard.Get(ctx, id)
	if err != nil {
		return err
	}
	critical := strconv.Itoa(d.CriticalAlertsCount)
	if d.CriticalAlertsCount > 0 {
		critical = format.Colourize(format.Red, critical)
	}
	c.table("METRIC\tVALUE", [][]string{
		{"Active sensors", strconv.Itoa(d.ActiveSensors)},
		{"Zones", strconv.Itoa(d.TotalZones)},
		{"Active alerts", strconv.Itoa(d.ActiveAlertsCount)},
		{"Critical alerts", critical},
		{"Active crop cycles", strconv.Itoa(d.ActiveCropCycles)},
		{"Pending tasks", strconv.Itoa(d.PendingTasks)},
		{"Recent orders", strconv.Itoa(d.RecentOrders)},
		{"Yield this month", format.FormatNumber(d.MonthlyYieldKG, 1) + " kg"},
	})
	if len(d.SensorSummary) > 0 {
		c.printf("\n")
		rows := make([][]string, 0, len(d.SensorSummary))
		for _, s := range d.SensorSummary {
			rows = append(rows, []string{s.Name, s.SensorType, optionalValue(s.SensorType, s.LatestValue), s.Status})
		}
		c.table("SENSOR\tTYPE\tLATEST\tSTATUS", rows)
	}
	if len(d.UpcomingHarvests) > 0 {
		c.printf("\n")
		rows := make([][]string, 0, len(d.UpcomingHarvests))
		for _, h := range d.UpcomingHarvests {
			rows = append(rows, []string{format.FormatDate(h.Date.Time), h.CropName, h.BatchCode})
		}
		c.table("HARVEST\tCROP\tBATCH", rows)
	}
	return nil
}

func runSensors(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "sensors")
	sensorID := fs.String("id", "", "show readings for this sensor")
	since := fs.Duration("since", 24*time.Hour, "readings window")
	limit := fs.Int("limit", 100, "maximum readings")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := farmID(ctx, c)
	if err != nil {
		return err
	}

	if *sensorID == "" {
		summary, err := c.app.Resources.Sensors.Summary(ctx, id)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(summary))
		for _, s := range summary {
			rows = append(rows, []string{s.SensorID, s.Name, s.SensorType, optionalValue(s.SensorType, s.LatestValue), optionalTime(s.LatestReadingAt), s.ZoneName})
		}
		c.table("ID\tNAME\tTYPE\tLATEST\tAT\tZONE", rows)
		return nil
	}

	sensor, err := c.app.Resources.Sensors.Get(ctx, id, *sensorID)
	if err != nil {
		return err
	}
	readings, err := c.app.Resources.Sensors.Readings(ctx, id, *sensorID, resources.ReadingQuery{
		Start: time.Now().Add(-*since),
		Limit: *limit,
	})
	if err != nil {
		return err
	}
	c.printf("%s (%s)\n", sensor.Name, sensor.SensorType)
	rows := make([][]string, 0, len(readings))
	for _, r := range readings {
		rows = append(rows, []string{format.FormatDateTime(r.RecordedAt.Local()), format.SensorValue(sensor.SensorType, r.Value)})
	}
	c.table("RECORDED\tVALUE", rows)
	return nil
}

func runAlerts(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "alerts")
	state := fs.String("status", "", "filter by status (active, acknowledged, resolved)")
	ack := fs.String("ack", "", "acknowledge the alert with this id")
	notes := fs.String("notes", "", "notes for -ack")
	resolve := fs.String("resolve", "", "resolve the alert with this id")
	rules := fs.Bool("rules", false, "list alert rules")
	skip := fs.Int("skip", 0, "page offset")
	limit := fs.Int("limit", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := farmID(ctx, c)
	if err != nil {
		return err
	}

	switch {
	case *ack != "":
		alert, err := c.app.Resources.Alerts.Acknowledge(ctx, id, *ack, *notes)
		if err != nil {
			return err
		}
		c.printf("%s: %s\n", alert.Title, status(alert.Status))
		return nil
	case *resolve != "":
		alert, err := c.app.Resources.Alerts.Resolve(ctx, id, *resolve)
		if err != nil {
			return err
		}
		c.printf("%s: %s\n", alert.Title, status(alert.Status))
		return nil
	case *rules:
		list, err := c.app.Resources.Alerts.Rules(ctx, id)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(list))
		for _, r := range list {
			rows = append(rows, []string{r.ID, r.SensorType, r.Condition, thresholds(r), format.Colourize(format.SeverityColour(r.Severity), r.Severity), fmt.Sprint(r.IsActive)})
		}
		c.table("ID\tSENSOR\tCONDITION\tTHRESHOLD\tSEVERITY\tACTIVE", rows)
		return nil
	}

	page, err := c.app.Resources.Alerts.List(ctx, id, pageParams(*skip, *limit, "status", *state))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, a := range page.Items {
		rows = append(rows, []string{
			a.ID,
			format.Colourize(format.SeverityColour(a.Severity), a.Severity),
			a.Title,
			format.FormatNumber(a.TriggeredValue, 2),
			status(a.Status),
			format.FormatDateTime(a.CreatedAt.Local()),
		})
	}
	c.table("ID\tSEVERITY\tTITLE\tVALUE\tSTATUS\tRAISED", rows)
	footer(c, len(page.Items), page.Total)
	return nil
}

func thresholds(r resources.AlertRule) string {
	low, high := "-", "-"
	if r.ThresholdMin != nil {
		low = format.FormatNumber(*r.ThresholdMin, 2)
	}
	if r.ThresholdMax != nil {
		high = format.FormatNumber(*r.ThresholdMax, 2)
	}
	return low + " .. " + high
}

func runCrops(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "crops")
	state := fs.String("status", "", "filter by cycle status")
	profiles := fs.Bool("profiles", false, "list crop profiles instead")
	logs := fs.String("logs", "", "show growth logs for this cycle id")
	skip := fs.Int("skip", 0, "page offset")
	limit := fs.Int("limit", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *profiles {
		if err := c.app.Bootstrap(ctx); err != nil {
			return err
		}
		list, err := c.app.Resources.Crops.Profiles(ctx)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(list))
		for _, p := range list {
			rows = append(rows, []string{p.ID, p.Name, p.Category, strconv.Itoa(p.DaysToHarvest),
				format.FormatNumber(p.IdealPHMin, 1) + "-" + format.FormatNumber(p.IdealPHMax, 1)})
		}
		c.table("ID\tNAME\tCATEGORY\tDAYS\tPH", rows)
		return nil
	}
	if *logs != "" {
		if err := c.app.Bootstrap(ctx); err != nil {
			return err
		}
		list, err := c.app.Resources.Crops.GrowthLogs(ctx, *logs)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(list))
		for _, l := range list {
			height := "-"
			if l.HeightCM != nil {
				height = format.FormatNumber(*l.HeightCM, 1) + " cm"
			}
			rows = append(rows, []string{format.FormatDate(l.LogDate.Time), height, strconv.Itoa(l.HealthRating) + "/5", l.Notes})
		}
		c.table("DATE\tHEIGHT\tHEALTH\tNOTES", rows)
		return nil
	}

	id, err := farmID(ctx, c)
	if err != nil {
		return err
	}
	page, err := c.app.Resources.Crops.Cycles(ctx, id, pageParams(*skip, *limit, "status", *state))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, cy := range page.Items {
		rows = append(rows, []string{cy.ID, cy.BatchCode, cy.CropName(), status(cy.Status),
			format.FormatDate(cy.SeededAt.Time), optionalDate(cy.ExpectedHarvestAt)})
	}
	c.table("ID\tBATCH\tCROP\tSTATUS\tSEEDED\tEXPECTED", rows)
	footer(c, len(page.Items), page.Total)
	return nil
}

func runHarvests(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "harvests")
	report := fs.Bool("yield", false, "show the yield report")
	calendar := fs.Bool("calendar", false, "show the harvest calendar")
	skip := fs.Int("skip", 0, "page offset")
	limit := fs.Int("limit", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := farmID(ctx, c)
	if err != nil {
		return err
	}

	switch {
	case *report:
		list, err := c.app.Resources.Harvests.YieldReport(ctx, id)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(list))
		for _, r := range list {
			rows = append(rows, []string{r.CropName, r.ZoneName, format.FormatNumber(r.TotalHarvestedKG, 1),
				format.FormatNumber(r.ExpectedKG, 1), format.FormatNumber(r.VariancePercent, 1) + "%", strconv.Itoa(r.CycleCount)})
		}
		c.table("CROP\tZONE\tHARVESTED KG\tEXPECTED KG\tVARIANCE\tCYCLES", rows)
		return nil
	case *calendar:
		list, err := c.app.Resources.Harvests.Calendar(ctx, id)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(list))
		for _, e := range list {
			kind := "expected"
			if e.IsActual {
				kind = "actual"
			}
			rows = append(rows, []string{format.FormatDate(e.Date.Time), e.CropName, e.BatchCode, kind})
		}
		c.table("DATE\tCROP\tBATCH\tKIND", rows)
		return nil
	}

	page, err := c.app.Resources.Harvests.List(ctx, id, pageParams(*skip, *limit))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, h := range page.Items {
		rows = append(rows, []string{h.ID, format.FormatDate(h.HarvestDate.Time), format.FormatNumber(h.WeightKG, 2), h.Grade, format.FormatNumber(h.WasteKG, 2)})
	}
	c.table("ID\tDATE\tWEIGHT KG\tGRADE\tWASTE KG", rows)
	footer(c, len(page.Items), page.Total)
	return nil
}

func runOrders(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "orders")
	state := fs.String("status", "", "filter by order status")
	customers := fs.Bool("customers", false, "list customers instead")
	skip := fs.Int("skip", 0, "page offset")
	limit := fs.Int("limit", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := farmID(ctx, c)
	if err != nil {
		return err
	}

	if *customers {
		page, err := c.app.Resources.Orders.Customers(ctx, id)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, cu := range page.Items {
			rows = append(rows, []string{cu.ID, cu.Name, cu.Company, cu.CustomerType, cu.Email})
		}
		c.table("ID\tNAME\tCOMPANY\tTYPE\tEMAIL", rows)
		footer(c, len(page.Items), page.Total)
		return nil
	}

	page, err := c.app.Resources.Orders.List(ctx, id, pageParams(*skip, *limit, "status", *state))
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, o := range page.Items {
		rows = append(rows, []string{o.OrderNumber, format.FormatDate(o.OrderDate.Time), optionalDate(o.DeliveryDate), status(o.Status), format.FormatCurrency(o.TotalAmount)})
	}
	c.table("ORDER\tDATE\tDELIVERY\tSTATUS\tTOTAL", rows)
	footer(c, len(page.Items), page.Total)
	return nil
}

func runTasks(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "tasks")
	state := fs.String("status", "", "filter by status")
	overdue := fs.Bool("overdue", false, "only overdue tasks")
	taskID := fs.String("id", "", "task to update with -set")
	set := fs.String("set", "", "new status for -id (pending, in_progress, completed, cancelled, blocked)")
	notes := fs.String("notes", "", "notes for -set")
	skip := fs.Int("skip", 0, "page offset")
	limit := fs.Int("limit", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := farmID(ctx, c)
	if err != nil {
		return err
	}

	if *set != "" {
		if *taskID == "" {
			return fmt.Errorf("-set needs -id")
		}
		task, err := c.app.Resources.Tasks.UpdateStatus(ctx, id, *taskID, *set, *notes)
		if err != nil {
			return err
		}
		c.printf("%s: %s\n", task.Title, status(task.Status))
		return nil
	}

	var list []resources.Task
	total := 0
	if *overdue {
		if list, err = c.app.Resources.Tasks.Overdue(ctx, id); err != nil {
			return err
		}
		total = len(list)
	} else {
		page, err := c.app.Resources.Tasks.List(ctx, id, pageParams(*skip, *limit, "status", *state))
		if err != nil {
			return err
		}
		list, total = page.Items, page.Total
	}
	rows := make([][]string, 0, len(list))
	for _, t := range list {
		rows = append(rows, []string{t.ID, t.Title, t.TaskType, t.Priority, status(t.Status), optionalDate(t.DueDate)})
	}
	c.table("ID\tTITLE\tTYPE\tPRIORITY\tSTATUS\tDUE", rows)
	footer(c, len(list), total)
	return nil
}

func runFinance(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "finance")
	costs := fs.Bool("costs", false, "list costs instead")
	category := fs.String("category", "", "filter costs by category")
	from := fs.String("from", "", "first day of the period (YYYY-MM-DD)")
	to := fs.String("to", "", "last day of the period (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	period, err := parsePeriod(*from, *to)
	if err != nil {
		return err
	}
	id, err := farmID(ctx, c)
	if err != nil {
		return err
	}

	if *costs {
		filter := period.Values()
		if *category != "" {
			filter.Set("category", *category)
		}
		page, err := c.app.Resources.Finance.Costs(ctx, id, filter)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, cost := range page.Items {
			rows = append(rows, []string{format.FormatDate(cost.Date.Time), cost.Category, cost.Description, format.FormatCurrency(cost.Amount)})
		}
		c.table("DATE\tCATEGORY\tDESCRIPTION\tAMOUNT", rows)
		footer(c, len(page.Items), page.Total)
		return nil
	}

	summary, err := c.app.Resources.Finance.RevenueSummary(ctx, id, period)
	if err != nil {
		return err
	}
	net := format.FormatCurrency(summary.NetProfit)
	if summary.NetProfit < 0 {
		net = format.Colourize(format.Red, net)
	}
	c.table("REVENUE\tCOSTS\tNET\tMARGIN", [][]string{{
		format.FormatCurrency(summary.TotalRevenue),
		format.FormatCurrency(summary.TotalCosts),
		net,
		format.FormatNumber(summary.ProfitMargin, 1) + "%",
	}})

	byCrop, err := c.app.Resources.Finance.ProfitByCrop(ctx, id)
	if err != nil {
		return err
	}
	if len(byCrop) == 0 {
		return nil
	}
	c.printf("\n")
	rows := make([][]string, 0, len(byCrop))
	for _, p := range byCrop {
		rows = append(rows, []string{p.CropName, format.FormatCurrency(p.Revenue), format.FormatCurrency(p.Costs), format.FormatCurrency(p.Profit), strconv.Itoa(p.Cycles)})
	}
	c.table("CROP\tREVENUE\tCOSTS\tPROFIT\tCYCLES", rows)
	return nil
}

func runInventory(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "inventory")
	low := fs.Bool("low", false, "only items at or below their reorder threshold")
	category := fs.String("category", "", "filter by category")
	skip := fs.Int("skip", 0, "page offset")
	limit := fs.Int("limit", 20, "page size")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := farmID(ctx, c)
	if err != nil {
		return err
	}

	var items []resources.InventoryItem
	total := 0
	if *low {
		if items, err = c.app.Resources.Inventory.LowStock(ctx, id); err != nil {
			return err
		}
		total = len(items)
	} else {
		page, err := c.app.Resources.Inventory.List(ctx, id, pageParams(*skip, *limit, "category", *category))
		if err != nil {
			return err
		}
		items, total = page.Items, page.Total
	}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		stock := format.FormatNumber(it.CurrentStock, 1) + " " + it.Unit
		if it.LowStock() {
			stock = format.Colourize(format.Yellow, stock)
		}
		rows = append(rows, []string{it.ID, it.Name, it.Category, stock, format.FormatCurrency(utils.Value(it.UnitCost)), it.Supplier})
	}
	c.table("ID\tNAME\tCATEGORY\tSTOCK\tUNIT COST\tSUPPLIER", rows)
	footer(c, len(items), total)
	return nil
}

func runVision(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "vision")
	stats := fs.Bool("anomalies", false, "show anomaly statistics")
	advisory := fs.Bool("advisory", false, "show the advisory")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := farmID(ctx, c)
	if err != nil {
		return err
	}

	switch {
	case *stats:
		list, err := c.app.Resources.Vision.AnomalyStats(ctx, id)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(list))
		for _, s := range list {
			rows = append(rows, []string{s.AnomalyType, strconv.Itoa(s.Count), format.FormatNumber(s.AvgConfidence*100, 1) + "%"})
		}
		c.table("ANOMALY\tCOUNT\tAVG CONFIDENCE", rows)
		return nil
	case *advisory:
		adv, err := c.app.Resources.Vision.Advisory(ctx, id)
		if err != nil {
			return err
		}
		printRecords(c, "Recommendations", adv.Recommendations)
		printRecords(c, "Yield predictions", adv.YieldPredictions)
		printRecords(c, "Environmental suggestions", adv.EnvironmentalSuggestions)
		return nil
	}

	page, err := c.app.Resources.Vision.Scans(ctx, id, nil)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(page.Items))
	for _, s := range page.Items {
		rows = append(rows, []string{s.ID, s.ScanType, status(s.AnalysisStatus), format.FormatDateTime(s.CreatedAt.Local()), s.ImageURL})
	}
	c.table("ID\tTYPE\tANALYSIS\tSCANNED\tIMAGE", rows)
	footer(c, len(page.Items), page.Total)
	return nil
}

func printRecords(c *console, title string, records []map[string]any) {
	c.printf("%s:\n", title)
	if len(records) == 0 {
		c.printf("  none\n")
		return
	}
	for _, r := range records {
		if msg, ok := r["message"]; ok {
			c.printf("  - %v\n", msg)
			continue
		}
		c.printf("  - %v\n", r)
	}
}

func runLighting(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "lighting")
	schedules := fs.Bool("schedules", false, "list schedules")
	zoneID := fs.String("zone", "", "light zone to command")
	action := fs.String("action", "", "on, off or set_intensity")
	intensity := fs.Int("intensity", -1, "intensity percent for set_intensity")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := farmID(ctx, c)
	if err != nil {
		return err
	}

	switch {
	case *action != "":
		if *zoneID == "" {
			return fmt.Errorf("-action needs -zone")
		}
		cmd := resources.LightCommand{Action: *action}
		if *intensity >= 0 {
			cmd.Intensity = intensity
		}
		msg, err := c.app.Resources.Lighting.Command(ctx, id, *zoneID, cmd)
		if err != nil {
			return err
		}
		c.printf("%s\n", msg)
		return nil
	case *schedules:
		list, err := c.app.Resources.Lighting.Schedules(ctx, id)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(list))
		for _, s := range list {
			rows = append(rows, []string{s.ID, s.Name, s.LightZoneID, fmt.Sprint(s.IsActive)})
		}
		c.table("ID\tNAME\tLIGHT ZONE\tACTIVE", rows)
		return nil
	}

	zones, err := c.app.Resources.Lighting.Zones(ctx, id)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(zones))
	for _, z := range zones {
		rows = append(rows, []string{z.ID, z.Name, z.FixtureType, strconv.Itoa(z.MaxIntensityPercent) + "%", fmt.Sprint(z.IsActive)})
	}
	c.table("ID\tNAME\tFIXTURE\tMAX\tACTIVE", rows)
	return nil
}

func runDosing(ctx context.Context, c *console, args []string) error {
	fs := newFlags(c, "dosing")
	recipes := fs.Bool("recipes", false, "list recipes")
	events := fs.Bool("events", false, "list dosing events")
	pumpID := fs.String("pump", "", "pump to dose")
	ml := fs.Float64("ml", 0, "volume in millilitres for a manual dose")
	if err := fs.Parse(args); err != nil {
		return err
	}
	id, err := farmID(ctx, c)
	if err != nil {
		return err
	}

	switch {
	case *pumpID != "":
		if *ml <= 0 {
			return fmt.Errorf("-pump needs a positive -ml")
		}
		event, err := c.app.Resources.Dosing.Dose(ctx, id, *pumpID, *ml)
		if err != nil {
			return err
		}
		c.printf("Dosed %s ml in %ss: %s\n", format.FormatNumber(event.VolumeML, 1), format.FormatNumber(event.DurationSeconds, 1), status(event.Status))
		return nil
	case *recipes:
		list, err := c.app.Resources.Dosing.Recipes(ctx, id)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(list))
		for _, r := range list {
			rows = append(rows, []string{r.ID, r.Name, r.GrowthStage,
				format.FormatNumber(r.TargetPHMin, 1) + "-" + format.FormatNumber(r.TargetPHMax, 1),
				format.FormatNumber(r.TargetEC, 2) + " " + format.SensorUnit("ec")})
		}
		c.table("ID\tNAME\tSTAGE\tPH\tEC", rows)
		return nil
	case *events:
		page, err := c.app.Resources.Dosing.Events(ctx, id, nil)
		if err != nil {
			return err
		}
		rows := make([][]string, 0, len(page.Items))
		for _, e := range page.Items {
			rows = append(rows, []string{format.FormatDateTime(e.CreatedAt.Local()), e.PumpID, e.Trigger, format.FormatNumber(e.VolumeML, 1) + " ml", status(e.Status)})
		}
		c.table("AT\tPUMP\tTRIGGER\tVOLUME\tSTATUS", rows)
		footer(c, len(page.Items), page.Total)
		return nil
	}

	pumps, err := c.app.Resources.Dosing.Pumps(ctx, id)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(pumps))
	for _, p := range pumps {
		rows = append(rows, []string{p.ID, p.Name, p.PumpType, format.FormatNumber(p.MLPerSecond, 2) + " ml/s", optionalTime(p.LastDoseAt)})
	}
	c.table("ID\tNAME\tTYPE\tRATE\tLAST DOSE", rows)
	return nil
}
