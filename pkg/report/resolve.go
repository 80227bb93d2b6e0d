package report

import "github.com/usmankhanpk/riverboard/pkg/feed"

// Reading is one resolved station row of the report. It is built once per
// run and consumed read-only by the layout engine and renderer.
type Reading struct {
	Title     string
	Severity  Severity
	Flow      string
	Trend     string
	ShortName string
}

// Resolve joins the station table against the payload records and returns
// exactly one reading per descriptor, in table order. The second return
// value lists the api_names of configured stations absent from the payload;
// those rows carry the documented default reading so a dropped station never
// removes a row from the report.
func Resolve(table Table, stations []feed.Station) ([]Reading, []string) {
	readings := make([]Reading, 0, len(table.Stations))
	var missing []string

	for _, d := range table.Stations {
		rec, ok := findStation(stations, d.APIName)
		if !ok {
			missing = append(missing, d.APIName)
			readings = append(readings, Reading{
				Title:     d.Title(),
				Severity:  Normal,
				Flow:      "0 cusecs",
				Trend:     TrendSteady,
				ShortName: d.ShortName,
			})
			continue
		}

		status := rec.Status
		if status == "" {
			status = "NORMAL"
		}

		flow := string(rec.OutflowDischarge)
		if flow == "" {
			flow = string(rec.InflowDischarge)
		}
		if flow == "" {
			flow = "0"
		}

		trend := rec.OutflowTrend
		if trend == "" {
			trend = rec.InflowTrend
		}
		if trend == "" {
			trend = TrendSteady
		}

		readings = append(readings, Reading{
			Title:     d.Title(),
			Severity:  ParseSeverity(status),
			Flow:      FormatFlow(flow),
			Trend:     trend,
			ShortName: d.ShortName,
		})
	}
	return readings, missing
}

// findStation returns the first payload record whose name matches exactly.
// Duplicate names are not expected upstream but are not rejected either.
func findStation(stations []feed.Station, name string) (feed.Station, bool) {
	for _, s := range stations {
		if s.Name == name {
			return s, true
		}
	}
	return feed.Station{}, false
}
