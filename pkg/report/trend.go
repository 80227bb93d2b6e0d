package report

// Trend display labels as emitted by the feed. Trends are kept as verbatim
// strings on the reading; only the color lookup is canonical.
const (
	TrendFalling = "Falling"
	TrendSteady  = "Steady"
	TrendRising  = "Rising"
)

var trendColors = map[string]string{
	TrendFalling: "#32CD32",
	TrendSteady:  "#008000",
	TrendRising:  "#E00000",
}

// TrendColor returns the hex color for a trend label. An unrecognized label
// falls back to Steady's color; the label itself is rendered unchanged.
func TrendColor(trend string) string {
	if c, ok := trendColors[trend]; ok {
		return c
	}
	return trendColors[TrendSteady]
}
