package counter

// ParseSeed resolves the counter route's path segments to the widget's
// initial value. A missing or multi-part segment, or one without a leading
// integer, seeds 0.
func ParseSeed(segments []string) int {
	if len(segments) != 1 {
		return 0
	}

	n, ok := parseLeadingInt(segments[0])
	if !ok {
		return 0
	}

	return n
}

// DisplaySeed is the raw segment as shown on the counter page, "0" when
// there is nothing to show.
func DisplaySeed(segment string) string {
	if segment == "" {
		return "0"
	}

	return segment
}
