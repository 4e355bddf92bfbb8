package detector

// LayoutCandidate is a known timestamp layout tried during detection.
type LayoutCandidate struct {
	Name      string   // Human-readable name
	Layout    string   // Go time layout, parsed from the line prefix
	Examples  []string // Example prefixes
	Ambiguous bool     // True if the format has date ordering ambiguity
}

// DefaultLayouts returns the built-in layouts to detect, ordered roughly
// by specificity (longer, more specific layouts first so ties break
// toward them).
func DefaultLayouts() []*LayoutCandidate {
	return []*LayoutCandidate{
		{
			Name:     "ISO 8601 with timezone",
			Layout:   "2006-01-02T15:04:05-07:00",
			Examples: []string{"2024-01-15T10:30:00+00:00"},
		},
		{
			Name:     "ISO 8601 with milliseconds",
			Layout:   "2006-01-02T15:04:05.000",
			Examples: []string{"2024-01-15T10:30:00.123"},
		},
		{
			Name:     "ISO 8601 with Z (UTC)",
			Layout:   "2006-01-02T15:04:05Z",
			Examples: []string{"2024-01-15T10:30:00Z"},
		},
		{
			Name:     "Bracketed datetime",
			Layout:   "[2006-01-02 15:04:05]",
			Examples: []string{"[2024-01-15 10:30:00]"},
		},
		{
			Name:     "Datetime with milliseconds",
			Layout:   "2006-01-02 15:04:05.000",
			Examples: []string{"2024-01-15 10:30:00.123"},
		},
		{
			Name:     "Plain datetime (logsift default)",
			Layout:   "2006-01-02 15:04:05",
			Examples: []string{"2024-01-15 10:30:00"},
		},
		{
			Name:     "ISO 8601",
			Layout:   "2006-01-02T15:04:05",
			Examples: []string{"2024-01-15T10:30:00"},
		},
		{
			Name:     "Apache/NGINX CLF",
			Layout:   "[02/Jan/2006:15:04:05 -0700]",
			Examples: []string{"[15/Jun/2024:10:30:00 +0000]"},
		},
		{
			Name:     "Apache error log",
			Layout:   "[Mon Jan 02 15:04:05 2006]",
			Examples: []string{"[Sun Dec 04 04:47:44 2005]"},
		},
		{
			Name:     "Syslog (BSD)",
			Layout:   "Jan _2 15:04:05",
			Examples: []string{"Jun 14 15:16:01", "Jan  5 09:30:00"},
		},
		{
			Name:      "Short date",
			Layout:    "06/01/02 15:04:05",
			Examples:  []string{"17/06/09 20:10:40"},
			Ambiguous: true,
		},
		{
			Name:     "Compact datetime",
			Layout:   "060102 150405",
			Examples: []string{"081109 203615"},
		},
	}
}
