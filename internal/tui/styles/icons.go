package styles

// Status markers shown in front of each file list entry.
const (
	ChangedIcon string = "M"
	NewIcon     string = "A"
	DeletedIcon string = "D"
	RenamedIcon string = "R"

	// Filler drawn across placeholder rows.
	OldPlaceholderFill string = "-"
	NewPlaceholderFill string = "+"
)
