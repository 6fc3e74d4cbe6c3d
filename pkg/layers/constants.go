package layers

// AutoCAD Color Index codes used by the rule table.
const (
	ColorRed     = 1
	ColorYellow  = 2
	ColorGreen   = 3
	ColorCyan    = 4
	ColorBlue    = 5
	ColorMagenta = 6
	ColorWhite   = 7
	ColorGray    = 8
)

const (
	LayerMisc          = "MISC"
	OtherLayerSuffix   = "_OTHER"
	DefaultRule        = "default"
	FallbackLineweight = 10
	MiscLineweight     = 5
)
