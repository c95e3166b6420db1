package scaffold

import "go.followtheprocess.codes/hue"

// Styles.
const (
	// labelStyle is the style used for field labels like "Org ID" when
	// showing an organisation on the command line.
	labelStyle = hue.Cyan | hue.Bold

	// dimmed is the style used for informational content like route
	// placeholders or file names.
	dimmed = hue.BrightBlack | hue.Italic

	// method is the style used to render HTTP methods in endpoint listings.
	method = hue.Green | hue.Bold

	// sepWidth is the width in characters of the horizontal line separator
	// between sections of output.
	sepWidth = 80
)
