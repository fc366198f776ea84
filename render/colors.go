package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbField      = tcell.NewRGBColor(36, 40, 59)    // Pitch
	RgbFieldLine  = tcell.NewRGBColor(86, 95, 137)   // Walls and halfway line
	RgbStatusText = tcell.NewRGBColor(192, 202, 245) // Status bar text
	RgbDimText    = tcell.NewRGBColor(110, 115, 141) // Idle slots, metrics

	RgbTeamHome     = tcell.NewRGBColor(122, 162, 247) // Blue
	RgbTeamHomeDark = tcell.NewRGBColor(61, 89, 161)
	RgbTeamAway     = tcell.NewRGBColor(247, 118, 142) // Red
	RgbTeamAwayDark = tcell.NewRGBColor(145, 63, 79)

	RgbBall       = tcell.NewRGBColor(255, 255, 255)
	RgbPayload    = tcell.NewRGBColor(255, 158, 100) // Orange
	RgbPayloadHot = tcell.NewRGBColor(255, 80, 80)   // Armed
	RgbPath       = tcell.NewRGBColor(224, 175, 104) // Planned arc dots

	RgbSlotActive   = tcell.NewRGBColor(158, 206, 106) // Green
	RgbSlotDelayed  = tcell.NewRGBColor(224, 175, 104) // Amber
	RgbSlotCooldown = tcell.NewRGBColor(110, 115, 141)
	RgbHealth       = tcell.NewRGBColor(158, 206, 106)
	RgbHealthLow    = tcell.NewRGBColor(247, 118, 142)
)

// TeamColor returns the bright and dark colors of a team
func TeamColor(team uint8) (bright, dark tcell.Color) {
	switch team {
	case 1:
		return RgbTeamHome, RgbTeamHomeDark
	case 2:
		return RgbTeamAway, RgbTeamAwayDark
	}
	return RgbStatusText, RgbDimText
}
