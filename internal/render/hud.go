package render

import (
	"fmt"

	"github.com/spacehole-rogue/missionsim/internal/game"
	"github.com/spacehole-rogue/missionsim/internal/mission"
)

// HUD layout on the 80x45 grid.
const (
	PanelX     = 56 // right-side mission panel
	panelWidth = 24
	CommsRow   = 38 // message log
	CommsLines = 6
	HelpRow    = 44

	missionRows = 8
)

// HUDState is the frontend state the HUD shows next to the simulation.
type HUDState struct {
	Running         bool
	SelectedMission int
	SelectedName    string // selected body or ship, empty for none
}

// MessageColor maps a comms priority to a palette index.
func MessageColor(p game.MsgPriority) uint8 {
	switch p {
	case game.MsgMission:
		return ColorWhite
	case game.MsgReward:
		return ColorLightGreen
	case game.MsgWarning:
		return ColorYellow
	case game.MsgCritical:
		return ColorLightRed
	default:
		return ColorLightCyan
	}
}

// RenderHUD writes the title bar, mission panel, comms log and key help
// into buf.
func RenderHUD(buf *CellBuffer, sim *game.Sim, st HUDState) {
	buf.WriteString(2, 0, "SPACE MISSION SIMULATOR", ColorWhite, ColorBlack)
	buf.WriteString(28, 0, fmt.Sprintf("[ %s ]", game.ModeName(sim.Mode)), ColorPanel, ColorBlack)
	if st.Running {
		buf.WriteString(44, 0, "RUNNING", ColorLightGreen, ColorBlack)
	} else {
		buf.WriteString(44, 0, "PAUSED", ColorYellow, ColorBlack)
	}
	scaleFG := uint8(ColorLightGray)
	if sim.Boosted() {
		scaleFG = ColorLightMagenta
	}
	buf.WriteString(PanelX, 0, fmt.Sprintf("x%.1f  t=%.1fs", sim.TimeScale, sim.Elapsed), scaleFG, ColorBlack)
	buf.HLine(0, 1, buf.Cols, GlyphRule, ColorDarkGray)

	renderPanel(buf, sim, st)

	buf.HLine(0, CommsRow-1, buf.Cols, GlyphRule, ColorDarkGray)
	for i, msg := range sim.Log.Recent(CommsLines) {
		buf.WriteString(1, CommsRow+i, msg.Text, MessageColor(msg.Priority), ColorBlack)
	}

	help := "SPACE run  B boost  S star  P planet  M moon  N ship  G missions  ENTER accept  X extract  H hole  R reset  TAB mode  E export"
	if sim.PlacingBlackHole {
		help = "Click anywhere to place the black hole."
	}
	buf.WriteString(1, HelpRow, truncate(help, buf.Cols-2), ColorDarkGray, ColorBlack)
}

func renderPanel(buf *CellBuffer, sim *game.Sim, st HUDState) {
	x := PanelX
	buf.WriteString(x, 3, fmt.Sprintf("Credits: %d", sim.Credits), ColorYellow, ColorBlack)
	buf.WriteString(x, 4, fmt.Sprintf("Bodies %d  Ships %d", len(sim.Bodies()), len(sim.Ships())), ColorLightGray, ColorBlack)
	if st.SelectedName != "" {
		buf.WriteString(x, 5, truncate("Sel: "+st.SelectedName, panelWidth), ColorSelected, ColorBlack)
	}

	buf.WriteString(x, 7, fmt.Sprintf("Missions (%d)", len(sim.Missions)), ColorPanel, ColorBlack)
	row := 8
	for i, m := range sim.Missions {
		if i >= missionRows {
			buf.WriteString(x, row, fmt.Sprintf("  +%d more", len(sim.Missions)-missionRows), ColorDarkGray, ColorBlack)
			break
		}
		fg := uint8(ColorLightGray)
		marker := "  "
		if i == st.SelectedMission {
			fg = ColorWhite
			marker = "> "
		}
		buf.WriteString(x, row, truncate(marker+m.Description, panelWidth), fg, ColorBlack)
		renderMissionStatus(buf, x+2, row+1, m)
		row += 2
		if row >= CommsRow-2 {
			break
		}
	}
}

func renderMissionStatus(buf *CellBuffer, x, y int, m *mission.Mission) {
	switch m.Status() {
	case mission.StatusPlanned:
		buf.WriteString(x, y, fmt.Sprintf("%s  %dcr", mission.StatusName(m.Status()), m.Reward), ColorDarkGray, ColorBlack)
	case mission.StatusInTransit:
		buf.Bar(x, y, 12, m.Progress(), ColorLightCyan)
		buf.WriteString(x+13, y, fmt.Sprintf("%3.0f%%", m.Progress()*100), ColorLightCyan, ColorBlack)
	case mission.StatusCompleted:
		buf.WriteString(x, y, fmt.Sprintf("Extract %dcr", m.Reward), ColorLightGreen, ColorBlack)
	}
}

func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
