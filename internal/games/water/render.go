package water

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-drops/internal/core"
	"github.com/vovakirdan/tui-drops/internal/facts"
	"github.com/vovakirdan/tui-drops/internal/sim"
)

// Glyphs used on the playfield.
const (
	DropGlyph     = '●'
	EnemyGlyph    = '✖'
	HitGlyph      = 'x'
	FlagGlyph     = '⚑'
	PoleGlyph     = '│'
	GrassGlyph    = '▀'
	SoilGlyph     = '▒'
	CatcherGlyph  = '▀'
	RunnerGlyph   = '█'
	MeterFull     = '█'
	MeterEmpty    = '░'
	maxMeterWidth = 30
	maxPanelWidth = 56
)

// Pollutant looks by variant: trash, oil, plastic, chemical, paper.
var pollutantLooks = []struct {
	glyph rune
	color core.Color
}{
	{'#', core.ColorGray},
	{'◆', core.ColorBrown},
	{'▪', core.ColorWhite},
	{'☢', core.ColorBrightGreen},
	{'≡', core.ColorYellow},
}

var namedColors = map[string]core.Color{
	"red":     core.ColorRed,
	"green":   core.ColorGreen,
	"yellow":  core.ColorYellow,
	"blue":    core.ColorBlue,
	"magenta": core.ColorMagenta,
	"cyan":    core.ColorCyan,
	"white":   core.ColorWhite,
	"orange":  core.ColorOrange,
}

// Render draws the current snapshot.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH))
		return
	}

	g.renderHUD(dst)
	dst.DrawBoxColored(core.NewRect(0, 2, dst.Width(), dst.Height()-3), core.ColorGray)
	g.renderStatics(dst)
	g.renderEntities(dst)
	if g.snap.Phase != sim.PhaseTitle {
		g.renderActor(dst)
	}
	g.renderStatus(dst)
	g.renderOverlay(dst)
}

func (g *Game) renderHUD(dst *core.Screen) {
	s := &g.snap
	left := fmt.Sprintf("Score: %d  Streak: %d  Best: %d", s.Score, s.Streak, s.BestStreak)
	if s.Mode == sim.ModeQuest {
		left = fmt.Sprintf("Score: %d  Lives: %s", s.Score, strings.Repeat("♥", s.Actor.Lives))
	}
	dst.DrawText(1, 0, left)

	var right string
	switch {
	case s.Mode == sim.ModeQuest && s.ZoneCount > 0:
		right = fmt.Sprintf("Zone %d/%d: %s", s.ZoneIndex+1, s.ZoneCount, s.ZoneName)
	case s.Stage >= 0:
		right = fmt.Sprintf("Level %d", s.Stage+2)
	default:
		right = "Level 1"
	}
	if s.Phase != sim.PhaseTitle && s.TimeRemaining > 0 {
		timer := fmt.Sprintf("Time: %2d", s.TimeRemaining)
		x := dst.Width() - len(timer) - 1
		dst.DrawTextColored(x, 0, timer, core.Warning(s.LowTime))
		right += "  "
		dst.DrawText(x-ansi.StringWidth(right), 0, right)
	} else {
		dst.DrawText(dst.Width()-ansi.StringWidth(right)-1, 0, right)
	}

	g.renderMeter(dst, 1)
}

// renderMeter draws the water meter on row y.
func (g *Game) renderMeter(dst *core.Screen, y int) {
	s := &g.snap
	label := "Water "
	width := core.Clamp(dst.Width()-24, 5, maxMeterWidth)
	filled := width * s.Progress / 100

	dst.DrawText(1, y, label)
	x := 1 + len(label)
	dst.DrawHLine(x, y, filled, MeterFull, core.ColorWater)
	dst.DrawHLine(x+filled, y, width-filled, MeterEmpty, core.ColorGray)
	dst.DrawText(x+width+1, y, fmt.Sprintf("%3d%% (%d/%d)", s.Progress, s.CleanCollected, s.Target))
}

// fill paints the cells of a world box, clipped to the playfield.
func (g *Game) fill(dst *core.Screen, b core.Rect, r rune, c core.Color) {
	for y := b.Y; y < b.Bottom(); y++ {
		for x := b.X; x < b.Right(); x++ {
			if g.field.Contains(x, y) {
				dst.SetColored(x, y, r, c)
			}
		}
	}
}

func (g *Game) renderStatics(dst *core.Screen) {
	for _, st := range g.snap.Statics {
		r := g.boxToCells(st.Box)
		switch st.Kind {
		case sim.StaticPlatform:
			g.fill(dst, r, SoilGlyph, core.ColorBrown)
			g.fill(dst, core.NewRect(r.X, r.Y, r.W, 1), GrassGlyph, core.ColorGreen)
		case sim.StaticCheckpoint:
			color := core.ColorYellow
			if st.Triggered {
				color = core.ColorBrightGreen
			}
			g.fill(dst, core.NewRect(r.X, r.Y+1, 1, r.H-1), PoleGlyph, core.ColorWhite)
			g.fill(dst, core.NewRect(r.X, r.Y, 1, 1), FlagGlyph, color)
		}
	}
}

func (g *Game) renderEntities(dst *core.Screen) {
	for _, e := range g.snap.Entities {
		if e.Exited {
			continue
		}
		r := g.boxToCells(e.Box)
		switch e.Kind {
		case sim.KindClean:
			g.fill(dst, r, DropGlyph, core.ColorWater)
		case sim.KindCollectible:
			g.fill(dst, r, DropGlyph, core.ColorBrightCyan)
		case sim.KindPollutant:
			look := pollutantLooks[e.Variant%len(pollutantLooks)]
			g.fill(dst, r, look.glyph, look.color)
		case sim.KindEnemy:
			if e.Consumed {
				g.fill(dst, r, HitGlyph, core.ColorGray)
			} else {
				g.fill(dst, r, EnemyGlyph, core.ColorRed)
			}
		}
	}
}

func (g *Game) renderActor(dst *core.Screen) {
	a := g.snap.Actor
	color := core.ColorCyan
	for _, ch := range g.cfg.Characters {
		if ch.ID == g.snap.Character {
			if c, ok := namedColors[ch.Color]; ok {
				color = c
			}
		}
	}

	r := g.boxToCells(a.Box)
	if g.snap.Mode == sim.ModeDrops {
		g.fill(dst, core.NewRect(r.X, r.Y, r.W, 1), CatcherGlyph, color)
		return
	}
	g.fill(dst, r, RunnerGlyph, color)
}

func (g *Game) renderStatus(dst *core.Screen) {
	y := dst.Height() - 1
	if g.feedback.active() {
		dst.DrawTextCenteredColored(y, g.feedback.text, g.feedback.color)
		return
	}
	if g.snap.Phase != sim.PhasePlaying {
		return
	}
	hint := "←/→ move  •  click drops  •  P pause  •  Q quit"
	if g.snap.Mode == sim.ModeQuest {
		hint = "←/→ move  •  SPACE jump  •  P pause  •  Q quit"
	}
	dst.DrawTextCenteredColored(y, hint, core.ColorGray)
}

// line is one row of an overlay panel.
type line struct {
	text  string
	color core.Color
}

func (g *Game) renderOverlay(dst *core.Screen) {
	if g.paused {
		drawPanel(dst, []line{
			{"PAUSED", core.ColorBrightYellow},
			{"", 0},
			{"Press P to resume", core.ColorDefault},
		})
		return
	}

	switch g.snap.Phase {
	case sim.PhaseTitle:
		drawPanel(dst, g.titleLines())
	case sim.PhaseFactPaused:
		drawPanel(dst, g.factLines(dst.Width()))
	case sim.PhaseZoneComplete:
		drawPanel(dst, g.zoneLines())
	case sim.PhaseGameOver:
		drawPanel(dst, g.gameOverLines())
	}
}

func (g *Game) titleLines() []line {
	s := &g.snap
	intro := "Catch clean drops, avoid the pollution!"
	if s.Mode == sim.ModeQuest {
		intro = "Collect water across campus and find the facts!"
	}

	var lines []line
	if s.AllZonesComplete {
		lines = append(lines, line{"All zones complete! Thanks for helping.", core.ColorBrightGreen}, line{"", 0})
	}
	name := s.Character
	for _, ch := range g.cfg.Characters {
		if ch.ID == s.Character {
			name = ch.Name
		}
	}
	return append(lines,
		line{strings.ToUpper(g.Title()), core.ColorWater},
		line{"", 0},
		line{intro, core.ColorDefault},
		line{"", 0},
		line{fmt.Sprintf("Character: %s  [C]", name), core.ColorDefault},
		line{fmt.Sprintf("Difficulty: %s  [D]", s.Difficulty), core.ColorDefault},
		line{"", 0},
		line{"Press ENTER to start", core.ColorBrightYellow},
	)
}

func (g *Game) factLines(screenW int) []line {
	s := &g.snap
	heading := "DID YOU KNOW?"
	if s.Fact.Category == facts.CategoryMotivation {
		heading = "KEEP GOING!"
	}

	lines := []line{{heading, core.ColorBrightCyan}, {"", 0}}
	width := core.Clamp(screenW-8, 10, maxPanelWidth-4)
	for _, l := range strings.Split(ansi.Wordwrap(s.Fact.Text, width, ""), "\n") {
		lines = append(lines, line{l, core.ColorDefault})
	}
	secs := int((s.FactRemaining + time.Second - 1) / time.Second)
	return append(lines, line{"", 0}, line{fmt.Sprintf("ENTER to continue (%ds)", secs), core.ColorGray})
}

func (g *Game) zoneLines() []line {
	sum := g.snap.Summary
	if sum == nil {
		return nil
	}
	next := "ENTER for the next zone"
	if sum.Final {
		next = "ENTER to finish"
	}
	lines := []line{
		{"ZONE COMPLETE", core.ColorBrightGreen},
		{sum.ZoneName, core.ColorDefault},
		{"", 0},
		{fmt.Sprintf("Water collected: %d%% • Facts discovered: %d", sum.ZoneProgress, sum.FactsSeen), core.ColorWater},
	}
	if sum.Final && sum.Message != "" {
		lines = append(lines, line{fmt.Sprintf("Final score: %d", sum.Score), core.ColorDefault}, line{sum.Message, core.ColorBrightYellow})
	}
	return append(lines, line{"", 0}, line{next, core.ColorGray})
}

func (g *Game) gameOverLines() []line {
	sum := g.snap.Summary
	if sum == nil {
		return nil
	}
	title := "GAME OVER"
	if sum.Outcome == sim.OutcomeTimeExpired {
		title = "TIME'S UP!"
	}
	return []line{
		{title, core.ColorBrightRed},
		{"", 0},
		{fmt.Sprintf("Score: %d", sum.Score), core.ColorBrightWhite},
		{fmt.Sprintf("Clean water: %d  •  Best streak: %d  •  Facts: %d", sum.CleanCollected, sum.BestStreak, sum.FactsSeen), core.ColorDefault},
		{"", 0},
		{sum.Message, core.ColorBrightYellow},
		{"", 0},
		{"R or ENTER to play again  •  Q to quit", core.ColorGray},
	}
}

// drawPanel draws a bordered, centred panel with one centred line per row.
func drawPanel(dst *core.Screen, lines []line) {
	if len(lines) == 0 {
		return
	}
	w := 0
	for _, l := range lines {
		w = core.Max(w, ansi.StringWidth(l.text))
	}
	boxW := core.Min(w+4, dst.Width())
	boxH := core.Min(len(lines)+2, dst.Height())
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBoxColored(box, core.ColorWater)
	for i, l := range lines {
		y := box.Y + 1 + i
		if y >= box.Bottom()-1 {
			break
		}
		x := box.X + (boxW-ansi.StringWidth(l.text))/2
		dst.DrawTextColored(x, y, l.text, l.color)
	}
}
