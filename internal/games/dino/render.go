package dino

import (
	"fmt"

	"github.com/vovakirdan/rex-runner/internal/config"
	"github.com/vovakirdan/rex-runner/internal/core"
)

// glyphs holds the resolved single-rune visuals.
type glyphs struct {
	running  rune
	jumping  rune
	crashed  rune
	obstacle rune
	ground   rune
}

func newGlyphs(c config.GlyphConfig) glyphs {
	return glyphs{
		running:  config.Glyph(c.Running, 'R'),
		jumping:  config.Glyph(c.Jumping, '^'),
		crashed:  config.Glyph(c.Crashed, 'X'),
		obstacle: config.Glyph(c.Obstacle, '#'),
		ground:   config.Glyph(c.Ground, '-'),
	}
}

func (gl glyphs) pose(p Pose) rune {
	switch p {
	case PoseCrashed:
		return gl.crashed
	case PoseJumping:
		return gl.jumping
	default:
		return gl.running
	}
}

// Render draws the current game state to the screen.
// It only reads the game, so it is safe to call on every frame.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Ground line sits one row below the running surface
	dst.DrawHLine(0, g.groundRow+1, dst.Width(), g.glyphs.ground, core.ColorCyan)

	// Obstacles
	for _, o := range g.obstacles.Obstacles() {
		if o.X < dst.Width() {
			dst.SetColored(o.X, g.groundRow, g.glyphs.obstacle, core.ColorYellow)
		}
	}

	// Character, drawn last so a crash stays visible
	dinoColor := core.ColorGreen
	if g.gameOver {
		dinoColor = core.ColorRed
	}
	dst.SetColored(g.cfg.Player.X, g.dino.Row(), g.glyphs.pose(g.dino.Pose(g.gameOver)), dinoColor)

	// HUD
	dst.DrawText(0, 0, fmt.Sprintf("Score: %d", g.score))

	if g.gameOver {
		g.drawCenteredMessage(dst, "GAME OVER!", "r: restart  q: quit")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorRed)

	dst.DrawTextColored(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorRed)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
