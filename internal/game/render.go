package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/entity"
	"github.com/vovakirdan/tui-rpg/internal/region"
	"github.com/vovakirdan/tui-rpg/internal/world"
)

// SpriteKind tells what a sprite depicts.
type SpriteKind int

const (
	SpriteItem SpriteKind = iota
	SpriteNPC
	SpriteEnemy
	SpriteBoss
	SpriteProjectile
	SpritePlayer
	SpriteSlash
)

// Sprite is one drawable at a world position, already resolved to a frame.
type Sprite struct {
	Kind  SpriteKind
	Name  string
	Frame string // glyph text drawn centred on Pos
	Color core.Color
	Pos   core.Vec
	HP    float64 // hp ratio for actors, 0 otherwise
}

const (
	hudRows    = 2
	minScreenW = 40
	minScreenH = 12
)

// RenderState lists everything to draw between the background and
// foreground layers, in draw order.
func (g *Game) RenderState() []Sprite {
	sprites := make([]Sprite, 0, g.ground.Len()+len(g.enemies)+len(g.player.Projectiles)+4)

	for _, pl := range g.ground.Placements() {
		sprites = append(sprites, Sprite{
			Kind:  SpriteItem,
			Name:  pl.Item.Name,
			Frame: string(pl.Item.Glyph()),
			Color: core.ColorBrightYellow,
			Pos:   pl.Pos,
		})
	}

	for _, r := range g.regions {
		if r.Kind != region.KindNPC || r.NPC.Sprite == "" {
			continue
		}
		sheet := g.ctx.Sprites.Sheet(r.NPC.Sprite)
		sprites = append(sprites, Sprite{
			Kind:  SpriteNPC,
			Name:  r.NPC.Name,
			Frame: sheet.Frame("down", 0),
			Color: sheet.Color,
			Pos:   r.Center(),
		})
	}

	for _, e := range g.enemies {
		sheet := g.ctx.Sprites.Sheet(e.Sprite)
		sp := Sprite{Kind: SpriteEnemy, Name: e.Name, Color: sheet.Color, Pos: e.Pos, HP: e.HPRatio()}
		if e.IsBoss() {
			sp.Kind = SpriteBoss
			sp.Frame = sheet.RowFrame(e.Boss.Index, e.Anim.Frame)
		} else {
			sp.Frame = sheet.Frame(e.Facing.String(), e.Anim.Frame)
		}
		sprites = append(sprites, sp)
	}

	p := g.player
	arrow := g.ctx.Sprites.Sheet("arrow")
	for _, pr := range p.Projectiles {
		sprites = append(sprites, Sprite{
			Kind:  SpriteProjectile,
			Frame: arrow.Frame(entity.DirectionOf(pr.Dir, entity.DirDown).String(), 0),
			Color: arrow.Color,
			Pos:   pr.Pos,
		})
	}

	hero := g.ctx.Sprites.Sheet(p.Sprite)
	sprites = append(sprites, Sprite{
		Kind:  SpritePlayer,
		Name:  p.Name,
		Frame: hero.Frame(p.Facing.String(), p.Anim.Frame),
		Color: hero.Color,
		Pos:   p.Pos,
		HP:    p.HPRatio(),
	})

	if p.Attacking && !p.Hand().IsRanged() {
		slash := g.ctx.Sprites.Sheet("slash")
		sprites = append(sprites, Sprite{
			Kind:  SpriteSlash,
			Frame: slash.Frame(p.Facing.String(), p.AttackFrame),
			Color: slash.Color,
			Pos:   p.Pos.Add(p.Facing.Vec().Scale(entity.MeleeReach)),
		})
	}

	return sprites
}

// Camera returns the top-left world pixel of a view of viewW×viewH
// pixels centred on the player and clamped to the map.
func (g *Game) Camera(viewW, viewH int) core.Vec {
	x := g.player.Pos.X - float64(viewW)/2
	y := g.player.Pos.Y - float64(viewH)/2
	x = core.ClampF(x, 0, math.Max(0, float64(g.world.WidthPx-viewW)))
	y = core.ClampF(y, 0, math.Max(0, float64(g.world.HeightPx-viewH)))
	return core.V(x, y)
}

// Render draws the scene into dst: map layers, sprites, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		return
	}

	video := g.ctx.Settings.Video
	cw, ch := video.CellWidth, video.CellHeight
	viewRows := dst.Height() - hudRows
	g.camera = g.Camera(dst.Width()*cw, viewRows*ch)

	for _, layer := range g.world.Background() {
		g.drawLayer(dst, layer, viewRows)
	}
	for _, sp := range g.RenderState() {
		g.drawSprite(dst, sp, viewRows)
	}
	for _, layer := range g.world.Foreground() {
		g.drawLayer(dst, layer, viewRows)
	}

	g.renderHUD(dst, viewRows)

	switch {
	case g.outcome == OutcomeDead:
		renderOverlay(dst, "You died", fmt.Sprintf("Level %d  Kills %d", g.player.Level, g.kills))
	case g.inventory.open:
		g.renderInventory(dst)
	case g.message != "":
		renderMessage(dst, g.message)
	}
}

func (g *Game) toCell(p core.Vec) (int, int) {
	video := g.ctx.Settings.Video
	x := int(math.Floor((p.X - g.camera.X) / float64(video.CellWidth)))
	y := int(math.Floor((p.Y - g.camera.Y) / float64(video.CellHeight)))
	return x, y
}

func (g *Game) drawLayer(dst *core.Screen, layer world.TileLayer, viewRows int) {
	video := g.ctx.Settings.Video
	for sy := 0; sy < viewRows; sy++ {
		wy := int(g.camera.Y) + sy*video.CellHeight + video.CellHeight/2
		row := wy / g.world.TileH
		for sx := 0; sx < dst.Width(); sx++ {
			wx := int(g.camera.X) + sx*video.CellWidth + video.CellWidth/2
			if tile, ok := layer.At(wx/g.world.TileW, row); ok {
				dst.SetColored(sx, sy, tile.Glyph, tile.Color)
			}
		}
	}
}

func (g *Game) drawSprite(dst *core.Screen, sp Sprite, viewRows int) {
	x, y := g.toCell(sp.Pos)
	if y < 0 || y >= viewRows {
		return
	}
	runes := []rune(sp.Frame)
	x -= len(runes) / 2
	for i, r := range runes {
		if cx := x + i; cx >= 0 && cx < dst.Width() {
			dst.SetColored(cx, y, r, sp.Color)
		}
	}

	// Wounded enemies get a short bar above them.
	if (sp.Kind == SpriteEnemy || sp.Kind == SpriteBoss) && sp.HP < 1 && y > 0 {
		width := 3
		if sp.Kind == SpriteBoss {
			width = 5
		}
		bx := x + len(runes)/2 - width/2
		if bx >= 0 && bx+width <= dst.Width() {
			dst.DrawBar(bx, y-1, width, sp.HP, core.ColorRed)
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, top int) {
	p := g.player
	w := dst.Width()

	for x := 0; x < w; x++ {
		dst.Set(x, top, '─')
	}

	y := top + 1
	x := 0
	dst.DrawTextColored(x, y, "HP ", core.ColorWhite)
	x += 3
	dst.DrawBar(x, y, 10, p.HPRatio(), core.ColorGreen)
	x += 11
	hp := fmt.Sprintf("%d/%d", int(math.Ceil(p.HP)), int(p.HPMax))
	dst.DrawText(x, y, hp)
	x += len(hp) + 2

	lv := fmt.Sprintf("Lv %d ", p.Level)
	dst.DrawTextColored(x, y, lv, core.ColorMagenta)
	x += len(lv)
	xpRatio := 0.0
	if p.XPNext > 0 {
		xpRatio = p.XP / p.XPNext
	}
	dst.DrawBar(x, y, 8, xpRatio, core.ColorMagenta)
	x += 10

	info := fmt.Sprintf("Gold %d  Hand: %s  (%d,%d)", p.Gold, p.Hand(), int(p.Pos.X), int(p.Pos.Y))
	dst.DrawText(x, y, info)

	if g.notice != "" {
		msg := " " + g.notice + " "
		dst.DrawTextColored(max(0, w-len(msg)), top, msg, core.ColorBrightYellow)
	} else {
		title := " " + g.Title() + " "
		dst.DrawText(2, top, title)
	}
}

func (g *Game) renderInventory(dst *core.Screen) {
	inv := g.player.Inventory
	boxW := min(dst.Width()-4, 44)
	boxH := min(dst.Height()-2, inv.Capacity()+4)
	bx := (dst.Width() - boxW) / 2
	by := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(bx, by, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(bx, by, boxW, boxH))
	dst.DrawTextColored(bx+2, by, fmt.Sprintf(" Inventory %d/%d ", inv.Len(), inv.Capacity()), core.ColorBrightYellow)

	if inv.Len() == 0 {
		dst.DrawText(bx+2, by+2, "(empty)")
	}

	cursor, held := g.InventoryCursor()
	visible := boxH - 3
	first := 0
	if cursor >= visible {
		first = cursor - visible + 1
	}
	for i := first; i < inv.Len() && i-first < visible; i++ {
		it := inv.At(i)
		marker := "  "
		switch {
		case i == held:
			marker = "* "
		case i == cursor:
			marker = "> "
		}
		line := fmt.Sprintf("%s%c %-18s %s", marker, it.Glyph(), it.Name, it.Kind)
		if i == 0 {
			line += " (hand)"
		}
		color := core.ColorDefault
		if i == cursor {
			color = core.ColorBrightGreen
		}
		dst.DrawTextColored(bx+2, by+1+i-first, truncate(line, boxW-4), color)
	}
	dst.DrawTextColored(bx+2, by+boxH-1, " W/S move  E pick/swap  I close ", core.ColorGray)
}

func renderMessage(dst *core.Screen, msg string) {
	lines := wrap(msg, min(dst.Width()-6, 60))
	boxW := 4
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l))+4)
	}
	boxH := len(lines) + 2
	bx := (dst.Width() - boxW) / 2
	by := dst.Height() - hudRows - boxH - 1

	dst.DrawRect(core.NewRect(bx, by, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(bx, by, boxW, boxH))
	for i, l := range lines {
		dst.DrawTextColored(bx+2, by+1+i, l, core.ColorWhite)
	}
}

func renderOverlay(dst *core.Screen, title, subtitle string) {
	cy := dst.Height() / 2
	boxW := max(len(title), len(subtitle)) + 6
	bx := (dst.Width() - boxW) / 2

	dst.DrawRect(core.NewRect(bx, cy-2, boxW, 5), ' ')
	dst.DrawBox(core.NewRect(bx, cy-2, boxW, 5))
	dst.DrawTextColored((dst.Width()-len(title))/2, cy-1, title, core.ColorBrightRed)
	dst.DrawTextCentered(cy+1, subtitle)
}

func wrap(text string, width int) []string {
	if width <= 0 {
		return []string{text}
	}
	var lines []string
	var cur strings.Builder
	for _, word := range strings.Fields(text) {
		if cur.Len() > 0 && cur.Len()+1+len(word) > width {
			lines = append(lines, cur.String())
			cur.Reset()
		}
		if cur.Len() > 0 {
			cur.WriteByte(' ')
		}
		cur.WriteString(word)
	}
	if cur.Len() > 0 {
		lines = append(lines, cur.String())
	}
	return lines
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 0 {
		return ""
	}
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
