package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-rpg/internal/asset"
	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/entity"
	"github.com/vovakirdan/tui-rpg/internal/save"
)

const testMap = `
id: test
name: Test Field
tile_width: 32
tile_height: 32
width: 20
height: 15
layers:
  - name: ground_bg
    type: tile
    legend:
      "#": {glyph: "#", color: gray}
      ".": {glyph: ".", color: green}
    rows:
      - "####################"
      - "#..................#"
      - "#..................#"
      - "#..................#"
      - "#..................#"
      - "#..................#"
      - "#..................#"
      - "#..................#"
      - "#..................#"
      - "#..................#"
      - "#..................#"
      - "#..................#"
      - "#..................#"
      - "#..................#"
      - "####################"
  - name: Collisions
    type: object
    objects:
      - {x: 0, y: 0, w: 640, h: 32}
      - {x: 0, y: 448, w: 640, h: 32}
      - {x: 0, y: 32, w: 32, h: 416}
      - {x: 608, y: 32, w: 32, h: 416}
scene:
  player_start: {x: 100, y: 100}
  enemies:
    hp: 120
    attack: 5
    defence: 2
    speed: 200
    fixed:
      - {x: 500, y: 400}
    random:
      count: 2
      area: {x1: 560, x2: 590, y1: 380, y2: 420}
  bosses:
    - name: Guard
      index: 0
      at: {x: 520, y: 100}
      hp: 300
      attack: 50
      defence: 20
      speed: 100
      reward: War Axe
      trigger: {x1: 400, x2: 600, y1: 50, y2: 150}
    - name: King
      index: 3
      at: {x: 100, y: 400}
      hp: 500
      attack: 80
      defence: 40
      speed: 100
      requires: Guard
      trigger: {x1: 50, x2: 150, y1: 350, y2: 430}
      support: {hp: 50, attack: 5, defence: 1, speed: 150}
  items:
    - {name: Sword, x: 100, y: 130}
    - {name: Health Potion, x: 300, y: 150}
  portals:
    - {id: P, x1: 300, x2: 340, y1: 300, y2: 340, target: {x: 200, y: 200}}
  signs:
    - {x1: 100, x2: 140, y1: 200, y2: 240, message: "Hello traveller"}
`

func newTestContext(t *testing.T) *Context {
	t.Helper()
	s := config.DefaultSettings()
	s.Difficulty.Enabled = false
	ctx, err := NewContext(s, nil)
	if err != nil {
		t.Fatalf("NewContext() failed: %v", err)
	}
	return ctx
}

func newTestGame(t *testing.T, opts Options) *Game {
	t.Helper()
	g, err := New(newTestContext(t), []byte(testMap), opts)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	return g
}

func input(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

const dt = 1.0 / 60

func TestNewSceneSetup(t *testing.T) {
	g := newTestGame(t, Options{Seed: 1})

	if g.Player().Pos != core.V(100, 100) {
		t.Errorf("player start = %v, expected (100,100)", g.Player().Pos)
	}
	if len(g.Enemies()) != 3 {
		t.Errorf("enemies = %d, expected 1 fixed + 2 random", len(g.Enemies()))
	}
	if g.Ground().Len() != 2 {
		t.Errorf("ground items = %d, expected 2", g.Ground().Len())
	}
	for _, e := range g.Enemies() {
		if g.World().Collides(e.Rect()) {
			t.Errorf("enemy spawned inside a wall at %v", e.Pos)
		}
	}
}

func TestSameSeedSameSpawns(t *testing.T) {
	a := newTestGame(t, Options{Seed: 42})
	b := newTestGame(t, Options{Seed: 42})
	for i := range a.Enemies() {
		if a.Enemies()[i].Pos != b.Enemies()[i].Pos {
			t.Fatalf("spawn %d differs: %v vs %v", i, a.Enemies()[i].Pos, b.Enemies()[i].Pos)
		}
	}
}

func TestMissingSpriteIsFatal(t *testing.T) {
	doc := strings.Replace(testMap, "  enemies:\n", "  enemies:\n    sprite: dragon\n", 1)
	_, err := New(newTestContext(t), []byte(doc), Options{})
	if !errors.Is(err, asset.ErrMissingSprites) {
		t.Errorf("New() error = %v, expected ErrMissingSprites", err)
	}
}

func TestMalformedSaveStartsNewGame(t *testing.T) {
	g := newTestGame(t, Options{SaveData: []byte(`{"hp": "lots"`)})
	if g.Player().Level != 1 || g.Player().Pos != core.V(100, 100) {
		t.Errorf("expected a fresh player, got level %d at %v", g.Player().Level, g.Player().Pos)
	}
}

func TestSaveRestoresPlayerAndClearsGround(t *testing.T) {
	first := newTestGame(t, Options{})
	p := first.Player()
	sword, _ := first.ctx.Items.ByName("Sword")
	p.Inventory.Add(sword)
	p.Level = 4
	p.HP = 33
	p.Pos = core.V(250, 250)

	data, err := first.SaveData()
	if err != nil {
		t.Fatalf("SaveData() failed: %v", err)
	}

	g := newTestGame(t, Options{SaveData: data})
	if g.Player().Level != 4 || g.Player().HP != 33 || g.Player().Pos != core.V(250, 250) {
		t.Errorf("restored player = level %d hp %v at %v", g.Player().Level, g.Player().HP, g.Player().Pos)
	}
	if g.Ground().Len() != 1 {
		t.Errorf("ground items = %d, expected the carried sword removed", g.Ground().Len())
	}
	doc := g.ToSaveDocument()
	if len(doc.Inventory) != 1 || doc.Inventory[0] != "Sword" {
		t.Errorf("save inventory = %v", doc.Inventory)
	}
	if _, err := save.Parse(data); err != nil {
		t.Errorf("written save does not parse: %v", err)
	}
}

func TestSessionOutcomes(t *testing.T) {
	g := newTestGame(t, Options{})
	if out := g.Update(dt, input(core.ActionPause)); out != OutcomeMenu {
		t.Errorf("pause outcome = %v, expected menu", out)
	}

	g = newTestGame(t, Options{})
	if out := g.Update(dt, input(core.ActionQuit)); out != OutcomeQuit {
		t.Errorf("quit outcome = %v, expected quit", out)
	}
	if out := g.Update(dt, input()); out != OutcomeQuit {
		t.Error("an ended session should stay ended")
	}

	g = newTestGame(t, Options{})
	g.Player().HP = 0.001
	e := g.Enemies()[0]
	e.Pos = g.Player().Pos.Add(core.V(20, 0))
	e.AttackDamage = 1000
	if out := g.Update(dt, input()); out != OutcomeDead {
		t.Errorf("outcome = %v, expected dead", out)
	}
}

func TestPlayerMovesAndStopsAtWalls(t *testing.T) {
	g := newTestGame(t, Options{})
	for i := 0; i < 120; i++ {
		g.Update(dt, input(core.ActionLeft))
	}
	p := g.Player()
	if p.Pos.X >= 100 {
		t.Errorf("player did not move left: %v", p.Pos)
	}
	if g.World().Collides(p.Rect()) {
		t.Errorf("player ended inside a wall at %v", p.Pos)
	}
}

func TestMeleeKillAwardsXPAndGold(t *testing.T) {
	g := newTestGame(t, Options{})
	p := g.Player()
	e := g.Enemies()[0]
	e.Pos = p.Pos.Add(core.V(30, 0))
	e.HP = 1
	before := len(g.Enemies())

	g.Update(dt, input(core.ActionAttack))

	if len(g.Enemies()) != before-1 {
		t.Fatalf("enemies = %d, expected the dead one removed", len(g.Enemies()))
	}
	if g.Kills() != 1 {
		t.Errorf("kills = %d, expected 1", g.Kills())
	}
	if p.Gold != g.ctx.Settings.Gameplay.KillGold {
		t.Errorf("gold = %d, expected %d", p.Gold, g.ctx.Settings.Gameplay.KillGold)
	}
	if p.Level != 2 {
		t.Errorf("level = %d, expected 2 after one kill", p.Level)
	}
}

func TestBossArenas(t *testing.T) {
	g := newTestGame(t, Options{Seed: 3})
	g.ctx.Settings.Gameplay.SupportSpawnChance = 0
	p := g.Player()

	// King requires Guard.
	p.Pos = core.V(100, 400)
	g.Update(dt, input())
	if countBosses(g) != 0 {
		t.Fatal("King spawned before Guard was defeated")
	}

	p.Pos = core.V(450, 100)
	g.Update(dt, input())
	if countBosses(g) != 1 {
		t.Fatalf("bosses = %d after entering the Guard trigger", countBosses(g))
	}
	guard := findBoss(g, "Guard")
	if guard.Boss.Index != 0 || guard.Size != entity.BossSize {
		t.Errorf("guard = %+v", guard.Boss)
	}

	guard.HP = 0
	g.Update(dt, input())
	if findBoss(g, "Guard") != nil {
		t.Fatal("dead boss should be removed")
	}
	// One kill level plus three boss levels.
	if p.Level != 5 {
		t.Errorf("level = %d, expected 5", p.Level)
	}
	if !p.HasItem("War Axe") {
		t.Errorf("boss reward missing, inventory = %v", p.Inventory.Names())
	}

	g.Update(dt, input())
	if countBosses(g) != 0 {
		t.Error("a defeated boss must not respawn")
	}

	g.ctx.Settings.Gameplay.SupportSpawnChance = 1e6
	p.Pos = core.V(100, 400)
	g.Update(dt, input())
	if findBoss(g, "King") == nil {
		t.Fatal("King should spawn once Guard is defeated")
	}
	before := len(g.Enemies())
	g.Update(dt, input())
	if len(g.Enemies()) != before+1 {
		t.Errorf("enemies = %d, expected a support spawn", len(g.Enemies()))
	}
}

func countBosses(g *Game) int {
	n := 0
	for _, e := range g.Enemies() {
		if e.IsBoss() {
			n++
		}
	}
	return n
}

func findBoss(g *Game, name string) *entity.Enemy {
	for _, e := range g.Enemies() {
		if e.IsBoss() && e.Name == name {
			return e
		}
	}
	return nil
}

func TestPortalThroughUpdate(t *testing.T) {
	g := newTestGame(t, Options{})
	p := g.Player()
	p.Pos = core.V(320, 320)

	g.Update(dt, input(core.ActionUse))
	if p.Pos != core.V(200, 200) {
		t.Errorf("player at %v, expected portal target (200,200)", p.Pos)
	}
	if p.TeleportCooldown <= 0 {
		t.Error("teleport should set the cooldown")
	}
}

func TestPickUpAndSign(t *testing.T) {
	g := newTestGame(t, Options{})
	p := g.Player()

	g.Update(dt, input(core.ActionUse))
	if !p.HasItem("Sword") {
		t.Fatalf("sword not picked up, inventory = %v", p.Inventory.Names())
	}
	if g.Ground().Len() != 1 {
		t.Errorf("ground items = %d, expected 1", g.Ground().Len())
	}

	p.Pos = core.V(120, 220)
	g.Update(dt, input())
	g.Update(dt, input(core.ActionUse))
	if g.Message() != "Hello traveller" {
		t.Errorf("message = %q", g.Message())
	}
}

func TestInventorySwapChangesHand(t *testing.T) {
	g := newTestGame(t, Options{})
	p := g.Player()
	sword, _ := g.ctx.Items.ByName("Sword")
	bow, _ := g.ctx.Items.ByName("Bow")
	p.Inventory.Add(sword)
	p.Inventory.Add(bow)

	steps := [][]core.Action{
		{core.ActionInventory},
		{},
		{core.ActionUse}, // hold slot 0
		{},
		{core.ActionDown},
		{},
		{core.ActionUse}, // swap with slot 1
		{},
		{core.ActionInventory},
	}
	for _, s := range steps {
		g.Update(dt, input(s...))
	}

	if g.InventoryOpen() {
		t.Error("inventory should be closed")
	}
	if p.Hand() != bow {
		t.Errorf("hand = %v, expected Bow after swap", p.Hand())
	}
}

func TestWorldFrozenWhileInventoryOpen(t *testing.T) {
	g := newTestGame(t, Options{})
	g.Update(dt, input(core.ActionInventory))
	start := g.Player().Pos
	for i := 0; i < 10; i++ {
		g.Update(dt, input(core.ActionRight))
	}
	if g.Player().Pos != start {
		t.Error("player moved while the inventory was open")
	}
	if g.Elapsed() != 0 {
		t.Errorf("elapsed = %v, expected frozen clock", g.Elapsed())
	}
}

func TestRenderStateOrder(t *testing.T) {
	g := newTestGame(t, Options{})
	sprites := g.RenderState()
	if len(sprites) == 0 {
		t.Fatal("RenderState() is empty")
	}
	last := sprites[len(sprites)-1]
	if last.Kind != SpritePlayer {
		t.Errorf("last sprite = %v, expected the player on top", last.Kind)
	}
	if sprites[0].Kind != SpriteItem {
		t.Errorf("first sprite = %v, expected ground items first", sprites[0].Kind)
	}
}

func TestCameraClamp(t *testing.T) {
	g := newTestGame(t, Options{})
	if cam := g.Camera(320, 240); cam != core.V(0, 0) {
		t.Errorf("camera near the corner = %v, expected (0,0)", cam)
	}
	g.Player().Pos = core.V(630, 470)
	if cam := g.Camera(320, 240); cam != core.V(320, 240) {
		t.Errorf("camera at far corner = %v, expected (320,240)", cam)
	}
	if cam := g.Camera(2000, 2000); cam != core.V(0, 0) {
		t.Errorf("view larger than the map = %v, expected (0,0)", cam)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, Options{})
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	content := screen.String()
	if !strings.Contains(content, "HP") {
		t.Error("HUD should show HP")
	}
	if !strings.Contains(content, "Test Field") {
		t.Error("HUD should show the map name")
	}
	if !strings.Contains(content, "@") {
		t.Error("player glyph should be visible")
	}

	small := core.NewScreen(20, 5)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Error("tiny screens should show the too-small notice")
	}
}

func TestRandomSpawnsStayInsideMap(t *testing.T) {
	doc := strings.Replace(testMap,
		"area: {x1: 560, x2: 590, y1: 380, y2: 420}",
		"area: {x1: 560, x2: 900, y1: 380, y2: 700}", 1)
	for seed := int64(1); seed <= 20; seed++ {
		g, err := New(newTestContext(t), []byte(doc), Options{Seed: seed})
		if err != nil {
			t.Fatalf("New() failed: %v", err)
		}
		for _, e := range g.Enemies() {
			if !g.World().Contains(e.Pos) {
				t.Errorf("seed %d: enemy spawned outside the map at %v", seed, e.Pos)
			}
		}
	}
}

func TestLoadContextPaths(t *testing.T) {
	s := config.DefaultSettings()
	ctx, err := LoadContext(s, nil, ContentPaths{
		Items:   "../item/defaults/items.yaml",
		Sprites: "../asset/defaults/sprites.yaml",
	})
	if err != nil {
		t.Fatalf("LoadContext() failed: %v", err)
	}
	if _, err := ctx.Items.ByName("Sword"); err != nil {
		t.Errorf("item table from disk missing Sword: %v", err)
	}
	if ctx.Sprites.Sheet("hero") == nil {
		t.Error("sprite catalogue from disk missing hero")
	}
	if _, err := New(ctx, []byte(testMap), Options{Seed: 1}); err != nil {
		t.Errorf("New() with disk content failed: %v", err)
	}

	if _, err := LoadContext(s, nil, ContentPaths{Items: "missing.yaml"}); err == nil {
		t.Error("missing item table should fail")
	}
	if _, err := LoadContext(s, nil, ContentPaths{Sprites: "missing.yaml"}); err == nil {
		t.Error("missing sprite catalogue should fail")
	}
}
