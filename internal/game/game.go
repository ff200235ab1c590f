package game

import (
	"fmt"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-rpg/internal/config"
	"github.com/vovakirdan/tui-rpg/internal/core"
	"github.com/vovakirdan/tui-rpg/internal/entity"
	"github.com/vovakirdan/tui-rpg/internal/item"
	"github.com/vovakirdan/tui-rpg/internal/region"
	"github.com/vovakirdan/tui-rpg/internal/save"
	"github.com/vovakirdan/tui-rpg/internal/world"
)

// Outcome tells the platform how a frame ended the session, if it did.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeMenu         // pause: save and leave to the menu
	OutcomeQuit         // quit: save and exit
	OutcomeDead         // player died: no save, record the run
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMenu:
		return "menu"
	case OutcomeQuit:
		return "quit"
	case OutcomeDead:
		return "dead"
	default:
		return "none"
	}
}

const (
	messageDuration = 4.0 // seconds a sign message stays up
	noticeDuration  = 2.5
	spawnAttempts   = 20
	bossLevelUps    = 3
)

// Options configures a new scene.
type Options struct {
	Seed     int64
	SaveData []byte // JSON save document; nil or malformed starts a new game
}

type bossSlot struct {
	doc      BossDoc
	trigger  region.Region
	spawned  bool
	defeated bool
	enemy    *entity.Enemy
}

// Game is one running scene.
type Game struct {
	ctx         *Context
	log         *log.Logger
	world       *world.World
	scene       Scene
	rng         *rand.Rand
	difficulty  *config.DifficultyManager
	progression *entity.Progression
	steering    entity.Steering

	player  *entity.Player
	enemies []*entity.Enemy
	ground  *item.Ground
	regions []region.Region
	bosses  []*bossSlot

	prev    core.InputFrame
	tick    uint64
	elapsed float64
	kills   int
	outcome Outcome

	message      string
	messageTimer float64
	notice       string
	noticeTimer  float64
	inventory    inventoryView
	camera       core.Vec
}

// New builds a scene from a map document. Missing sprite sheets are fatal;
// a malformed save falls back to a new game.
func New(ctx *Context, mapData []byte, opts Options) (*Game, error) {
	w, err := world.Parse(mapData)
	if err != nil {
		return nil, err
	}
	scene, err := ParseScene(mapData)
	if err != nil {
		return nil, err
	}

	s := ctx.Settings
	required := append([]string{s.Player.Sprite, "arrow", "slash"}, scene.sprites()...)
	if err := ctx.Sprites.Require(required...); err != nil {
		return nil, fmt.Errorf("game: build scene %q: %w", w.ID, err)
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	g := &Game{
		ctx:        ctx,
		log:        ctx.logger().With("map", w.ID),
		world:      w,
		scene:      scene,
		rng:        rng,
		difficulty: config.NewDifficultyManager(s.Difficulty),
		progression: &entity.Progression{
			Settings: s.Progression,
			Items:    ctx.Items,
			Rng:      rng,
		},
		steering: entity.Steering{
			TrackingRange: s.Gameplay.EnemyTrackingRange,
			MinRange:      s.Gameplay.EnemyMinRange,
		},
		ground:  item.NewGround(),
		regions: scene.Regions(),
		prev:    core.NewInputFrame(),
	}
	g.inventory.held = -1

	g.player = g.loadPlayer(opts.SaveData)

	for _, it := range scene.Items {
		placed, err := ctx.Items.ByName(it.Name)
		if err != nil {
			g.log.Warn("unknown item in scene", "item", it.Name)
			continue
		}
		g.ground.Place(placed, core.V(it.X, it.Y))
	}
	if n := g.ground.RemoveCarried(g.player.Inventory.Names()); n > 0 {
		g.log.Debug("removed carried items from the ground", "count", n)
	}

	g.spawnEnemies()

	for _, b := range scene.Bosses {
		g.bosses = append(g.bosses, &bossSlot{doc: b, trigger: b.Trigger.Region()})
	}

	g.log.Info("scene built",
		"enemies", len(g.enemies),
		"items", g.ground.Len(),
		"regions", len(g.regions),
		"bosses", len(g.bosses))
	return g, nil
}

func (g *Game) loadPlayer(data []byte) *entity.Player {
	s := g.ctx.Settings
	newPlayer := func() *entity.Player {
		p := entity.NewPlayer(s)
		if g.scene.Start != nil {
			p.Pos = g.scene.Start.Vec()
		}
		return p
	}

	if len(data) == 0 {
		return newPlayer()
	}
	doc, err := save.Parse(data)
	if err != nil {
		g.log.Warn("ignoring save", "error", err)
		return newPlayer()
	}
	p, unknown, err := save.FromSaveDocument(doc, s, g.ctx.Items)
	if err != nil {
		g.log.Warn("ignoring save", "error", err)
		return newPlayer()
	}
	if len(unknown) > 0 {
		g.log.Warn("save references unknown items", "items", unknown)
	}
	g.log.Info("save loaded", "level", p.Level, "inventory", p.Inventory.Len())
	return p
}

// Update advances the scene by dt seconds with the held input, in order:
// session keys, player actions and movement, enemy steering and attacks,
// removals, interaction regions, boss arenas. It returns the outcome.
func (g *Game) Update(dt float64, in core.InputFrame) Outcome {
	defer func() { g.prev = in.Clone() }()

	if g.outcome != OutcomeNone {
		return g.outcome
	}
	if dt <= 0 {
		return g.outcome
	}
	g.tick++

	switch {
	case g.pressed(in, core.ActionQuit):
		g.outcome = OutcomeQuit
		return g.outcome
	case g.pressed(in, core.ActionPause):
		g.outcome = OutcomeMenu
		return g.outcome
	}

	if g.pressed(in, core.ActionInventory) {
		g.inventory.toggle()
	}
	if g.inventory.open {
		g.updateInventory(in)
		return g.outcome
	}

	g.elapsed += dt
	g.tickTimers(dt)

	p := g.player
	p.TickCooldowns(dt)

	// Player
	if in.Has(core.ActionAttack) {
		p.Strike(g.enemies)
	}
	p.UpdateProjectiles(dt, g.enemies, g.world.WidthPx, g.world.HeightPx)
	p.UpdateAttack(dt)
	p.Move(dt, in, g.ctx.Settings.Gameplay.DashMultiplier, g.world.Collides)

	if g.pressed(in, core.ActionHeal) {
		if used := p.UseConsumable(); used != nil {
			g.notify("Used %s", used.Name)
		}
	}
	if g.pressed(in, core.ActionEquip) {
		if eq := p.EquipHand(); eq != nil {
			g.notify("Equipped %s (+%d defence)", eq.Name, eq.Armour.DefenceBonus)
		}
	}

	// Enemies
	for _, e := range g.enemies {
		if e.Dead() {
			continue
		}
		e.Steer(p.Pos, dt, g.enemies, g.steering, g.world.Collides)
		e.TryAttack(p, dt)
	}
	g.collectDead()

	// Interaction
	g.interact(in)
	g.updateBosses(dt)

	if p.Dead() {
		g.outcome = OutcomeDead
		g.log.Info("player died", "level", p.Level, "kills", g.kills, "elapsed", g.elapsed)
	}
	return g.outcome
}

func (g *Game) pressed(in core.InputFrame, a core.Action) bool {
	return in.Has(a) && !g.prev.Has(a)
}

func (g *Game) tickTimers(dt float64) {
	if g.messageTimer > 0 {
		g.messageTimer -= dt
		if g.messageTimer <= 0 {
			g.message = ""
		}
	}
	if g.noticeTimer > 0 {
		g.noticeTimer -= dt
		if g.noticeTimer <= 0 {
			g.notice = ""
		}
	}
}

func (g *Game) notify(format string, args ...any) {
	g.notice = fmt.Sprintf(format, args...)
	g.noticeTimer = noticeDuration
}

// interact polls the regions after movement. Portals take precedence,
// then picking up an item, then reading a sign or talking to an NPC.
func (g *Game) interact(in core.InputFrame) {
	p := g.player
	use := in.Has(core.ActionUse)

	if portal := region.HandlePortals(p, g.regions, use, g.ctx.Settings.Gameplay.PortalCooldown); portal != nil {
		g.log.Info("portal used", "portal", portal.ID, "x", p.Pos.X, "y", p.Pos.Y)
		return
	}
	if !g.pressed(in, core.ActionUse) {
		return
	}

	picked, err := item.PickUp(g.ground, p.Inventory, p.Pos, g.ctx.Settings.Gameplay.PickupRange)
	switch {
	case err != nil:
		g.notify("Inventory full")
		return
	case picked != nil:
		g.notify("Picked up %s", picked.Name)
		return
	}

	if msg, ok := region.MessageAt(g.regions, p.Pos); ok {
		g.message = msg
		g.messageTimer = messageDuration
	}
}

// collectDead removes dead enemies and pays out their rewards.
func (g *Game) collectDead() {
	alive, dead := entity.CompactDead(g.enemies)
	g.enemies = alive
	if len(dead) == 0 {
		return
	}

	gp := g.ctx.Settings.Gameplay
	for _, e := range dead {
		g.kills++
		g.player.Gold += gp.KillGold
		g.applyLevelUps(g.progression.GainXP(g.player, float64(gp.KillXP)))

		if !e.IsBoss() {
			continue
		}
		for _, slot := range g.bosses {
			if slot.enemy == e {
				g.defeatBoss(slot)
			}
		}
	}
}

func (g *Game) defeatBoss(slot *bossSlot) {
	slot.defeated = true
	slot.enemy = nil
	g.log.Info("boss defeated", "boss", slot.doc.Name)

	ups := make([]entity.LevelUp, 0, bossLevelUps)
	for i := 0; i < bossLevelUps; i++ {
		ups = append(ups, g.progression.LevelUp(g.player))
	}
	g.applyLevelUps(ups)

	if slot.doc.Reward == "" {
		return
	}
	reward, err := g.ctx.Items.ByName(slot.doc.Reward)
	if err != nil {
		g.log.Warn("unknown boss reward", "boss", slot.doc.Name, "item", slot.doc.Reward)
		return
	}
	g.grant(reward)
	g.notify("%s defeated! Received %s", slot.doc.Name, reward.Name)
}

func (g *Game) applyLevelUps(ups []entity.LevelUp) {
	for _, up := range ups {
		g.log.Info("level up", "level", up.Level, "xp_next", g.player.XPNext)
		g.notify("Level %d!", up.Level)
		if up.Reward != nil {
			g.grant(up.Reward)
		}
	}
}

// grant puts an item in the inventory, or at the player's feet when full.
func (g *Game) grant(it *item.Item) {
	if err := g.player.Inventory.Add(it); err != nil {
		g.ground.Place(it, g.player.Pos)
		g.notify("Inventory full, %s dropped", it.Name)
	}
}

// Accessors

func (g *Game) Player() *entity.Player   { return g.player }
func (g *Game) Enemies() []*entity.Enemy { return g.enemies }
func (g *Game) Ground() *item.Ground     { return g.ground }
func (g *Game) World() *world.World      { return g.world }
func (g *Game) Regions() []region.Region { return g.regions }
func (g *Game) Outcome() Outcome         { return g.outcome }
func (g *Game) Elapsed() float64         { return g.elapsed }
func (g *Game) Kills() int               { return g.kills }
func (g *Game) Tick() uint64             { return g.tick }
func (g *Game) Message() string          { return g.message }
func (g *Game) Notice() string           { return g.notice }
func (g *Game) InventoryOpen() bool      { return g.inventory.open }
func (g *Game) Title() string {
	if g.world.Name != "" {
		return g.world.Name
	}
	return g.world.ID
}

// ToSaveDocument captures the player for persistence.
func (g *Game) ToSaveDocument() save.Document {
	return save.ToSaveDocument(g.player)
}

// SaveData returns the encoded save document.
func (g *Game) SaveData() ([]byte, error) {
	return save.Marshal(g.ToSaveDocument())
}
