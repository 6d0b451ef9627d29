package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/younwookim/coinhop/internal/application/state"
	"github.com/younwookim/coinhop/internal/domain/entity"
)

// Draw renders the game (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(p.colors.background)

	level := p.world.Level
	for i := range level.Platforms {
		p.drawPlatform(screen, &level.Platforms[i])
	}
	for i, coin := range level.Coins {
		if coin.Active {
			p.drawCoin(screen, coin, p.coinBobs[i].offset)
		}
	}
	for _, enemy := range level.Enemies {
		if enemy.Active {
			p.drawEnemy(screen, enemy)
		}
	}
	p.drawPlayer(screen, p.world.Player)

	p.drawUI(screen)

	switch p.state {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateGameOver:
		p.drawEndOverlay(screen, colorGameOver)
	case state.StateLevelComplete:
		p.drawEndOverlay(screen, colorComplete)
	}
}

func (p *Playing) drawPlatform(screen *ebiten.Image, plat *entity.Platform) {
	c, ok := platformColors[plat.Type]
	if !ok {
		c = platformColors[entity.PlatformNormal]
	}
	ebitenutil.DrawRect(screen, plat.X, plat.Y, plat.W, plat.H, c)

	switch plat.Type {
	case entity.PlatformGrass:
		ebitenutil.DrawRect(screen, plat.X, plat.Y, plat.W, math.Min(5, plat.H), colorGrassTop)
	case entity.PlatformBrick:
		// Mortar rows every 10px
		for y := plat.Y + 10; y < plat.Bottom(); y += 10 {
			ebitenutil.DrawLine(screen, plat.X, y, plat.Right(), y, colorBrickMortar)
		}
	case entity.PlatformIce:
		ebitenutil.DrawRect(screen, plat.X, plat.Y, plat.W, plat.H/2, colorIceShine)
	}
}

func (p *Playing) drawCoin(screen *ebiten.Image, coin *entity.Coin, offset float32) {
	y := coin.Y + float64(offset)

	// Spin: the visible width follows |cos| of the coin's clock
	w := coin.W * math.Abs(math.Cos(coin.Elapsed*3))
	if w < 2 {
		w = 2
	}
	x := coin.X + (coin.W-w)/2

	ebitenutil.DrawRect(screen, x, y, w, coin.H, colorCoin)
	ebitenutil.DrawRect(screen, x+w/3, y+coin.H/4, w/3, coin.H/2, colorCoinShine)
}

func (p *Playing) drawEnemy(screen *ebiten.Image, enemy *entity.Enemy) {
	c := p.colors.enemy(enemy.Behavior)

	if enemy.Defeated {
		// Flattened for the defeat duration
		h := enemy.H / 4
		ebitenutil.DrawRect(screen, enemy.X, enemy.Y+enemy.H-h, enemy.W, h, c)
		return
	}

	ebitenutil.DrawRect(screen, enemy.X, enemy.Y, enemy.W, enemy.H, c)

	// Eyes look the way the enemy is walking
	eyeX := enemy.X + enemy.W*0.25
	if enemy.Direction > 0 {
		eyeX = enemy.X + enemy.W*0.55
	}
	ebitenutil.DrawRect(screen, eyeX, enemy.Y+enemy.H*0.25, enemy.W*0.2, enemy.H*0.2, colorPlayerEye)

	switch enemy.Behavior {
	case entity.BehaviorFlyer:
		ebitenutil.DrawLine(screen, enemy.X, enemy.Y+enemy.H/2, enemy.X-10, enemy.Y, c)
		ebitenutil.DrawLine(screen, enemy.X+enemy.W, enemy.Y+enemy.H/2, enemy.X+enemy.W+10, enemy.Y, c)
	case entity.BehaviorJumper:
		legs := color.RGBA{34, 139, 34, 255}
		ebitenutil.DrawLine(screen, enemy.X+10, enemy.Y+enemy.H-5, enemy.X+5, enemy.Y+enemy.H+5, legs)
		ebitenutil.DrawLine(screen, enemy.X+enemy.W-10, enemy.Y+enemy.H-5, enemy.X+enemy.W-5, enemy.Y+enemy.H+5, legs)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, player *entity.Player) {
	// Blink while invulnerable
	if player.Invulnerable && int(player.InvulnerableElapsed*10)%2 == 1 {
		return
	}

	ebitenutil.DrawRect(screen, player.X, player.Y, player.W, player.H, colorPlayer)

	eyeX := player.X + player.W*0.6
	if player.Direction < 0 {
		eyeX = player.X + player.W*0.2
	}
	ebitenutil.DrawRect(screen, eyeX, player.Y+player.H*0.2, player.W*0.2, player.H*0.1, colorPlayerEye)
}

func (p *Playing) drawUI(screen *ebiten.Image) {
	status := fmt.Sprintf("Score: %d   Lives: %d   Coins left: %d",
		p.hud.score, p.hud.lives, p.world.Level.RemainingCoins())
	ebitenutil.DebugPrintAt(screen, status, 10, 10)

	controls := "Arrows/WASD: Move | Space/Up: Jump | ESC: Pause"
	ebitenutil.DebugPrintAt(screen, controls, 10, p.screenH-20)
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), colorOverlay)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawEndOverlay(screen *ebiten.Image, c color.RGBA) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), c)

	text := fmt.Sprintf("%s\n\nScore: %d\n\nPress R to restart", p.hud.message, p.hud.score)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}
