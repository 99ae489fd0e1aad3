package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// bindings maps each action to the keys that hold it.
var bindings = core.Bindings[ebiten.Key]{
	core.ActionLeft:    {ebiten.KeyArrowLeft, ebiten.KeyA},
	core.ActionRight:   {ebiten.KeyArrowRight, ebiten.KeyD},
	core.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyArrowDown, ebiten.KeyS},
	core.ActionFire:    {ebiten.KeySpace},
	core.ActionConfirm: {ebiten.KeyEnter},
	core.ActionQuit:    {ebiten.KeyEscape, ebiten.KeyQ},
}
