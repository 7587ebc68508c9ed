package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// input is the per-frame edge view of keyboard and mouse
type input interface {
	keyPressed(k ebiten.Key) bool
	mousePressed(b ebiten.MouseButton) bool
	cursor() (int, int)
}

type ebitenInput struct{}

func (ebitenInput) keyPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (ebitenInput) mousePressed(b ebiten.MouseButton) bool {
	return inpututil.IsMouseButtonJustPressed(b)
}

func (ebitenInput) cursor() (int, int) { return ebiten.CursorPosition() }

var upgradeKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9, ebiten.Key0,
}
