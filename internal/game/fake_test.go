package game

import "github.com/diegok/retropong/internal/display"

// fakeSprite records everything written to the handle so tests can observe
// what the display collaborator would have been told.
type fakeSprite struct {
	tag      string
	frame    int
	x, y     int
	pushes   int
	hflip    bool
	vflip    bool
	priority display.Priority
	visible  bool
}

func (s *fakeSprite) SetImage(tag string, frame int) {
	s.tag = tag
	s.frame = frame
}

func (s *fakeSprite) SetPosition(x, y int) {
	s.x = x
	s.y = y
	s.pushes++
}

func (s *fakeSprite) SetHFlip(on bool) { s.hflip = on }
func (s *fakeSprite) SetVFlip(on bool) { s.vflip = on }

func (s *fakeSprite) SetPriority(p display.Priority) { s.priority = p }

func (s *fakeSprite) Show() { s.visible = true }
func (s *fakeSprite) Hide() { s.visible = false }

// fakeObjects issues fake sprites and keeps them in allocation order.
type fakeObjects struct {
	sprites []*fakeSprite
}

func newFakeObjects() *fakeObjects {
	return &fakeObjects{}
}

func (f *fakeObjects) NewSprite() display.Sprite {
	sp := &fakeSprite{}
	f.sprites = append(f.sprites, sp)
	return sp
}
