package display

import (
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/diegok/retropong/internal/config"
)

const (
	// MaxSprites caps the number of handles the compositor will issue.
	MaxSprites = 128

	BallChar   = '\u2B24' // ⬤
	PaddleChar = '\u2588' // █
)

// Terminal is the tcell-backed display and input subsystem. It implements
// ObjectManager and Frame; its Controller implements Input.
type Terminal struct {
	screen tcell.Screen
	logger *log.Logger
	ticker *time.Ticker
	input  *Controller

	sprites []*sprite
	upKey   rune
	downKey rune

	ballStyle   tcell.Style
	paddleStyle tcell.Style
}

// NewTerminal initializes the terminal screen and starts the event pump.
func NewTerminal(cfg *config.Config, logger *log.Logger) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize screen: %w", err)
	}
	s.HideCursor()

	t := &Terminal{
		screen:      s,
		logger:      logger,
		ticker:      time.NewTicker(time.Second / time.Duration(cfg.Display.RefreshRate)),
		input:       NewController(),
		upKey:       cfg.Display.UpRune(),
		downKey:     cfg.Display.DownRune(),
		ballStyle:   tcell.StyleDefault.Foreground(tcell.GetColor(cfg.Display.Theme.Ball)),
		paddleStyle: tcell.StyleDefault.Foreground(tcell.GetColor(cfg.Display.Theme.Paddle)),
	}

	go t.pumpEvents()

	cols, rows := s.Size()
	logger.Info("display initialized", "cols", cols, "rows", rows, "refresh_hz", cfg.Display.RefreshRate)

	return t, nil
}

// Input returns the directional input snapshot.
func (t *Terminal) Input() *Controller {
	return t.input
}

// NewSprite issues a sprite handle. Exhausting the handle pool is an
// unrecoverable resource failure.
func (t *Terminal) NewSprite() Sprite {
	if len(t.sprites) >= MaxSprites {
		t.logger.Fatal("sprite handles exhausted", "max", MaxSprites)
	}
	sp := &sprite{priority: P0}
	t.sprites = append(t.sprites, sp)
	t.logger.Debug("sprite allocated", "index", len(t.sprites)-1)
	return sp
}

// WaitVBlank blocks until the next refresh interval.
func (t *Terminal) WaitVBlank() {
	<-t.ticker.C
}

// Commit composites all visible sprites into terminal cells and presents
// them as one frame.
func (t *Terminal) Commit() {
	t.screen.Clear()

	cols, rows := t.screen.Size()
	scaleX := float64(cols) / float64(Width)
	scaleY := float64(rows) / float64(Height)

	// Back to front: higher priority values sit behind lower ones.
	ordered := make([]*sprite, len(t.sprites))
	copy(ordered, t.sprites)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].priority > ordered[j].priority
	})

	for _, sp := range ordered {
		if !sp.visible || sp.img == nil {
			continue
		}
		style, ch := t.paddleStyle, PaddleChar
		if sp.tag == TagBall {
			style, ch = t.ballStyle, BallChar
		}
		for py := 0; py < sp.img.H; py++ {
			for px := 0; px < sp.img.W; px++ {
				if !sp.img.pixelAt(px, py, sp.hflip, sp.vflip) {
					continue
				}
				cx := int(float64(sp.x+px) * scaleX)
				cy := int(float64(sp.y+py) * scaleY)
				if cx >= 0 && cx < cols && cy >= 0 && cy < rows {
					t.screen.SetContent(cx, cy, ch, nil, style)
				}
			}
		}
	}

	t.screen.Show()
}

// Fini releases the terminal. The event pump exits once the screen is
// finalized.
func (t *Terminal) Fini() {
	t.ticker.Stop()
	t.screen.Fini()
}

// pumpEvents feeds key presses into the input controller.
func (t *Terminal) pumpEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if IsQuitKey(ev.Key(), ev.Rune()) {
				t.input.RequestQuit()
				continue
			}
			if axis := KeyToAxis(ev.Key(), ev.Rune(), t.upKey, t.downKey); axis != 0 {
				t.input.Press(axis)
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// sprite is the terminal-side sprite handle. It is only mutated by its
// owning entity on the frame loop goroutine.
type sprite struct {
	tag      string
	img      *Image
	x, y     int
	hflip    bool
	vflip    bool
	priority Priority
	visible  bool
}

func (s *sprite) SetImage(tag string, frame int) {
	s.tag = tag
	s.img = lookupImage(tag, frame)
}

func (s *sprite) SetPosition(x, y int) {
	s.x = x
	s.y = y
}

func (s *sprite) SetHFlip(on bool) { s.hflip = on }
func (s *sprite) SetVFlip(on bool) { s.vflip = on }

func (s *sprite) SetPriority(p Priority) { s.priority = p }

func (s *sprite) Show() { s.visible = true }
func (s *sprite) Hide() { s.visible = false }
