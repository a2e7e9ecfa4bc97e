package display

// Sprite sheet tags. The paddle is composed of two end caps (the bottom
// one vertically flipped) around a middle piece.
const (
	TagBall      = "Ball"
	TagPaddleEnd = "Paddle End"
	TagPaddleMid = "Paddle Mid"
)

// Image is one frame of a tagged sprite: a 16x16 grid of virtual pixels
// where '.' is transparent and any other rune is drawn.
type Image struct {
	W, H int
	Rows []string
}

var sheet = map[string][]Image{
	TagBall: {{
		W: 16, H: 16,
		Rows: []string{
			"................",
			".....######.....",
			"...##########...",
			"..############..",
			"..############..",
			".##############.",
			".##############.",
			".##############.",
			".##############.",
			".##############.",
			".##############.",
			"..############..",
			"..############..",
			"...##########...",
			".....######.....",
			"................",
		},
	}},
	TagPaddleEnd: {{
		W: 16, H: 16,
		Rows: []string{
			"................",
			"................",
			"..####..........",
			".######.........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
		},
	}},
	TagPaddleMid: {{
		W: 16, H: 16,
		Rows: []string{
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
			".#######........",
		},
	}},
}

// lookupImage resolves a tag and frame index. Unknown tags or frames are a
// programming error on the caller's side and return nil.
func lookupImage(tag string, frame int) *Image {
	frames, ok := sheet[tag]
	if !ok || frame < 0 || frame >= len(frames) {
		return nil
	}
	return &frames[frame]
}

// pixelAt reports whether the image pixel at (x, y) is set, honoring flips.
func (img *Image) pixelAt(x, y int, hflip, vflip bool) bool {
	if x < 0 || x >= img.W || y < 0 || y >= img.H {
		return false
	}
	if hflip {
		x = img.W - 1 - x
	}
	if vflip {
		y = img.H - 1 - y
	}
	return img.Rows[y][x] != '.'
}
