package icon

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/kacebover/miner-icons/miners"
)

const (
	// GridSize is the edge length of the sprite canvas in pixels.
	GridSize = 16

	// DefaultScale is the nearest-neighbor magnification factor,
	// 16x16 -> 128x128.
	DefaultScale = 8
)

// Fixed sprite colors shared by every rarity.
var (
	frameColor  = color.NRGBA{R: 0x1c, G: 0x1f, B: 0x24, A: 255}
	eyeColor    = color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 255}
	mouthColor  = color.NRGBA{R: 0x7a, G: 0x4b, B: 0x3a, A: 255}
	handleColor = color.NRGBA{R: 0x8b, G: 0x5a, B: 0x2b, A: 255}
	skinLight   = color.NRGBA{R: 0xf2, G: 0xc9, B: 0xa0, A: 255}
	skinDark    = color.NRGBA{R: 0xe3, G: 0xb5, B: 0x8a, A: 255}
)

// Draw renders the 16x16 miner sprite for a rarity and seed. The seed
// is the miner's tier; it drives the two modulo variation rules (skin
// tone, accent stripe). Strokes are painted in a fixed order and later
// strokes overwrite earlier ones, no blending. Identical inputs yield
// byte-identical output.
func Draw(palette Palette, rarity miners.Rarity, seed int) *image.NRGBA {
	pair := palette.Lookup(rarity)
	img := image.NewNRGBA(image.Rect(0, 0, GridSize, GridSize))

	// Background frame
	for x := 0; x < GridSize; x++ {
		img.SetNRGBA(x, 0, frameColor)
		img.SetNRGBA(x, GridSize-1, frameColor)
	}
	for y := 0; y < GridSize; y++ {
		img.SetNRGBA(0, y, frameColor)
		img.SetNRGBA(GridSize-1, y, frameColor)
	}

	// Helmet
	fillRect(img, 3, 2, 13, 7, pair.Base)

	// Helmet brim
	fillRect(img, 4, 7, 12, 8, pair.Accent)

	// Face
	skin := skinLight
	if seed%2 != 0 {
		skin = skinDark
	}
	fillRect(img, 4, 8, 12, 12, skin)

	// Eyes
	img.SetNRGBA(6, 9, eyeColor)
	img.SetNRGBA(9, 9, eyeColor)

	// Mouth
	img.SetNRGBA(7, 11, mouthColor)
	img.SetNRGBA(8, 11, mouthColor)

	// Pickaxe handle (diagonal)
	for i := 0; i < 5; i++ {
		img.SetNRGBA(10+i, 10+i, handleColor)
	}

	// Pickaxe head
	fillRect(img, 12, 9, 15, 11, pair.Accent)

	// Accent stripe
	if seed%3 == 0 {
		fillRect(img, 5, 4, 11, 5, pair.Accent)
	}

	return img
}

// fillRect paints the half-open rectangle [x0,x1)x[y0,y1).
func fillRect(img *image.NRGBA, x0, y0, x1, y1 int, c color.NRGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
}

// Upscale magnifies src by an integer factor with nearest-neighbor
// sampling: every source pixel becomes a factor-sized block of the
// same color. No interpolation, no anti-aliasing.
func Upscale(src *image.NRGBA, factor int) *image.NRGBA {
	bounds := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx()*factor, bounds.Dy()*factor))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, bounds, xdraw.Src, nil)
	return dst
}
