package render

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math/rand/v2"
	"os"
)

type ImageState int

const (
	ImagePending ImageState = iota
	ImageReady
	ImageFailed
)

func (s ImageState) String() string {
	switch s {
	case ImagePending:
		return "pending"
	case ImageReady:
		return "ready"
	case ImageFailed:
		return "failed"
	}
	return "unknown"
}

// Background is the tiled background image. It starts pending and is
// resolved once decoding finishes; until then frames use the flat fill.
type Background struct {
	Path  string
	state ImageState
	img   image.Image
	err   error
}

func NewBackground(path string) *Background {
	return &Background{Path: path}
}

// Resolve records the outcome of loading the image.
func (b *Background) Resolve(img image.Image, err error) {
	switch {
	case err != nil:
		b.state, b.img, b.err = ImageFailed, nil, err
	case img == nil || img.Bounds().Empty():
		b.state, b.img, b.err = ImageFailed, nil, nil
	default:
		b.state, b.img, b.err = ImageReady, img, nil
	}
}

func (b *Background) State() ImageState {
	if b == nil {
		return ImageFailed
	}
	return b.state
}

func (b *Background) Ready() bool { return b.State() == ImageReady }

func (b *Background) Err() error {
	if b == nil {
		return nil
	}
	return b.err
}

// Image returns the decoded image, or nil when not ready.
func (b *Background) Image() image.Image {
	if !b.Ready() {
		return nil
	}
	return b.img
}

// LoadImage decodes the background for path. An empty path yields the
// built-in grass texture.
func LoadImage(path string) (image.Image, error) {
	if path == "" {
		return GrassTexture(32, 1), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	return img, err
}

// GrassTexture is a size x size tile of speckled greens.
func GrassTexture(size int, seed uint64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	rng := rand.New(rand.NewPCG(seed, seed+1))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := rng.IntN(40)
			img.Set(x, y, color.RGBA{R: uint8(24 + v/2), G: uint8(90 + v), B: uint8(30 + v/3), A: 255})
		}
	}
	return img
}
