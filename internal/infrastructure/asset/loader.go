package asset

import (
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/younwookim/aquadrift/internal/infrastructure/config"
)

// ImageFactory turns a decoded frame into a GPU image
type ImageFactory func(image.Image) *ebiten.Image

type hooks struct {
	enter, exit func()
}

type options struct {
	newImage ImageFactory
	hooks    map[string]hooks
}

// Option configures Load
type Option func(*options)

// WithImageFactory replaces ebiten.NewImageFromImage
func WithImageFactory(f ImageFactory) Option {
	return func(o *options) { o.newImage = f }
}

// WithHooks attaches enter and exit callbacks to a clip. Either may be nil.
func WithHooks(clip string, onEnter, onExit func()) Option {
	return func(o *options) { o.hooks[clip] = hooks{enter: onEnter, exit: onExit} }
}

// Load builds a registry from the manifest, reading frames from fsys.
// Paths are relative to the manifest root. Any missing or broken frame fails
// the whole load.
func Load(fsys fs.FS, m *config.AnimationManifest, opts ...Option) (*Registry, error) {
	o := options{
		newImage: ebiten.NewImageFromImage,
		hooks:    make(map[string]hooks),
	}
	for _, opt := range opts {
		opt(&o)
	}

	// frames shared by several clips are decoded once
	type frameKey struct {
		path string
		w, h int
	}
	type framePair struct {
		right, left *ebiten.Image
	}
	cache := make(map[frameKey]framePair)

	clips := make([]*Clip, 0, len(m.Clips))
	for _, name := range m.StateNames() {
		cm := m.Clips[name]
		w, h, _ := cm.TargetSize()

		right := make([]*ebiten.Image, 0, len(cm.Paths))
		left := make([]*ebiten.Image, 0, len(cm.Paths))
		for _, p := range cm.Paths {
			full := path.Join(m.Root, p)
			key := frameKey{path: full, w: w, h: h}
			pair, ok := cache[key]
			if !ok {
				img, err := decodeFrame(fsys, full, w, h)
				if err != nil {
					return nil, fmt.Errorf("clip %q: %w", name, err)
				}
				pair = framePair{right: o.newImage(img), left: o.newImage(mirror(img))}
				cache[key] = pair
			}
			right = append(right, pair.right)
			left = append(left, pair.left)
		}

		clip, err := NewClip(name, right, left, cm.FrameRate(), cm.Looping())
		if err != nil {
			return nil, err
		}
		clip.OffsetX, clip.OffsetY = cm.DrawOffset()
		if hk, ok := o.hooks[name]; ok {
			clip.OnEnter, clip.OnExit = hk.enter, hk.exit
		}
		clips = append(clips, clip)
	}

	return NewRegistry(clips...)
}

// decodeFrame reads one image and scales it when w and h are set
func decodeFrame(fsys fs.FS, name string, w, h int) (image.Image, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMissingFrame, name, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", name, err)
	}
	if w <= 0 || h <= 0 || (src.Bounds().Dx() == w && src.Bounds().Dy() == h) {
		return src, nil
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

// mirror returns src flipped left to right, placed at the origin
func mirror(src image.Image) *image.RGBA {
	b := src.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	s2d := f64.Aff3{-1, 0, float64(b.Max.X), 0, 1, float64(-b.Min.Y)}
	draw.NearestNeighbor.Transform(dst, s2d, src, b, draw.Src, nil)
	return dst
}
