package assets

import (
	"embed"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"io/fs"
	"path"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
)

var (
	//go:embed all:levels
	levelFS embed.FS

	//go:embed all:images
	imageFS embed.FS
)

// ErrSheetNotFound is returned when a named strip has no image file.
var ErrSheetNotFound = errors.New("sprite sheet not found")

// Strip is a horizontal texture strip of square frames. The frame size is
// the texture height and the frame count is width / height.
type Strip struct {
	Name   string
	Source image.Image

	img    *ebiten.Image
	frames map[int]*ebiten.Image
}

// Width returns the full texture width.
func (s *Strip) Width() int {
	return s.Source.Bounds().Dx()
}

// Height returns the texture height.
func (s *Strip) Height() int {
	return s.Source.Bounds().Dy()
}

// FrameWidth is the width of one frame. Frames are square.
func (s *Strip) FrameWidth() int {
	return s.Height()
}

// FrameHeight is the height of one frame.
func (s *Strip) FrameHeight() int {
	return s.Height()
}

// FrameCount is the number of frames in the strip.
func (s *Strip) FrameCount() int {
	if s.Height() == 0 {
		return 0
	}
	return s.Width() / s.Height()
}

// FrameRect returns the source rectangle of frame i.
func (s *Strip) FrameRect(i int) image.Rectangle {
	fw := s.FrameWidth()
	origin := s.Source.Bounds().Min
	return image.Rect(origin.X+i*fw, origin.Y, origin.X+(i+1)*fw, origin.Y+s.FrameHeight())
}

// Image returns the GPU image for the strip, uploading it on first use.
// Only call this from the draw path.
func (s *Strip) Image() *ebiten.Image {
	if s.img == nil {
		s.img = ebiten.NewImageFromImage(s.Source)
	}
	return s.img
}

// Frame returns frame i as a sub-image, cached after the first call.
func (s *Strip) Frame(i int) *ebiten.Image {
	if f, ok := s.frames[i]; ok {
		return f
	}
	if s.frames == nil {
		s.frames = make(map[int]*ebiten.Image, s.FrameCount())
	}
	f := s.Image().SubImage(s.FrameRect(i)).(*ebiten.Image)
	s.frames[i] = f
	return f
}

// SheetLoader resolves strip names like "player/idle" to decoded images
// under images/ and caches them.
type SheetLoader struct {
	fsys  fs.FS
	cache map[string]*Strip
}

// NewSheetLoader creates a loader reading from the embedded images.
func NewSheetLoader() *SheetLoader {
	return NewSheetLoaderFS(imageFS)
}

// NewSheetLoaderFS creates a loader over any filesystem with an images/ tree.
func NewSheetLoaderFS(fsys fs.FS) *SheetLoader {
	return &SheetLoader{
		fsys:  fsys,
		cache: make(map[string]*Strip),
	}
}

// Load returns the strip for name, decoding it on first use.
func (l *SheetLoader) Load(name string) (*Strip, error) {
	if s, ok := l.cache[name]; ok {
		return s, nil
	}

	p := path.Join("images", name+".png")
	f, err := l.fsys.Open(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSheetNotFound, name)
		}
		return nil, fmt.Errorf("opening %s: %w", p, err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", p, err)
	}
	if src.Bounds().Dy() == 0 || src.Bounds().Dx() < src.Bounds().Dy() {
		return nil, fmt.Errorf("%s: strip %dx%d holds no square frame", p, src.Bounds().Dx(), src.Bounds().Dy())
	}

	s := &Strip{Name: name, Source: src}
	l.cache[name] = s
	return s, nil
}

type PlayerSpawn struct {
	X     float64
	Y     float64
	Name  string
	Color string // colour tag, a CSS/SVG colour name
}

type Level struct {
	Name         string
	Width        int
	Height       int
	PlayerSpawns []PlayerSpawn
}

type LevelLoader struct {
	fsys fs.FS
}

func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: levelFS}
}

// NewLevelLoaderFS creates a level loader over any filesystem.
func NewLevelLoaderFS(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// LoadLevel parses a Tiled map and collects its player spawns.
func (l *LevelLoader) LoadLevel(levelPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(levelPath, tiled.WithFileSystem(l.fsys))
	if err != nil {
		return nil, fmt.Errorf("loading level %s: %w", levelPath, err)
	}

	level := &Level{
		Name:   levelPath,
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != "PlayerSpawn" {
			continue
		}
		for _, o := range og.Objects {
			level.PlayerSpawns = append(level.PlayerSpawns, PlayerSpawn{
				X:     o.X,
				Y:     o.Y,
				Name:  o.Name,
				Color: o.Properties.GetString("color"),
			})
		}
	}

	if len(level.PlayerSpawns) == 0 {
		return nil, fmt.Errorf("level %s: no player spawn points defined", levelPath)
	}

	// Sort spawns by X position (left to right) for a stable first spawn
	sort.SliceStable(level.PlayerSpawns, func(i, j int) bool {
		return level.PlayerSpawns[i].X < level.PlayerSpawns[j].X
	})

	return level, nil
}
