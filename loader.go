package canvasmarkers

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"net/http"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/webp" // register WebP decoder
	"golang.org/x/sync/semaphore"
	"golang.org/x/sync/singleflight"
)

// ImageLoader fetches and decodes glyph images.
//
// Load must not call done synchronously: completions are delivered later on
// the UI goroutine (see Poller). A load that fails never calls done.
type ImageLoader interface {
	Load(src string, done func(img *ebiten.Image))
}

// Poller is implemented by loaders that deliver completions when polled.
// CanvasIconLayer.Update calls Poll once per tick.
type Poller interface {
	// Poll runs every completion that is ready and returns how many ran.
	Poll() int
}

// completion is a finished load waiting to be delivered on the UI goroutine.
type completion struct {
	src  string
	img  image.Image
	tex  *ebiten.Image
	err  error
	done func(*ebiten.Image)
}

// textureCache converts decoded images to textures once per source.
// UI goroutine only.
type textureCache map[string]*ebiten.Image

func (c textureCache) texture(src string, img image.Image) *ebiten.Image {
	if tex, ok := c[src]; ok {
		return tex
	}
	tex := ebiten.NewImageFromImage(img)
	c[src] = tex
	return tex
}

// --- AsyncLoader ---

const (
	defaultMaxConcurrent = 8
	defaultFetchTimeout  = 30 * time.Second
)

// LoaderOptions configures an AsyncLoader. Zero values select defaults.
type LoaderOptions struct {
	// MaxConcurrent bounds simultaneous fetches. Default 8.
	MaxConcurrent int64
	// Client performs http(s) fetches. Default http.DefaultClient.
	Client *http.Client
	// Timeout bounds a single fetch. Default 30s.
	Timeout time.Duration
}

// AsyncLoader fetches glyphs on background goroutines from http(s) URLs,
// file:// URLs or plain file paths. Concurrent requests for the same source
// share one fetch, and decoded textures are cached per source, so many
// markers sharing an icon decode it once. Each caller still gets its own
// completion.
type AsyncLoader struct {
	opts  LoaderOptions
	sem   *semaphore.Weighted
	group singleflight.Group

	mu    sync.Mutex
	ready []completion

	inflight atomic.Int64
	textures textureCache
}

// NewAsyncLoader creates an AsyncLoader.
func NewAsyncLoader(opts LoaderOptions) *AsyncLoader {
	if opts.MaxConcurrent <= 0 {
		opts.MaxConcurrent = defaultMaxConcurrent
	}
	if opts.Client == nil {
		opts.Client = http.DefaultClient
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultFetchTimeout
	}
	return &AsyncLoader{
		opts:     opts,
		sem:      semaphore.NewWeighted(opts.MaxConcurrent),
		textures: make(textureCache),
	}
}

// Load implements ImageLoader.
func (l *AsyncLoader) Load(src string, done func(*ebiten.Image)) {
	if src == "" {
		Logger().Debug("canvasmarkers: empty glyph source, skipping load")
		return
	}
	if tex, ok := l.textures[src]; ok {
		l.push(completion{src: src, tex: tex, done: done})
		return
	}
	l.inflight.Add(1)
	go func() {
		defer l.inflight.Add(-1)
		img, err := l.fetchShared(src)
		l.push(completion{src: src, img: img, err: err, done: done})
	}()
}

// Pending returns the number of fetches that have not finished yet.
func (l *AsyncLoader) Pending() int {
	return int(l.inflight.Load())
}

// Poll implements Poller.
func (l *AsyncLoader) Poll() int {
	l.mu.Lock()
	batch := l.ready
	l.ready = nil
	l.mu.Unlock()

	n := 0
	for _, c := range batch {
		if c.err != nil {
			Logger().Warn("canvasmarkers: glyph load failed", "src", c.src, "err", c.err)
			continue
		}
		tex := c.tex
		if tex == nil {
			tex = l.textures.texture(c.src, c.img)
		}
		c.done(tex)
		n++
	}
	return n
}

func (l *AsyncLoader) push(c completion) {
	l.mu.Lock()
	l.ready = append(l.ready, c)
	l.mu.Unlock()
}

func (l *AsyncLoader) fetchShared(src string) (image.Image, error) {
	v, err, _ := l.group.Do(src, func() (any, error) {
		ctx, cancel := context.WithTimeout(context.Background(), l.opts.Timeout)
		defer cancel()
		if err := l.sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		defer l.sem.Release(1)
		return l.fetch(ctx, src)
	})
	if err != nil {
		return nil, err
	}
	return v.(image.Image), nil
}

func (l *AsyncLoader) fetch(ctx context.Context, src string) (image.Image, error) {
	var r io.ReadCloser
	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, src, nil)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		resp, err := l.opts.Client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: status %s", src, resp.Status)
		}
		r = resp.Body
	default:
		f, err := os.Open(strings.TrimPrefix(src, "file://"))
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		r = f
	}
	defer r.Close()

	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", src, err)
	}
	return img, nil
}

// --- StaticLoader ---

// StaticLoader serves glyphs registered in memory, for generated icons and
// tests. Completions still arrive on the next Poll, never inside Load.
// Unknown sources never complete.
type StaticLoader struct {
	images   map[string]image.Image
	textures textureCache
	ready    []completion
}

// NewStaticLoader creates an empty StaticLoader.
func NewStaticLoader() *StaticLoader {
	return &StaticLoader{
		images:   make(map[string]image.Image),
		textures: make(textureCache),
	}
}

// Add registers img under src, replacing any earlier image and its texture.
func (l *StaticLoader) Add(src string, img image.Image) {
	l.images[src] = img
	delete(l.textures, src)
}

// Load implements ImageLoader.
func (l *StaticLoader) Load(src string, done func(*ebiten.Image)) {
	img, ok := l.images[src]
	if !ok {
		Logger().Debug("canvasmarkers: no static glyph registered", "src", src)
		return
	}
	l.ready = append(l.ready, completion{src: src, img: img, done: done})
}

// Poll implements Poller.
func (l *StaticLoader) Poll() int {
	batch := l.ready
	l.ready = nil
	for _, c := range batch {
		c.done(l.textures.texture(c.src, c.img))
	}
	return len(batch)
}

// Pending returns the number of completions waiting for Poll.
func (l *StaticLoader) Pending() int {
	return len(l.ready)
}
