package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"log"
	"math/rand"
	"time"

	"github.com/db47h/ofs"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/db47h/void2d"
	"github.com/db47h/void2d/app"
	"github.com/db47h/void2d/asset"
	"github.com/db47h/void2d/debug"
	"github.com/db47h/void2d/gpu"
	"github.com/db47h/void2d/text"
)

// texture batches
const (
	imageBatch = iota
	debugBatch
	textureBatches
)

var (
	width    = flag.Int("w", 800, "window width")
	height   = flag.Int("h", 600, "window height")
	vsync    = flag.Bool("vsync", true, "enable vsync")
	interval = flag.Duration("interval", 250*time.Millisecond, "delay between new triangles")
	assetDir = flag.String("assets", "assets", "asset directory")
	imgName  = flag.String("image", "", "image to display, relative to the images directory")
	fontName = flag.String("font", "", "info box font, relative to the fonts directory")
	shaders  = flag.Bool("shaders", false, "load shaders from the shaders directory")
)

// shader names, each with a .vert and a .frag source file
var shaderNames = []string{"solid", "texture"}

type texture struct {
	w, h   int
	format gpu.PixelFormat
	pix    []byte
}

type demo struct {
	img texture
	dbg debug.Debug
	fps debug.FPS
	acc time.Duration
}

func (d *demo) Begin(e *void2d.Engine) {
	if _, err := e.AddTexture(d.img.w, d.img.h, d.img.pix, true, d.img.format, -1, imageBatch,
		void2d.Filter(gpu.LinearMipmapLinear, gpu.Linear)); err != nil {
		log.Print(err)
		return
	}
	e.ChooseCurrentTextures(imageBatch)
	e.TextureRect(-0.5, -0.5, 1, 1, 0.5)
}

func (d *demo) Update(e *void2d.Engine, dt time.Duration) {
	d.acc += dt
	for d.acc >= *interval {
		d.acc -= *interval
		e.SetDrawColor(gpu.ToColor(palette.WebSafe[rand.Intn(len(palette.WebSafe))]))
		e.FillTriangle(randomPoint(), randomPoint(), randomPoint(), 0)
	}

	if fps, ok := d.fps.Tick(dt); ok {
		s := fmt.Sprintf("%.1f fps - %d frames", fps, e.FrameCount())
		e.SetTitle("void2d demo - " + s)
		e.ClearTextures(debugBatch)
		if err := d.dbg.InfoBox(e, debug.TopLeft, s); err != nil {
			log.Print(err)
		}
	}
}

func randomPoint() mgl32.Vec2 {
	return mgl32.Vec2{rand.Float32()*2 - 1, rand.Float32()*2 - 1}
}

// checkerboard returns a fallback image for when no image is given.
func checkerboard(size, square int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/square+y/square)%2 == 0 {
				img.Set(x, y, color.NRGBA{R: 0xff, G: 0x80, A: 0xff})
			} else {
				img.Set(x, y, color.NRGBA{B: 0xc0, A: 0xff})
			}
		}
	}
	return img
}

func main() {
	flag.Parse()

	var ovl ofs.Overlay
	if err := ovl.Add(false, *assetDir, "cmd/demo/assets"); err != nil {
		log.Fatal(err)
	}
	mgr := asset.NewManager(asset.OFS(&ovl),
		asset.ImagePath("images"),
		asset.FontPath("fonts"),
		asset.FilePath("shaders"))
	defer mgr.Close()

	var todo []asset.Asset
	if *imgName != "" {
		todo = append(todo, asset.Image(*imgName))
	}
	if *fontName != "" {
		todo = append(todo, asset.Font(*fontName))
	}
	if *shaders {
		for _, name := range shaderNames {
			todo = append(todo, asset.File(name+".vert"), asset.File(name+".frag"))
		}
	}
	log.Printf("preloading %d assets", len(todo))
	if err := mgr.Preload(context.Background(), todo...); err != nil {
		log.Fatal(err)
	}

	d := &demo{dbg: debug.Debug{Batch: debugBatch, Z: -0.5}}
	if *imgName != "" {
		var err error
		d.img.w, d.img.h, d.img.format, d.img.pix, err = mgr.Texture(*imgName)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		b := asset.FromImage(checkerboard(256, 32))
		d.img = texture{b.Width, b.Height, b.Format(), b.Pix}
	}

	if *fontName != "" {
		f, err := mgr.Face(*fontName, 16, text.HintingFull)
		if err != nil {
			log.Fatal(err)
		}
		d.dbg.TD = text.NewDrawer(f)
	} else {
		f, err := text.DefaultFace(16)
		if err != nil {
			log.Fatal(err)
		}
		d.dbg.TD = text.NewDrawer(f)
		defer d.dbg.TD.Close()
	}

	opts := []void2d.Option{void2d.TextureBatches(textureBatches), void2d.RetainGeometry()}
	if *shaders {
		var src []string
		for _, name := range shaderNames {
			vs, fs, err := mgr.ShaderSources(name)
			if err != nil {
				log.Fatal(err)
			}
			src = append(src, vs, fs)
		}
		opts = append(opts, void2d.Shaders(src[0], src[1], src[2], src[3]), void2d.StrictShaders())
	}

	swap := 1
	if !*vsync {
		swap = 0
	}
	if err := app.Main("void2d demo", *width, *height, d, []app.WindowOption{app.CloseOnEscape(), app.SwapInterval(swap)}, opts...); err != nil {
		log.Print(err)
	}
}
