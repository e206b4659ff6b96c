package asset

import (
	"io"
	"io/ioutil"
	"sync"

	"github.com/golang/freetype/truetype"
	"github.com/pkg/errors"
	"golang.org/x/image/font"

	"github.com/db47h/void2d/text"
)

type fnt struct {
	f     *truetype.Font
	mu    sync.Mutex
	faces map[faceOpts]font.Face
}

type faceOpts struct {
	size    float64
	hinting text.Hinting
}

func (f *fnt) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	var errs errorList
	for opts, face := range f.faces {
		if err := face.Close(); err != nil {
			errs = append(errs, errors.Wrapf(err, "close face %v", opts))
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func loadFont(r io.Reader, name string) (interface{}, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	return &fnt{f: ttf, faces: make(map[faceOpts]font.Face)}, nil
}

func (m *Manager) font(name string) (*fnt, error) {
	a, err := m.get(Font(name))
	if err != nil {
		return nil, err
	}
	f, ok := a.(*fnt)
	if !ok {
		return nil, errors.Errorf("asset %s is not a font", name)
	}
	return f, nil
}

// Font returns the named font asset.
//
func (m *Manager) Font(name string) (*truetype.Font, error) {
	f, err := m.font(name)
	if err != nil {
		return nil, err
	}
	return f.f, nil
}

// Face returns a font face for the named font asset, see text.NewFace.
//
// Faces are cached. The only way to clean the cache is to Discard the
// corresponding font asset.
//
func (m *Manager) Face(name string, size float64, hinting text.Hinting) (font.Face, error) {
	f, err := m.font(name)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	opts := faceOpts{size, hinting}
	if face := f.faces[opts]; face != nil {
		return face, nil
	}
	face := text.NewFace(f.f, size, hinting)
	f.faces[opts] = face
	return face, nil
}
