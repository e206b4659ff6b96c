// Package asset provides concurrent loading and caching of images, fonts and
// raw files.
//
package asset

import (
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/db47h/ofs"
)

// FileSystem is the minimal file system interface needed by a Manager.
//
type FileSystem interface {
	Open(name string) (io.ReadCloser, error)
}

type ofsAdapter struct {
	fs ofs.FileSystem
}

func (o ofsAdapter) Open(name string) (io.ReadCloser, error) {
	return o.fs.Open(name)
}

// OFS returns a FileSystem reading from an ofs.FileSystem, like an
// ofs.Overlay.
//
func OFS(fsys ofs.FileSystem) FileSystem {
	return ofsAdapter{fsys}
}

type fsAdapter struct {
	fs fs.FS
}

func (f fsAdapter) Open(name string) (io.ReadCloser, error) {
	return f.fs.Open(name)
}

// FS returns a FileSystem reading from an fs.FS, like an embed.FS.
//
func FS(fsys fs.FS) FileSystem {
	return fsAdapter{fsys}
}

// Type designates the type of an asset.
//
type Type int

const (
	TypeFont Type = iota
	TypeImage
	TypeFile
	typeLast
)

// Asset uniquely describes an asset.
//
type Asset struct {
	Type
	Name string
}

func (a Asset) String() string {
	switch a.Type {
	case TypeFont:
		return "font asset " + a.Name
	case TypeImage:
		return "image asset " + a.Name
	case TypeFile:
		return "file asset " + a.Name
	}
	return "unknown asset " + a.Name
}

func Font(name string) Asset  { return Asset{TypeFont, name} }
func Image(name string) Asset { return Asset{TypeImage, name} }
func File(name string) Asset  { return Asset{TypeFile, name} }

type loader func(r io.Reader, name string) (interface{}, error)

var loaders = [typeLast]loader{
	TypeFont:  loadFont,
	TypeImage: loadImage,
	TypeFile:  loadFile,
}

type closer interface {
	Close() error
}

type config struct {
	imagePath string
	fontPath  string
	filePath  string
}

func (c *config) assetPath(a Asset) string {
	switch a.Type {
	case TypeFont:
		return path.Join(c.fontPath, a.Name)
	case TypeImage:
		return path.Join(c.imagePath, a.Name)
	case TypeFile:
		return path.Join(c.filePath, a.Name)
	}
	return a.Name
}

// Option is implemented by option functions passed as arguments to NewManager.
//
type Option interface {
	set(*config)
}

type cfn func(*config)

func (f cfn) set(cfg *config) {
	f(cfg)
}

// ImagePath returns an Option that sets the default image path.
//
func ImagePath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.imagePath = name
	})
}

// FontPath returns an Option that sets the default font path.
//
func FontPath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.fontPath = name
	})
}

// FilePath returns an Option that sets the default path for raw files.
//
func FilePath(name string) Option {
	return cfn(func(cfg *config) {
		cfg.filePath = name
	})
}

type errorList []error

func (e errorList) Error() string {
	var sb strings.Builder
	for i, err := range e {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(err.Error())
	}
	return sb.String()
}
