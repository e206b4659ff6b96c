package asset

import (
	"io"
	"io/ioutil"

	"github.com/pkg/errors"
)

type file []byte

func loadFile(r io.Reader, name string) (interface{}, error) {
	data, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return file(data), nil
}

// File returns the content of the named raw file asset.
//
func (m *Manager) File(name string) ([]byte, error) {
	a, err := m.get(File(name))
	if err != nil {
		return nil, err
	}
	if data, ok := a.(file); ok {
		return data, nil
	}
	return nil, errors.Errorf("asset %s is not a raw file", name)
}
