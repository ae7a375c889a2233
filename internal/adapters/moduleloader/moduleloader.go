package moduleloader

import (
	"os"
	"path/filepath"
)

// FileLoader reads precompiled kernel modules from a directory.
type FileLoader struct {
	Dir string
}

func (l FileLoader) Load(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(l.Dir, name))
}

// StaticLoader serves fixed in-memory module bytes, used for the
// software backends where no compiled module exists on disk.
type StaticLoader struct {
	Data []byte
}

func (l StaticLoader) Load(name string) ([]byte, error) {
	return l.Data, nil
}
