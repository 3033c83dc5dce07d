package assets

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// ErrAssetNotFound is returned when an asset path does not exist.
var ErrAssetNotFound = errors.New("asset not found")

// FontLoader reads font files by path and caches the raw bytes.
type FontLoader struct {
	fsys  fs.FS
	cache map[string][]byte
}

// NewFontLoader creates a font loader reading from fsys.
func NewFontLoader(fsys fs.FS) *FontLoader {
	return &FontLoader{
		fsys:  fsys,
		cache: make(map[string][]byte),
	}
}

// NewDiskFontLoader creates a font loader rooted at the working directory.
func NewDiskFontLoader() *FontLoader {
	return NewFontLoader(os.DirFS("."))
}

// LoadFont returns the contents of the font file at path.
func (l *FontLoader) LoadFont(path string) ([]byte, error) {
	if data, ok := l.cache[path]; ok {
		return data, nil
	}

	data, err := fs.ReadFile(l.fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("font %s: %w", path, ErrAssetNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read font file %s: %w", path, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("font file %s is empty", path)
	}

	l.cache[path] = data
	return data, nil
}
