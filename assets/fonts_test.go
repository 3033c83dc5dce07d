package assets

import (
	"errors"
	"testing"
	"testing/fstest"
)

func TestFontLoaderLoadFont(t *testing.T) {
	fsys := fstest.MapFS{
		"fonts/a.ttf":     {Data: []byte("ttf-bytes")},
		"fonts/empty.ttf": {Data: []byte{}},
	}

	tests := []struct {
		name     string
		path     string
		wantErr  bool
		notFound bool
	}{
		{name: "existing font", path: "fonts/a.ttf"},
		{name: "missing font", path: "fonts/missing.ttf", wantErr: true, notFound: true},
		{name: "empty font", path: "fonts/empty.ttf", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l := NewFontLoader(fsys)
			data, err := l.LoadFont(tc.path)
			if (err != nil) != tc.wantErr {
				t.Fatalf("LoadFont() error = %v, wantErr %v", err, tc.wantErr)
			}
			if errors.Is(err, ErrAssetNotFound) != tc.notFound {
				t.Errorf("errors.Is(err, ErrAssetNotFound) = %v, expected %v", !tc.notFound, tc.notFound)
			}
			if !tc.wantErr && string(data) != "ttf-bytes" {
				t.Errorf("LoadFont() = %q", data)
			}
		})
	}
}

func TestFontLoaderCaches(t *testing.T) {
	fsys := fstest.MapFS{"f.ttf": {Data: []byte("one")}}
	l := NewFontLoader(fsys)

	if _, err := l.LoadFont("f.ttf"); err != nil {
		t.Fatal(err)
	}
	fsys["f.ttf"] = &fstest.MapFile{Data: []byte("two")}

	data, err := l.LoadFont("f.ttf")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "one" {
		t.Errorf("LoadFont() = %q, expected cached %q", data, "one")
	}
}
