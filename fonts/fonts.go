package fonts

import (
	"fmt"
	"sync"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

type FontName string

const (
	Status FontName = "status"
	Body   FontName = "body"
	Title  FontName = "title"
)

func (f FontName) Get() font.Face {
	return getFont(f)
}

var (
	fonts       = map[FontName]font.Face{}
	loadDefault sync.Once
)

// LoadFontWithSize parses ttf and registers it under name.
func LoadFontWithSize(name FontName, ttf []byte, size float64) error {
	fontData, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("font %s: %w", name, err)
	}
	fonts[name] = truetype.NewFace(fontData, &truetype.Options{Size: size})
	return nil
}

// The Go fonts ship inside x/image, so the defaults always parse.
func loadDefaults() {
	must(LoadFontWithSize(Status, goregular.TTF, 10))
	must(LoadFontWithSize(Body, goregular.TTF, 14))
	must(LoadFontWithSize(Title, gobold.TTF, 28))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func getFont(name FontName) font.Face {
	loadDefault.Do(loadDefaults)
	f, ok := fonts[name]
	if !ok {
		panic(fmt.Sprintf("Font %s not found", name))
	}
	return f
}
