// internal/assets/assets.go
package assets

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const sampleRate = 44100

var audioContext = audio.NewContext(sampleRate)

// Dir — корень ассетов относительно рабочей директории. Отсутствие любого
// файла здесь не фатально: симуляция обязана работать и без ассетов.
var Dir = "assets"

// LoadSound читает wav с диска и готовит проигрыватель. Ошибка означает
// лишь «звука не будет», и вызывающий обязан это пережить.
func LoadSound(name string) (*audio.Player, error) {
	data, err := os.ReadFile(filepath.Join(Dir, "sounds", name))
	if err != nil {
		return nil, fmt.Errorf("read sound %s: %w", name, err)
	}
	stream, err := wav.DecodeWithSampleRate(audioContext.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode wav %s: %w", name, err)
	}
	return audioContext.NewPlayer(stream)
}

// LoadFontFace грузит ttf нужного размера, а при любой ошибке откатывается
// на встроенный растровый шрифт. Текст будет в любом случае.
func LoadFontFace(name string, size float64) font.Face {
	data, err := os.ReadFile(filepath.Join(Dir, "fonts", name))
	if err != nil {
		log.Printf("assets: font %s unavailable, using builtin: %v", name, err)
		return basicfont.Face7x13
	}
	tt, err := opentype.Parse(data)
	if err != nil {
		log.Printf("assets: font %s unreadable, using builtin: %v", name, err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(tt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("assets: font %s face: %v", name, err)
		return basicfont.Face7x13
	}
	return face
}
