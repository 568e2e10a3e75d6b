package main

import (
	"bytes"
	"log"

	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

var mainFont, smallFont, titleFont text.Face

func initFont() {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}
	mainFont = &text.GoTextFace{Source: regular, Size: 18}
	smallFont = &text.GoTextFace{Source: regular, Size: 14}

	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		log.Fatalf("failed to parse font: %v", err)
	}
	titleFont = &text.GoTextFace{Source: bold, Size: 48}
}
