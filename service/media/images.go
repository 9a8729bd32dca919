package media

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"

	"github.com/amanda-debetaz/PandaExpressPOS/config"
)

const (
	boardWidth  = 800
	boardHeight = 600
	thumbSize   = 200
	webpQuality = 80
)

// Photo holds the stored file paths for one menu item image.
type Photo struct {
	MenuItemID uint   `json:"menu_item_id"`
	Board      string `json:"board"`
	Thumb      string `json:"thumb"`
}

// ProcessMenuPhoto resizes an uploaded menu item photo for the menu board
// (fit 800x600) plus a square kiosk thumbnail, both encoded as WebP under
// MediaDir.
func ProcessMenuPhoto(src io.Reader, menuItemID uint) (*Photo, error) {
	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("decode photo: %w", err)
	}

	dir := config.AppConfig.MediaDir
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	board := imaging.Fit(img, boardWidth, boardHeight, imaging.Lanczos)
	boardPath := filepath.Join(dir, fmt.Sprintf("item_%d_board.webp", menuItemID))
	if err := writeWebp(boardPath, board); err != nil {
		return nil, err
	}

	thumb := imaging.Fill(img, thumbSize, thumbSize, imaging.Center, imaging.Lanczos)
	thumbPath := filepath.Join(dir, fmt.Sprintf("item_%d_thumb.webp", menuItemID))
	if err := writeWebp(thumbPath, thumb); err != nil {
		return nil, err
	}

	return &Photo{MenuItemID: menuItemID, Board: boardPath, Thumb: thumbPath}, nil
}

func writeWebp(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := webp.Encode(f, img, &webp.Options{Quality: webpQuality}); err != nil {
		return fmt.Errorf("encode webp: %w", err)
	}
	return f.Sync()
}
