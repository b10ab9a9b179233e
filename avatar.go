package portfolio

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/labstack/echo/v4"
	"golang.org/x/image/draw"
)

const (
	avatarSize      = 256
	avatarQuality   = 85
	avatarFilename  = "avatar.jpg"
	maxAvatarUpload = 5 << 20 // 5MB
)

// ProcessAvatar decodes an image from src, center-crops it square, scales it
// to avatarSize, and encodes it as JPEG.
func ProcessAvatar(src io.Reader) ([]byte, error) {
	img, _, err := image.Decode(src)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Center-crop to square before scaling so the portrait is never
	// distorted.
	side := w
	if h < side {
		side = h
	}
	crop := image.Rect(0, 0, side, side).
		Add(image.Pt(bounds.Min.X+(w-side)/2, bounds.Min.Y+(h-side)/2))

	dst := image.NewRGBA(image.Rect(0, 0, avatarSize, avatarSize))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, crop, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, dst, &jpeg.Options{Quality: avatarQuality}); err != nil {
		return nil, fmt.Errorf("encode jpeg: %w", err)
	}
	return buf.Bytes(), nil
}

func (a *App) handleAvatarUpload(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return c.String(http.StatusBadRequest, "No image file provided")
	}
	if file.Size > maxAvatarUpload {
		return c.String(http.StatusBadRequest, "File too large (max 5MB)")
	}

	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	data, err := ProcessAvatar(src)
	if err != nil {
		return c.String(http.StatusBadRequest, "Invalid image: "+err.Error())
	}

	if err := os.MkdirAll(a.staticDir, 0o755); err != nil {
		return fmt.Errorf("create static dir: %w", err)
	}
	if err := os.WriteFile(filepath.Join(a.staticDir, avatarFilename), data, 0o644); err != nil {
		return fmt.Errorf("write avatar: %w", err)
	}

	return a.renderAdminDashboard(c, "avatar updated")
}
