package session

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/stationhq/station/backend-go/internal/element"
	"github.com/stationhq/station/backend-go/internal/typeid"
)

const (
	// Fallback placement size when the image cannot be decoded. A failed
	// load still results in exactly one well-formed insertion.
	fallbackImageWidth  = 300
	fallbackImageHeight = 200

	// Decoded images are scaled down to fit this box on placement.
	maxImageEdge = 400

	maxImageBytes     = 20 << 20 // 20MB
	imageFetchTimeout = 10 * time.Second
)

var imageClient = &http.Client{Timeout: imageFetchTimeout}

// InsertImage places an image element at (x, y), resolving the source's
// natural dimensions asynchronously. Fire and forget: on completion or
// failure it performs exactly one element.add on the session.
func (s *Service) InsertImage(sessionID, src string, x, y float64) {
	go func() {
		width, height := fallbackImageWidth, fallbackImageHeight
		if w, h, err := probeImageSize(src); err == nil {
			width, height = fitImage(w, h)
		} else {
			slog.Warn("probe image failed, using fallback size", "error", err, "session", sessionID)
		}

		el := element.NewImage(element.Base{
			ID:      typeid.NewElementID(),
			X:       x,
			Y:       y,
			Width:   float64(width),
			Height:  float64(height),
			Opacity: 1,
			Name:    "Image",
		}, src)

		raw, err := json.Marshal(el)
		if err != nil {
			slog.Error("marshal image element", "error", err)
			return
		}
		if _, err := s.Apply(sessionID, Op{Type: OpElementAdd, Element: raw}); err != nil {
			slog.Warn("insert image failed", "error", err, "session", sessionID)
		}
	}()
}

// probeImageSize decodes just enough of the source (data URI or URL) to
// learn its natural pixel dimensions. PNG, JPEG, GIF, and WebP are
// supported.
func probeImageSize(src string) (int, int, error) {
	var r io.Reader

	switch {
	case strings.HasPrefix(src, "data:"):
		idx := strings.Index(src, "base64,")
		if idx < 0 {
			return 0, 0, fmt.Errorf("unsupported data URI encoding")
		}
		data, err := base64.StdEncoding.DecodeString(src[idx+len("base64,"):])
		if err != nil {
			return 0, 0, fmt.Errorf("decode data URI: %w", err)
		}
		r = bytes.NewReader(data)

	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		resp, err := imageClient.Get(src)
		if err != nil {
			return 0, 0, fmt.Errorf("fetch image: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return 0, 0, fmt.Errorf("fetch image: status %d", resp.StatusCode)
		}
		r = io.LimitReader(resp.Body, maxImageBytes)

	default:
		return 0, 0, fmt.Errorf("unsupported image source")
	}

	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return 0, 0, fmt.Errorf("decode image: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}

// fitImage scales natural dimensions down to fit maxImageEdge, keeping
// the aspect ratio. Images already inside the box keep their size.
func fitImage(w, h int) (int, int) {
	if w <= 0 || h <= 0 {
		return fallbackImageWidth, fallbackImageHeight
	}
	longest := max(w, h)
	if longest <= maxImageEdge {
		return w, h
	}
	scale := float64(maxImageEdge) / float64(longest)
	return int(float64(w) * scale), int(float64(h) * scale)
}
