package server

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// maxRenderSize caps the preview resolution served over HTTP
const maxRenderSize = 2000

// consoleCapacity is the number of log messages returned with a JSON render
const consoleCapacity = 100

// RenderRequest represents the parameters for a render request
type RenderRequest struct {
	Scene     string
	Size      int
	Antialias bool
	Fog       bool
	MaxSteps  int
	Format    string // "png" or "json"
}

// RenderStatsResponse is the JSON form of renderer.RenderStats
type RenderStatsResponse struct {
	Scene         string  `json:"scene"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	Pixels        int     `json:"pixels"`
	PrimaryRays   int64   `json:"primaryRays"`
	SecondaryRays int64   `json:"secondaryRays"`
	ShadowRays    int64   `json:"shadowRays"`
	MaxStep       int     `json:"maxStep"`
	MaxSteps      int     `json:"maxSteps"`
	AvgLuminance  float64 `json:"avgLuminance"`
	DurationMs    int64   `json:"durationMs"`
}

// RenderResponse is returned by /api/render when format=json
type RenderResponse struct {
	Image   string              `json:"image"` // Base64 PNG
	Stats   RenderStatsResponse `json:"stats"`
	Console []ConsoleMessage    `json:"console"`
}

// handleRender renders a scene and returns it as a PNG or as JSON
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	s.logger.Debugf("[%s] %s size=%d aa=%t fog=%t maxSteps=%d format=%s",
		renderID, req.Scene, req.Size, req.Antialias, req.Fog, req.MaxSteps, req.Format)
	webLogger := NewWebLogger(renderID, s.logger, consoleCapacity)

	sc, err := scene.LoadListed(req.Scene, s.sceneOptions(webLogger))
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}

	opts := renderer.DefaultOptions()
	opts.Size = req.Size
	opts.Antialias = req.Antialias
	opts.Fog = req.Fog
	opts.MaxSteps = req.MaxSteps

	rt, err := renderer.NewRaytracer(sc, opts, webLogger)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	img, stats, err := rt.Render(r.Context())
	if err != nil {
		s.logger.Warningf("[%s] %v", renderID, err)
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	if req.Format == "json" {
		encoded, err := imageToBase64PNG(img)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, RenderResponse{
			Image:   encoded,
			Stats:   toStatsResponse(stats),
			Console: webLogger.Messages(),
		})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(buf.Bytes())
}

// parseRenderRequest parses URL parameters into a RenderRequest
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{
		Scene:  "cosc",
		Format: "png",
	}

	if sceneID := query.Get("scene"); sceneID != "" {
		req.Scene = sceneID
	}
	if format := query.Get("format"); format != "" {
		if format != "png" && format != "json" {
			return nil, fmt.Errorf("invalid format: %s", format)
		}
		req.Format = format
	}

	var err error
	if req.Size, err = parseIntParam(query, "size", 200, 1, maxRenderSize); err != nil {
		return nil, err
	}
	if req.MaxSteps, err = parseIntParam(query, "maxSteps", 0, 0, 50); err != nil {
		return nil, err
	}
	if req.Antialias, err = parseBoolParam(query, "aa", false); err != nil {
		return nil, err
	}
	if req.Fog, err = parseBoolParam(query, "fog", false); err != nil {
		return nil, err
	}

	return req, nil
}

func toStatsResponse(stats renderer.RenderStats) RenderStatsResponse {
	return RenderStatsResponse{
		Scene:         stats.Scene,
		Width:         stats.Width,
		Height:        stats.Height,
		Pixels:        stats.TotalPixels,
		PrimaryRays:   stats.PrimaryRays,
		SecondaryRays: stats.SecondaryRays,
		ShadowRays:    stats.ShadowRays,
		MaxStep:       stats.MaxStep,
		MaxSteps:      stats.MaxSteps,
		AvgLuminance:  stats.AvgLuminance,
		DurationMs:    stats.Duration.Milliseconds(),
	}
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
