package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"healwave/internal/audio"
	"healwave/internal/metrics"
	"healwave/internal/preset"
)

type presetItem struct {
	Name string     `json:"name"`
	Kind audio.Kind `json:"kind,omitempty"`
}

// presets handles GET /api/presets.
func (s *Server) presets(w http.ResponseWriter, r *http.Request) {
	names := preset.Names()
	items := make([]presetItem, 0, len(names))
	for _, name := range names {
		items = append(items, presetItem{Name: name, Kind: preset.KindOf(name)})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"presets":              items,
		"kinds":                audio.Kinds(),
		"custom":               preset.CustomName,
		"max_duration_minutes": s.cfg.MaxDurationMinutes,
		"sample_rate":          s.cfg.SampleRate,
	})
}

type generateRequest struct {
	Preset          string         `json:"preset"`
	DurationMinutes float64        `json:"duration_minutes"`
	Custom          *preset.Custom `json:"custom,omitempty"`
}

// generate handles POST /api/generate. It resolves the preset or custom
// configuration, synthesizes, encodes, and streams the WAV back with a
// download filename. Taxonomy errors map to 4xx responses; the process never
// crashes on invalid input.
func (s *Server) generate(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.New().String()
	logger := s.logger.With(zap.String("request", reqID))

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	// Cap rather than reject, like the duration slider does.
	duration := req.DurationMinutes * 60
	if max := s.cfg.MaxDurationSeconds(); duration > max {
		duration = max
	}

	params, name, err := s.resolve(req, duration)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(kindLabel(params.Kind), "rejected").Inc()
		logger.Warn("resolve failed", zap.String("preset", req.Preset), zap.Error(err))
		s.writeError(w, statusFor(err), err.Error())
		return
	}

	start := time.Now()
	buf, err := audio.Generate(params)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(string(params.Kind), "rejected").Inc()
		logger.Warn("generate failed", zap.String("kind", string(params.Kind)), zap.Error(err))
		s.writeError(w, statusFor(err), err.Error())
		return
	}

	data, err := audio.Encode(buf, params.SampleRate)
	if err != nil {
		// Valid params always produce a non-silent buffer; reaching this is a bug.
		metrics.GenerationsTotal.WithLabelValues(string(params.Kind), "error").Inc()
		logger.Error("encode failed", zap.String("kind", string(params.Kind)), zap.Error(err))
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	elapsed := time.Since(start)
	metrics.GenerationsTotal.WithLabelValues(string(params.Kind), "ok").Inc()
	metrics.GenerationDuration.WithLabelValues(string(params.Kind)).Observe(elapsed.Seconds())
	metrics.EncodedBytesTotal.Add(float64(len(data)))

	logger.Info("generated audio",
		zap.String("preset", name),
		zap.String("kind", string(params.Kind)),
		zap.Float64("seconds", params.Duration),
		zap.Int("frames", buf.Frames()),
		zap.Int("bytes", len(data)),
		zap.Duration("elapsed", elapsed),
	)

	w.Header().Set("Content-Type", "audio/wav")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", preset.Filename(name)))
	w.Header().Set("X-Request-ID", reqID)
	w.Write(data)
}

// resolve picks between the static table and an explicit custom config.
func (s *Server) resolve(req generateRequest, duration float64) (audio.Params, string, error) {
	if req.Preset == preset.CustomName || (req.Preset == "" && req.Custom != nil) {
		if req.Custom == nil {
			return audio.Params{}, preset.CustomName,
				fmt.Errorf("%w: custom settings missing", audio.ErrInvalidParameter)
		}
		p, err := preset.ResolveCustom(*req.Custom, duration, s.cfg.SampleRate)
		return p, preset.CustomName, err
	}
	p, err := preset.Resolve(req.Preset, duration, s.cfg.SampleRate)
	return p, req.Preset, err
}

func kindLabel(k audio.Kind) string {
	if k == "" {
		return "unknown"
	}
	return string(k)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, preset.ErrUnknownPreset):
		return http.StatusNotFound
	case errors.Is(err, preset.ErrCustomPreset),
		errors.Is(err, audio.ErrInvalidParameter),
		errors.Is(err, audio.ErrInvalidDuration):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
