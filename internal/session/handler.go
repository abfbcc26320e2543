package session

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/stationhq/station/backend-go/internal/canvas"
	"github.com/stationhq/station/backend-go/internal/template"
)

type Handler struct {
	service   *Service
	templates *template.Service
}

func NewHandler(service *Service, templates *template.Service) *Handler {
	return &Handler{service: service, templates: templates}
}

type createRequest struct {
	Name     string `json:"name"`
	PresetID string `json:"presetId"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

type saveTemplateRequest struct {
	Name      string `json:"name"`
	Category  string `json:"category"`
	Thumbnail string `json:"thumbnail"`
}

type applyTemplateRequest struct {
	TemplateID string `json:"templateId"`
}

type insertImageRequest struct {
	Src string  `json:"src"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	if req.Name == "" {
		req.Name = "Untitled"
	}
	if req.PresetID == "" && (req.Width <= 0 || req.Height <= 0) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "preset or dimensions required"})
		return
	}

	sess := h.service.Create(req.Name, req.PresetID, req.Width, req.Height)
	writeJSON(w, http.StatusCreated, sess.State())
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.List())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(mux.Vars(r)["sessionId"]); err != nil {
		handleServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ApplyOp(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var op Op
	if err := json.NewDecoder(r.Body).Decode(&op); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if op.Type == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "operation type is required"})
		return
	}

	rev, err := h.service.Apply(sessionID, op)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			handleServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"rev": rev})
}

func (h *Handler) Render(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.RenderCommands())
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		handleServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"summary": sess.Describe()})
}

// SaveTemplate stores the session's current canvas as a reusable user
// template.
func (h *Handler) SaveTemplate(w http.ResponseWriter, r *http.Request) {
	sess, err := h.service.Get(mux.Vars(r)["sessionId"])
	if err != nil {
		handleServiceError(w, err)
		return
	}

	var req saveTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "name is required"})
		return
	}

	width, height, defs := sess.ExportTemplate()
	id, err := h.templates.Save(req.Name, req.Category, width, height, defs, req.Thumbnail)
	if err != nil {
		slog.Error("save template failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ApplyTemplate loads a template into the session, replacing its canvas
// contents in a single undoable step.
func (h *Handler) ApplyTemplate(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req applyTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}

	t, err := h.templates.Get(req.TemplateID)
	if err != nil {
		if errors.Is(err, template.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "template not found"})
			return
		}
		slog.Error("get template failed", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	defs, err := h.templates.Elements(t)
	if err != nil {
		slog.Error("decode template failed", "error", err, "template", t.ID)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}

	rev, err := h.service.ApplyTemplate(sessionID, t.Width, t.Height, defs)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	h.templates.MarkUsed(t.ID)
	writeJSON(w, http.StatusOK, map[string]int64{"rev": rev})
}

// InsertImage starts async placement of an image element. The element
// appears via a broadcast once its dimensions resolve.
func (h *Handler) InsertImage(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]
	if _, err := h.service.Get(sessionID); err != nil {
		handleServiceError(w, err)
		return
	}

	var req insertImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
		return
	}
	if req.Src == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "src is required"})
		return
	}

	h.service.InsertImage(sessionID, req.Src, req.X, req.Y)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "placing"})
}

// Presets lists the canvas size catalog.
func (h *Handler) Presets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, canvas.Presets())
}

func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	default:
		slog.Error("service error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
