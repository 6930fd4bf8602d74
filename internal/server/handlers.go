package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/tarunkusetti2004/Orb-of-night-habitat/internal/store"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/editor"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/geo"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/habitat"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/layout"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/metrics"
	"github.com/tarunkusetti2004/Orb-of-night-habitat/pkg/scene"
)

// maxBodyBytes caps request bodies; layout documents are small.
const maxBodyBytes = 1 << 20

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("decoding request body: %v", err))
		return false
	}
	return true
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) handleSetHabitat(w http.ResponseWriter, r *http.Request) {
	var shell habitat.Shell
	if !decodeBody(w, r, &shell) {
		return
	}
	if err := s.session.SetShell(shell); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, shell)
}

func (s *Server) handleAddZone(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Type     string    `json:"type"`
		Position *geo.Vec3 `json:"position,omitempty"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Type == "" {
		writeError(w, http.StatusUnprocessableEntity, "zone type is required")
		return
	}
	z := s.session.AddZone(layout.ZoneType(body.Type), body.Position)
	writeJSON(w, http.StatusCreated, z)
}

func (s *Server) handleRemoveZone(w http.ResponseWriter, r *http.Request) {
	if !s.session.RemoveZone(r.PathValue("id")) {
		writeError(w, http.StatusNotFound, "zone not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleMoveZone(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Position        geo.Vec3 `json:"position"`
		CommitOnInvalid bool     `json:"commit_on_invalid"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	res, err := s.session.MoveZone(r.PathValue("id"), body.Position, body.CommitOnInvalid)
	if errors.Is(err, editor.ErrZoneNotFound) {
		writeError(w, http.StatusNotFound, "zone not found")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDuplicateZone(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Offset *geo.Vec3 `json:"offset,omitempty"`
	}
	if r.ContentLength != 0 && !decodeBody(w, r, &body) {
		return
	}
	dup, err := s.session.DuplicateZone(r.PathValue("id"), body.Offset)
	if errors.Is(err, editor.ErrZoneNotFound) {
		writeError(w, http.StatusNotFound, "zone not found")
		return
	}
	writeJSON(w, http.StatusCreated, dup)
}

func (s *Server) handleUpdateZone(w http.ResponseWriter, r *http.Request) {
	var attrs layout.Attrs
	if !decodeBody(w, r, &attrs) {
		return
	}
	z, err := s.session.UpdateZone(r.PathValue("id"), attrs)
	if errors.Is(err, editor.ErrZoneNotFound) {
		writeError(w, http.StatusNotFound, "zone not found")
		return
	}
	writeJSON(w, http.StatusOK, z)
}

func (s *Server) handleSelect(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ZoneID string `json:"zone_id"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if err := s.session.Select(body.ZoneID); err != nil {
		writeError(w, http.StatusNotFound, "zone not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"selection": body.ZoneID})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ZoneID   string   `json:"zone_id"`
		Position geo.Vec3 `json:"position"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	writeJSON(w, http.StatusOK, s.session.Preview(body.ZoneID, body.Position))
}

func (s *Server) handleExport(w http.ResponseWriter, _ *http.Request) {
	data, err := s.session.Export()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", layout.DocumentFilename))
	w.Write(data)
}

func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("reading request body: %v", err))
		return
	}
	if err := s.importDocument(data); err != nil {
		writeImportError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}

func (s *Server) importDocument(data []byte) error {
	if err := s.session.Import(data); err != nil {
		return err
	}
	s.log.Info("layout imported", zap.Int("zones", len(s.session.Snapshot().Zones)))
	return nil
}

func writeImportError(w http.ResponseWriter, err error) {
	var parseErr *layout.ParseError
	var schemaErr *layout.SchemaError
	switch {
	case errors.As(err, &parseErr):
		writeError(w, http.StatusBadRequest, parseErr.Error())
	case errors.As(err, &schemaErr):
		writeError(w, http.StatusUnprocessableEntity, schemaErr.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleScene(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, scene.Assemble(s.spec.Name, s.session.Layout()))
}

func (s *Server) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	l := s.session.Layout()
	summary, report, err := metrics.Resolve(l)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	report.Merge(metrics.Audit(l))
	writeJSON(w, http.StatusOK, map[string]any{
		"summary": summary,
		"report":  report,
	})
}

func (s *Server) handleSpec(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.spec)
}

func (s *Server) handleListLayouts(w http.ResponseWriter, r *http.Request) {
	entries, err := s.library.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleSaveLayout(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !decodeBody(w, r, &body) {
		return
	}
	if body.Name == "" {
		writeError(w, http.StatusUnprocessableEntity, "layout name is required")
		return
	}
	doc, err := s.session.Export()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	entry, err := s.library.Save(r.Context(), body.Name, doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.log.Info("layout saved", zap.String("id", entry.ID), zap.String("name", entry.Name))
	writeJSON(w, http.StatusCreated, entry)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	entry, err := s.library.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "layout not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, entry)
}

func (s *Server) handleDeleteLayout(w http.ResponseWriter, r *http.Request) {
	ok, err := s.library.Delete(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if !ok {
		writeError(w, http.StatusNotFound, "layout not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRestoreLayout(w http.ResponseWriter, r *http.Request) {
	entry, err := s.library.Get(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "layout not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	// Restore is an import: a full replace through the same schema gate.
	if err := s.importDocument([]byte(entry.Document)); err != nil {
		writeImportError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.Snapshot())
}
