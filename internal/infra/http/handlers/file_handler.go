package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	appmiddleware "github.com/neuroclinic/lead-intake/internal/infra/http/middleware"
	"github.com/neuroclinic/lead-intake/internal/usecase"
)

type FileHandler struct {
	FileUC *usecase.LeadFileUseCase
}

func NewFileHandler(fileUC *usecase.LeadFileUseCase) *FileHandler {
	return &FileHandler{FileUC: fileUC}
}

// POST /api/files/upload-url
// Issues the upload slot; the client PUTs the binary there and then calls
// AddFile with the returned file_id.
func (h *FileHandler) GenerateUploadURL(w http.ResponseWriter, r *http.Request) {
	principalID := appmiddleware.GetPrincipalID(r.Context())

	slot, err := h.FileUC.GenerateUploadURL(r.Context(), principalID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, slot)
}

// POST /api/leads/{id}/files
func (h *FileHandler) AddFile(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")

	var input usecase.AddFileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON"})
		return
	}

	if input.FileID == "" || input.FileName == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "file_id and file_name are required"})
		return
	}

	principalID := appmiddleware.GetPrincipalID(r.Context())

	lead, err := h.FileUC.AddFile(r.Context(), principalID, leadID, input)
	if err != nil {
		writeError(w, err)
		return
	}

	appmiddleware.RecordFileUploaded()
	writeJSON(w, http.StatusOK, lead)
}

// DELETE /api/leads/{id}/files/{fileID}
func (h *FileHandler) RemoveFile(w http.ResponseWriter, r *http.Request) {
	leadID := chi.URLParam(r, "id")
	fileID := chi.URLParam(r, "fileID")
	principalID := appmiddleware.GetPrincipalID(r.Context())

	if err := h.FileUC.RemoveFile(r.Context(), principalID, leadID, fileID); err != nil {
		writeError(w, err)
		return
	}

	appmiddleware.RecordFileDeleted()
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GET /api/files/{fileID}/url
func (h *FileHandler) GetFileURL(w http.ResponseWriter, r *http.Request) {
	fileID := chi.URLParam(r, "fileID")
	principalID := appmiddleware.GetPrincipalID(r.Context())

	output, err := h.FileUC.GetFileURL(r.Context(), principalID, fileID)
	if err != nil {
		writeError(w, err)
		return
	}

	if output.URL == "" {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "file not found: " + fileID})
		return
	}

	writeJSON(w, http.StatusOK, output)
}
