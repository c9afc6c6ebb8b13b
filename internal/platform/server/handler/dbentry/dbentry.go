package dbentry

import (
	"encoding/json"
	"io"
	"net/http"

	"BitKV/internal/application/service"
	"BitKV/internal/domain"

	"github.com/go-chi/chi/v5"
)

type DbEntryHandler struct {
	saveService   *service.SaveEntryService
	deleteService *service.DeleteEntryService
	getService    *service.GetEntryService
	listService   *service.ListKeysService
}

func NewDbEntryHandler(saveService *service.SaveEntryService,
	deleteService *service.DeleteEntryService,
	getService *service.GetEntryService,
	listService *service.ListKeysService) *DbEntryHandler {
	return &DbEntryHandler{
		saveService:   saveService,
		deleteService: deleteService,
		getService:    getService,
		listService:   listService,
	}
}

type SaveEntryRequest struct {
	Value string `json:"value"`
}

type EntryResponse struct {
	Key       string `json:"key,omitempty"`
	Value     string `json:"value,omitempty"`
	Tombstone bool   `json:"tombstone"`
}

func MapToEntryResponse(r domain.Record) EntryResponse {
	return EntryResponse{
		Key:       r.Key(),
		Value:     r.Value(),
		Tombstone: r.Tombstone(),
	}
}

func (h *DbEntryHandler) SaveEntry(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	var request SaveEntryRequest
	body, err := io.ReadAll(r.Body)
	if err != nil || json.Unmarshal(body, &request) != nil {
		http.Error(w, "Invalid body", http.StatusBadRequest)
		return
	}

	result := h.saveService.Execute(service.SaveEntryCommand{
		Key:   key,
		Value: request.Value,
	})
	if result.Err != nil {
		http.Error(w, result.Err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, MapToEntryResponse(result.Record))
}

func (h *DbEntryHandler) GetEntry(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	result := h.getService.Execute(service.GetEntryQuery{
		Key: key,
	})
	if result.Err != nil {
		http.Error(w, result.Err.Error(), http.StatusInternalServerError)
		return
	}
	if !result.Found {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, MapToEntryResponse(result.Record))
}

func (h *DbEntryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	result := h.deleteService.Execute(service.DeleteEntryCommand{
		Key: key,
	})
	if result.Err != nil {
		http.Error(w, result.Err.Error(), http.StatusInternalServerError)
		return
	}
	if !result.Found {
		http.Error(w, "Not found", http.StatusNotFound)
		return
	}
	writeJSON(w, MapToEntryResponse(*result.Record))
}

func (h *DbEntryHandler) ListKeys(w http.ResponseWriter, r *http.Request) {
	result := h.listService.Execute(service.ListKeysQuery{})
	if result.Err != nil {
		http.Error(w, result.Err.Error(), http.StatusInternalServerError)
		return
	}
	keys := result.Keys
	if keys == nil {
		keys = []string{}
	}
	writeJSON(w, keys)
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	output, _ := json.Marshal(body)
	w.Write(output)
}
