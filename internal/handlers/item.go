package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"

	"wizapp/internal/service"

	"go.uber.org/zap"
)

// ItemHandler обслуживает чтение и создание Item.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger}
}

// CreateItemRequest — тело POST /items. Остальные поля клиента игнорируются.
type CreateItemRequest struct {
	Name json.RawMessage `json:"name"`
}

// List отдаёт все записи коллекции.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("List: service error", "error", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Create сохраняет новую запись.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateItemRequest
	// тело читается только как application/json; иначе и при пустом теле имени просто нет
	if isJSON(r.Header.Get("Content-Type")) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			h.Logger.Warnw("Create: invalid request body", "error", err)
			writeError(w, http.StatusBadRequest, err)
			return
		}
	}

	name, err := coerceName(req.Name)
	if err != nil {
		h.Logger.Warnw("Create: name cast failed", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	it, err := h.ItemService.Create(r.Context(), name)
	if err != nil {
		h.Logger.Warnw("Create: service error", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func isJSON(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	return err == nil && mt == "application/json"
}

// coerceName приводит значение name к строке: числа и bool в их текстовую форму,
// null и отсутствующее поле в nil. Объекты и массивы к строке не приводятся.
func coerceName(raw json.RawMessage) (*string, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, nil
	}

	var s string
	switch raw[0] {
	case '"':
		if err := json.Unmarshal(raw, &s); err != nil {
			return nil, err
		}
	case 't', 'f':
		b, err := strconv.ParseBool(string(raw))
		if err != nil {
			return nil, err
		}
		s = strconv.FormatBool(b)
	case '{', '[':
		return nil, fmt.Errorf("cast to string failed for value %s at path \"name\"", raw)
	default:
		f, err := strconv.ParseFloat(string(raw), 64)
		if err != nil {
			return nil, fmt.Errorf("cast to string failed for value %s at path \"name\"", raw)
		}
		s = strconv.FormatFloat(f, 'f', -1, 64)
	}
	return &s, nil
}
