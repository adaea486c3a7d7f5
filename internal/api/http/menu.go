package httpapi

import (
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"restaurantes-api/internal/domain"
)

const maxUploadBytes = 32 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	restID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.Menu.Create(r.Context(), restID, &item)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	restID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	q := r.URL.Query()
	sortBy, desc := parseSort(r)
	filter := domain.MenuFilter{
		Tipo:   q.Get("tipo"),
		SortBy: sortBy,
		Desc:   desc,
		Page:   parsePage(r),
	}
	if min, err := strconv.Atoi(q.Get("precio_min")); err == nil {
		filter.PrecioMin = &min
	}
	if max, err := strconv.Atoi(q.Get("precio_max")); err == nil {
		filter.PrecioMax = &max
	}

	items, err := h.Menu.List(r.Context(), restID, filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// bulkCreateMenu takes a multipart form: an "items" field with the JSON
// array of articulos, and optional "imagen_<i>" file parts attached to the
// item at that position.
func (h *Handler) bulkCreateMenu(w http.ResponseWriter, r *http.Request) {
	restID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	var items []domain.MenuItem
	if err := json.Unmarshal([]byte(r.FormValue("items")), &items); err != nil {
		http.Error(w, "invalid items payload", http.StatusBadRequest)
		return
	}

	images := make(map[int]domain.Image)
	for i := range items {
		file, header, err := r.FormFile(fmt.Sprintf("imagen_%d", i))
		if err != nil {
			continue
		}
		image, err := readImagePart(file, header)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		images[i] = *image
	}

	ids, err := h.Menu.BulkCreate(r.Context(), restID, items, images)
	if err != nil {
		respondError(w, err)
		return
	}

	hexIDs := make([]string, 0, len(ids))
	for _, id := range ids {
		hexIDs = append(hexIDs, id.Hex())
	}
	respondJSON(w, http.StatusOK, map[string]interface{}{"ids": hexIDs})
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	item, err := h.Menu.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var patch domain.MenuItemPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Menu.Update(r.Context(), id, patch); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Articulo actualizado"})
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Menu.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadMenuItemImage(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("imagen")
	if err != nil {
		http.Error(w, "missing imagen file", http.StatusBadRequest)
		return
	}
	image, err := readImagePart(file, header)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imagenID, err := h.Menu.AttachImage(r.Context(), id, *image)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"imagen_id": imagenID.Hex()})
}

func readImagePart(file multipart.File, header *multipart.FileHeader) (*domain.Image, error) {
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !allowedImageTypes[strings.ToLower(contentType)] {
		return nil, fmt.Errorf("unsupported image type %q", contentType)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("reading image: %w", err)
	}
	return &domain.Image{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
