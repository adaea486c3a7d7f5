package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"restaurantes-api/internal/domain"
	"restaurantes-api/internal/mongodoc"
)

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.Reviews.Create(r.Context(), &review)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"mensaje": "Reseña agregada",
		"id":      id.Hex(),
	})
}

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ReviewFilter{Page: parsePage(r)}

	if raw := q.Get("usuario_id"); raw != "" {
		id, err := mongodoc.ParseID(raw)
		if err != nil {
			respondError(w, err)
			return
		}
		filter.UsuarioID = &id
	}
	if raw := q.Get("restaurante_id"); raw != "" {
		id, err := mongodoc.ParseID(raw)
		if err != nil {
			respondError(w, err)
			return
		}
		filter.RestauranteID = &id
	}
	if raw := q.Get("puntaje"); raw != "" {
		score, err := strconv.Atoi(raw)
		if err != nil {
			http.Error(w, "invalid puntaje", http.StatusBadRequest)
			return
		}
		filter.Puntaje = &score
	}

	reviews, err := h.Reviews.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, reviews)
}

func (h *Handler) getReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	review, err := h.Reviews.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, review)
}

func (h *Handler) updateReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var patch domain.ReviewPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Reviews.Update(r.Context(), id, patch); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Reseña actualizada"})
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Reviews.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
