package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"restaurantes-api/internal/domain"
)

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var rest domain.Restaurant
	if err := json.NewDecoder(r.Body).Decode(&rest); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.Restaurants.Create(r.Context(), &rest)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	sortBy, desc := parseSort(r)
	filter := domain.RestaurantFilter{
		Search:     q.Get("search"),
		TipoComida: q.Get("tipo_comida"),
		SortBy:     sortBy,
		Desc:       desc,
		Page:       parsePage(r),
	}

	restaurants, err := h.Restaurants.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, restaurants)
}

func (h *Handler) topRatedRestaurants(w http.ResponseWriter, r *http.Request) {
	n, _ := strconv.Atoi(r.URL.Query().Get("limite"))

	summaries, err := h.Ranking.TopRated(r.Context(), n)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, summaries)
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	rest, err := h.Restaurants.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, rest)
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var patch domain.RestaurantPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Restaurants.Update(r.Context(), id, patch); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Restaurante actualizado"})
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Restaurants.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
