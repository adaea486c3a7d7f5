package httpapi

import (
	"encoding/json"
	"net/http"

	"restaurantes-api/internal/domain"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user domain.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.Users.Create(r.Context(), &user)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	sortBy, desc := parseSort(r)
	filter := domain.UserFilter{
		Search: r.URL.Query().Get("search"),
		SortBy: sortBy,
		Desc:   desc,
		Page:   parsePage(r),
	}

	users, err := h.Users.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, users)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	user, err := h.Users.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var patch domain.UserPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Users.Update(r.Context(), id, patch); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Usuario actualizado"})
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Users.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	restID, err := pathID(r, "restId")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Users.AddFavorite(r.Context(), userID, restID); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"mensaje": "Favorito agregado"})
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}
	restID, err := pathID(r, "restId")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Users.RemoveFavorite(r.Context(), userID, restID); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	favorites, err := h.Users.ListFavorites(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, favorites)
}

func (h *Handler) userOrders(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	orders, err := h.Users.Orders(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}
