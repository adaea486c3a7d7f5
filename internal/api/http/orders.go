package httpapi

import (
	"encoding/json"
	"net/http"

	"restaurantes-api/internal/domain"
	"restaurantes-api/internal/mongodoc"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.Orders.Create(r.Context(), &order)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{
		"mensaje": "Orden creada exitosamente",
		"id":      id.Hex(),
	})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.OrderFilter{
		Estado: q.Get("estado"),
		Page:   parsePage(r),
	}

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

	desde, err := parseDate(q.Get("desde"))
	if err != nil {
		http.Error(w, "invalid desde date", http.StatusBadRequest)
		return
	}
	filter.Desde = desde
	hasta, err := parseDate(q.Get("hasta"))
	if err != nil {
		http.Error(w, "invalid hasta date", http.StatusBadRequest)
		return
	}
	filter.Hasta = hasta

	orders, err := h.Orders.List(r.Context(), filter)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	order, err := h.Orders.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	var patch domain.OrderPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Orders.Update(r.Context(), id, patch); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"mensaje": "Orden actualizada"})
}

func (h *Handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.Orders.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) bulkDeleteOrders(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		IDs []string `json:"ids"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ids := make([]primitive.ObjectID, 0, len(payload.IDs))
	for _, raw := range payload.IDs {
		id, err := mongodoc.ParseID(raw)
		if err != nil {
			respondError(w, err)
			return
		}
		ids = append(ids, id)
	}

	deleted, err := h.Orders.DeleteMany(r.Context(), ids)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"eliminadas": deleted})
}

func (h *Handler) bulkChangeOrderStatus(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RestauranteID string `json:"restaurante_id"`
		De            string `json:"de"`
		A             string `json:"a"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	restID, err := mongodoc.ParseID(payload.RestauranteID)
	if err != nil {
		respondError(w, err)
		return
	}

	modified, err := h.Orders.BulkTransition(r.Context(), restID, payload.De, payload.A)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]int64{"modificados": modified})
}

func (h *Handler) orderQRCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	png, err := h.Orders.QRCode(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}
