package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"restaurantes-api/internal/domain"
	"restaurantes-api/internal/mongodoc"
	"restaurantes-api/internal/service"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Handler struct {
	Restaurants service.RestaurantServiceInterface
	Users       service.UserServiceInterface
	Menu        service.MenuServiceInterface
	Orders      service.OrderServiceInterface
	Reviews     service.ReviewServiceInterface
	Ranking     service.RankingServiceInterface
	Images      service.ImageServiceInterface
}

func NewHandler(
	restaurants service.RestaurantServiceInterface,
	users service.UserServiceInterface,
	menu service.MenuServiceInterface,
	orders service.OrderServiceInterface,
	reviews service.ReviewServiceInterface,
	ranking service.RankingServiceInterface,
	images service.ImageServiceInterface,
) *Handler {
	return &Handler{
		Restaurants: restaurants,
		Users:       users,
		Menu:        menu,
		Orders:      orders,
		Reviews:     reviews,
		Ranking:     ranking,
		Images:      images,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// mejor_calificados has to go before the {id} routes.
	r.HandleFunc("/restaurantes/mejor_calificados", h.topRatedRestaurants).Methods("GET")
	r.HandleFunc("/restaurantes", h.createRestaurant).Methods("POST")
	r.HandleFunc("/restaurantes", h.listRestaurants).Methods("GET")
	r.HandleFunc("/restaurantes/{id}", h.getRestaurant).Methods("GET")
	r.HandleFunc("/restaurantes/{id}", h.updateRestaurant).Methods("PUT")
	r.HandleFunc("/restaurantes/{id}", h.deleteRestaurant).Methods("DELETE")

	r.HandleFunc("/restaurantes/{id}/menu", h.createMenuItem).Methods("POST")
	r.HandleFunc("/restaurantes/{id}/menu", h.listMenu).Methods("GET")
	r.HandleFunc("/restaurantes/{id}/menu/lote", h.bulkCreateMenu).Methods("POST")

	r.HandleFunc("/usuarios", h.createUser).Methods("POST")
	r.HandleFunc("/usuarios", h.listUsers).Methods("GET")
	r.HandleFunc("/usuarios/{id}", h.getUser).Methods("GET")
	r.HandleFunc("/usuarios/{id}", h.updateUser).Methods("PUT")
	r.HandleFunc("/usuarios/{id}", h.deleteUser).Methods("DELETE")
	r.HandleFunc("/usuarios/{id}/favorito/{restId}", h.addFavorite).Methods("POST")
	r.HandleFunc("/usuarios/{id}/favorito/{restId}", h.removeFavorite).Methods("DELETE")
	r.HandleFunc("/usuarios/{id}/favoritos", h.listFavorites).Methods("GET")
	r.HandleFunc("/usuarios/{id}/ordenes", h.userOrders).Methods("GET")

	r.HandleFunc("/articulos/{id}", h.getMenuItem).Methods("GET")
	r.HandleFunc("/articulos/{id}", h.updateMenuItem).Methods("PUT")
	r.HandleFunc("/articulos/{id}", h.deleteMenuItem).Methods("DELETE")
	r.HandleFunc("/articulos/{id}/imagen", h.uploadMenuItemImage).Methods("POST", "PUT")
	r.HandleFunc("/imagenes/{id}", h.getImage).Methods("GET")
	r.HandleFunc("/imagenes/{id}", h.deleteImage).Methods("DELETE")

	// cambiar_estado has to go before the {id} routes.
	r.HandleFunc("/ordenes/cambiar_estado", h.bulkChangeOrderStatus).Methods("PUT")
	r.HandleFunc("/ordenes", h.createOrder).Methods("POST")
	r.HandleFunc("/ordenes", h.listOrders).Methods("GET")
	r.HandleFunc("/ordenes", h.bulkDeleteOrders).Methods("DELETE")
	r.HandleFunc("/ordenes/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/ordenes/{id}", h.updateOrder).Methods("PUT")
	r.HandleFunc("/ordenes/{id}", h.deleteOrder).Methods("DELETE")
	r.HandleFunc("/ordenes/{id}/qr", h.orderQRCode).Methods("GET")

	// Both spellings are accepted for the reviews collection.
	for _, base := range []string{"/reseñas", "/resenas"} {
		r.HandleFunc(base, h.createReview).Methods("POST")
		r.HandleFunc(base, h.listReviews).Methods("GET")
		r.HandleFunc(base+"/{id}", h.getReview).Methods("GET")
		r.HandleFunc(base+"/{id}", h.updateReview).Methods("PUT")
		r.HandleFunc(base+"/{id}", h.deleteReview).Methods("DELETE")
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "restaurantes-api",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func respondJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, mongodoc.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, service.ErrDuplicateEmail),
		errors.Is(err, service.ErrInvalidScore),
		errors.Is(err, service.ErrInvalidOrder),
		errors.Is(err, service.ErrInvalidQuantity),
		errors.Is(err, service.ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func pathID(r *http.Request, name string) (primitive.ObjectID, error) {
	return mongodoc.ParseID(mux.Vars(r)[name])
}

func parsePage(r *http.Request) domain.Page {
	var page domain.Page
	if limit, err := strconv.ParseInt(r.URL.Query().Get("limite"), 10, 64); err == nil && limit > 0 {
		page.Limit = limit
	}
	if skip, err := strconv.ParseInt(r.URL.Query().Get("skip"), 10, 64); err == nil && skip > 0 {
		page.Skip = skip
	}
	return page
}

func parseSort(r *http.Request) (string, bool) {
	return r.URL.Query().Get("sort_por"), r.URL.Query().Get("orden") == "desc"
}

func parseDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
