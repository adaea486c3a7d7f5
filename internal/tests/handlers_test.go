package tests

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	httpapi "restaurantes-api/internal/api/http"
	"restaurantes-api/internal/domain"
	"restaurantes-api/internal/mocks"
	"restaurantes-api/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupTestRouter(handler *httpapi.Handler) *mux.Router {
	r := mux.NewRouter()
	handler.RegisterRoutes(r)
	return r
}

func TestHandler_createOrder(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Orders: mockSvc})

	userID := primitive.NewObjectID().Hex()
	restID := primitive.NewObjectID().Hex()
	articuloID := primitive.NewObjectID().Hex()

	tests := []struct {
		name         string
		payload      string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "success",
			payload: fmt.Sprintf(`{"usuario_id":%q,"restaurante_id":%q,"pedido":[{"articulo_id":%q,"cantidad":2,"precio":50}]}`,
				userID, restID, articuloID),
			prepareMocks: func() {
				mockSvc.On("Create", mock.Anything, mock.Anything).
					Return(primitive.NewObjectID(), nil).Once()
			},
			expectedCode: http.StatusCreated,
			expectedBody: "Orden creada exitosamente",
		},
		{
			name:         "invalid_json",
			payload:      `bad json`,
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "unknown_status",
			payload: fmt.Sprintf(`{"usuario_id":%q,"restaurante_id":%q,"estado":"Shipped","pedido":[{"articulo_id":%q,"cantidad":1,"precio":50}]}`,
				userID, restID, articuloID),
			prepareMocks: func() {
				mockSvc.On("Create", mock.Anything, mock.Anything).
					Return(primitive.NilObjectID, domain.ErrInvalidStatus).Once()
			},
			expectedCode: http.StatusBadRequest,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("POST", "/ordenes", bytes.NewBufferString(testCase.payload))
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			if testCase.expectedBody != "" {
				assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
			}
		})
	}
}

func TestHandler_getRestaurant(t *testing.T) {
	mockSvc := mocks.NewRestaurantServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Restaurants: mockSvc})

	restID := primitive.NewObjectID()

	tests := []struct {
		name         string
		path         string
		prepareMocks func()
		expectedCode int
	}{
		{
			name: "success",
			path: "/restaurantes/" + restID.Hex(),
			prepareMocks: func() {
				mockSvc.On("Get", mock.Anything, restID).
					Return(&domain.Restaurant{ID: restID, Nombre: "La Taquería"}, nil).Once()
			},
			expectedCode: http.StatusOK,
		},
		{
			name:         "invalid_id",
			path:         "/restaurantes/not-an-id",
			prepareMocks: func() {},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "not_found",
			path: "/restaurantes/" + primitive.NewObjectID().Hex(),
			prepareMocks: func() {
				mockSvc.On("Get", mock.Anything, mock.Anything).
					Return(nil, service.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			req := httptest.NewRequest("GET", testCase.path, nil)
			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, req)
			assert.Equal(t, testCase.expectedCode, recorder.Code)
		})
	}
}

func TestHandler_topRatedRouteWinsOverID(t *testing.T) {
	ranking := mocks.NewRankingServiceInterface(t)
	restaurants := mocks.NewRestaurantServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Restaurants: restaurants, Ranking: ranking})

	ranking.On("TopRated", mock.Anything, 3).Return([]domain.RestaurantSummary{
		{Nombre: "La Taquería", Promedio: 4.67, Resenas: 3},
	}, nil).Once()

	req := httptest.NewRequest("GET", "/restaurantes/mejor_calificados?limite=3", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)

	var summaries []domain.RestaurantSummary
	json.NewDecoder(recorder.Body).Decode(&summaries)
	assert.Len(t, summaries, 1)
	assert.Equal(t, 4.67, summaries[0].Promedio)
}

func TestHandler_bulkChangeOrderStatus(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Orders: mockSvc})

	restID := primitive.NewObjectID()

	mockSvc.On("BulkTransition", mock.Anything, restID, "Pending", "Preparing").
		Return(int64(3), nil).Once()

	payload := fmt.Sprintf(`{"restaurante_id":%q,"de":"Pending","a":"Preparing"}`, restID.Hex())
	req := httptest.NewRequest("PUT", "/ordenes/cambiar_estado", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"modificados":3`)
}

func TestHandler_bulkDeleteOrders(t *testing.T) {
	mockSvc := mocks.NewOrderServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Orders: mockSvc})

	first := primitive.NewObjectID()
	second := primitive.NewObjectID()

	mockSvc.On("DeleteMany", mock.Anything, []primitive.ObjectID{first, second}).
		Return(int64(2), nil).Once()

	payload := fmt.Sprintf(`{"ids":[%q,%q]}`, first.Hex(), second.Hex())
	req := httptest.NewRequest("DELETE", "/ordenes", bytes.NewBufferString(payload))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"eliminadas":2`)
}

func TestHandler_deleteUser(t *testing.T) {
	mockSvc := mocks.NewUserServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Users: mockSvc})

	userID := primitive.NewObjectID()

	mockSvc.On("Delete", mock.Anything, userID).Return(nil).Once()

	req := httptest.NewRequest("DELETE", "/usuarios/"+userID.Hex(), nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_createReview_DuplicateSpellingRoutes(t *testing.T) {
	mockSvc := mocks.NewReviewServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Reviews: mockSvc})

	userID := primitive.NewObjectID().Hex()
	restID := primitive.NewObjectID().Hex()

	for _, base := range []string{"/reseñas", "/resenas"} {
		mockSvc.On("Create", mock.Anything, mock.Anything).
			Return(primitive.NewObjectID(), nil).Once()

		payload := fmt.Sprintf(`{"usuario_id":%q,"restaurante_id":%q,"puntaje":5}`, userID, restID)
		req := httptest.NewRequest("POST", base, bytes.NewBufferString(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusCreated, recorder.Code)
	}
}

func TestHandler_getImage(t *testing.T) {
	mockSvc := mocks.NewImageServiceInterface(t)
	router := setupTestRouter(&httpapi.Handler{Images: mockSvc})

	imagenID := primitive.NewObjectID()

	mockSvc.On("Get", mock.Anything, imagenID).Return(&domain.Image{
		Filename:    "tacos.png",
		ContentType: "image/png",
		Data:        []byte("png-bytes"),
	}, nil).Once()

	req := httptest.NewRequest("GET", "/imagenes/"+imagenID.Hex(), nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.Equal(t, "png-bytes", recorder.Body.String())
}
