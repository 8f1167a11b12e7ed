// Package httpapi exposes the REST API over the application services.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"

	app "github.com/luizcurti/go-monolith/internal/app"
	"github.com/luizcurti/go-monolith/internal/app/domain"
	"github.com/luizcurti/go-monolith/internal/app/domain/payment"
	"github.com/luizcurti/go-monolith/internal/app/metrics"
	"github.com/luizcurti/go-monolith/internal/app/services/clients"
	"github.com/luizcurti/go-monolith/internal/app/services/products"
	"github.com/luizcurti/go-monolith/internal/app/storage"
	"github.com/luizcurti/go-monolith/internal/app/validation"
	"github.com/luizcurti/go-monolith/pkg/logger"
)

var clientSchema = validation.Schema{
	"id":      {Type: validation.String},
	"name":    {Type: validation.String, Required: true},
	"email":   {Type: validation.String, Required: true, Email: true},
	"address": {Type: validation.String, Required: true},
}

var productSchema = validation.Schema{
	"id":            {Type: validation.String},
	"name":          {Type: validation.String, Required: true},
	"description":   {Type: validation.String, Required: true},
	"purchasePrice": {Type: validation.Number, Required: true, Positive: true},
	"salesPrice":    {Type: validation.Number, NonNegative: true},
	"stock":         {Type: validation.Number, Required: true, Integer: true, NonNegative: true},
}

var paymentSchema = validation.Schema{
	"orderId": {Type: validation.String, Required: true},
	"amount":  {Type: validation.Number, Required: true, Positive: true},
}

type handler struct {
	app     *app.Application
	log     *logger.Logger
	started time.Time
}

// NewHandler returns a router exposing the REST API.
func NewHandler(application *app.Application, log *logger.Logger) http.Handler {
	if log == nil {
		log = logger.NewDefault("httpapi")
	}
	h := &handler{app: application, log: log, started: time.Now().UTC()}

	r := mux.NewRouter()
	r.HandleFunc("/clients", h.addClient).Methods(http.MethodPost)
	r.HandleFunc("/clients/{id}", h.getClient).Methods(http.MethodGet)
	r.HandleFunc("/products", h.addProduct).Methods(http.MethodPost)
	r.HandleFunc("/products/{id}/stock", h.checkStock).Methods(http.MethodGet)
	r.HandleFunc("/catalog/products", h.listCatalog).Methods(http.MethodGet)
	r.HandleFunc("/catalog/products/{id}", h.getCatalogProduct).Methods(http.MethodGet)
	r.HandleFunc("/payments", h.processPayment).Methods(http.MethodPost)
	r.HandleFunc("/healthz", h.health).Methods(http.MethodGet)
	r.Handle("/metrics", metrics.Handler()).Methods(http.MethodGet)
	return r
}

// Response projections. The catalog never exposes the purchase price and
// the stock check never exposes the sales price.

type clientResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type stockResponse struct {
	ProductID string `json:"productId"`
	Stock     int    `json:"stock"`
}

type catalogItemResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	SalesPrice  float64 `json:"salesPrice"`
}

type transactionResponse struct {
	TransactionID string    `json:"transactionId"`
	OrderID       string    `json:"orderId"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (h *handler) addClient(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeAndValidate(w, r, clientSchema)
	if !ok {
		return
	}

	_, err := h.app.Clients.Add(r.Context(), clients.AddInput{
		ID:      validation.StringValue(payload, "id"),
		Name:    validation.StringValue(payload, "name"),
		Email:   validation.StringValue(payload, "email"),
		Address: validation.StringValue(payload, "address"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "client created"})
}

func (h *handler) getClient(w http.ResponseWriter, r *http.Request) {
	c, err := h.app.Clients.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, clientResponse{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	})
}

func (h *handler) addProduct(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeAndValidate(w, r, productSchema)
	if !ok {
		return
	}

	_, err := h.app.Products.Add(r.Context(), products.AddInput{
		ID:            validation.StringValue(payload, "id"),
		Name:          validation.StringValue(payload, "name"),
		Description:   validation.StringValue(payload, "description"),
		PurchasePrice: validation.NumberValue(payload, "purchasePrice"),
		SalesPrice:    validation.NumberValue(payload, "salesPrice"),
		Stock:         validation.IntValue(payload, "stock"),
	})
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"message": "product created"})
}

func (h *handler) checkStock(w http.ResponseWriter, r *http.Request) {
	level, err := h.app.Products.CheckStock(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stockResponse{ProductID: level.ProductID, Stock: level.Stock})
}

func (h *handler) listCatalog(w http.ResponseWriter, r *http.Request) {
	items, err := h.app.Catalog.List(r.Context())
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	out := make([]catalogItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, catalogItemResponse{
			ID:          item.ID,
			Name:        item.Name,
			Description: item.Description,
			SalesPrice:  item.SalesPrice,
		})
	}
	writeJSON(w, http.StatusOK, map[string][]catalogItemResponse{"products": out})
}

func (h *handler) getCatalogProduct(w http.ResponseWriter, r *http.Request) {
	item, err := h.app.Catalog.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, catalogItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		SalesPrice:  item.SalesPrice,
	})
}

func (h *handler) processPayment(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.decodeAndValidate(w, r, paymentSchema)
	if !ok {
		return
	}

	tx, err := h.app.Payments.Process(r.Context(),
		validation.StringValue(payload, "orderId"),
		validation.NumberValue(payload, "amount"))
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	status := http.StatusOK
	if tx.Status == payment.StatusDeclined {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, transactionResponse{
		TransactionID: tx.ID,
		OrderID:       tx.OrderID,
		Amount:        tx.Amount,
		Status:        string(tx.Status),
		CreatedAt:     tx.CreatedAt,
		UpdatedAt:     tx.UpdatedAt,
	})
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"uptime": time.Since(h.started).Round(time.Second).String(),
	})
}

// decodeAndValidate runs the validation stage. On any violation the request
// is rejected before a service is invoked; all violations are reported in
// one response.
func (h *handler) decodeAndValidate(w http.ResponseWriter, r *http.Request, schema validation.Schema) (map[string]any, bool) {
	raw := map[string]any{}
	if err := decodeJSON(r.Body, &raw); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body"))
		return nil, false
	}

	normalized, violations := schema.Validate(raw)
	if len(violations) > 0 {
		writeError(w, http.StatusBadRequest, errors.New(strings.Join(violations, "; ")))
		return nil, false
	}
	return normalized, true
}

// writeServiceError maps service failures onto status codes by error kind.
// Unrecognized failures are masked behind a generic message and logged with
// the original error server-side.
func (h *handler) writeServiceError(w http.ResponseWriter, err error) {
	var invalid domain.InvalidError
	switch {
	case errors.Is(err, storage.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case errors.Is(err, storage.ErrDuplicateEmail):
		writeError(w, http.StatusConflict, err)
	case errors.As(err, &invalid):
		writeError(w, http.StatusBadRequest, err)
	default:
		h.log.WithError(err).Error("request failed")
		writeError(w, http.StatusInternalServerError, errors.New("internal server error"))
	}
}

func decodeJSON(body io.ReadCloser, dst any) error {
	defer body.Close()
	return json.NewDecoder(body).Decode(dst)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
