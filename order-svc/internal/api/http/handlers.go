package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"cardapio/order-svc/internal/domain"
	"cardapio/order-svc/internal/service"

	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

type Handler struct {
	Catalog   service.CatalogServiceInterface
	Coupons   service.CouponServiceInterface
	Orders    service.OrderServiceInterface
	Analytics service.AnalyticsReader
}

func NewHandler(catalog service.CatalogServiceInterface, coupons service.CouponServiceInterface, orders service.OrderServiceInterface, analytics service.AnalyticsReader) *Handler {
	return &Handler{
		Catalog:   catalog,
		Coupons:   coupons,
		Orders:    orders,
		Analytics: analytics,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/menu/items", h.listMenuItems).Methods("GET")
	r.HandleFunc("/api/menu/items", h.createMenuItem).Methods("POST")
	r.HandleFunc("/api/menu/variations", h.listVariations).Methods("GET")
	r.HandleFunc("/api/menu/variations", h.createVariation).Methods("POST")
	r.HandleFunc("/api/menu/variation-groups", h.listVariationGroups).Methods("GET")
	r.HandleFunc("/api/menu/variation-groups", h.createVariationGroup).Methods("POST")

	r.HandleFunc("/api/cart/quote", h.quoteCart).Methods("POST")
	r.HandleFunc("/api/coupons/validate", h.validateCoupon).Methods("POST")
	r.HandleFunc("/api/coupons", h.listCoupons).Methods("GET")
	r.HandleFunc("/api/coupons", h.createCoupon).Methods("POST")

	r.HandleFunc("/api/orders", h.checkout).Methods("POST")
	r.HandleFunc("/api/orders", h.listOrders).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/next-statuses", h.nextStatuses).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.updateStatus).Methods("PATCH")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/analytics/daily", h.dailyAnalytics).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	respond(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "order-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Catalog.ListMenuItems(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var item domain.MenuItem
	if !decode(w, r, &item) {
		return
	}
	if err := h.Catalog.CreateMenuItem(r.Context(), &item); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, item)
}

func (h *Handler) listVariations(w http.ResponseWriter, r *http.Request) {
	variations, err := h.Catalog.ListVariations(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, variations)
}

func (h *Handler) createVariation(w http.ResponseWriter, r *http.Request) {
	var variation domain.Variation
	if !decode(w, r, &variation) {
		return
	}
	if err := h.Catalog.CreateVariation(r.Context(), &variation); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, variation)
}

func (h *Handler) listVariationGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Catalog.ListVariationGroups(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, groups)
}

func (h *Handler) createVariationGroup(w http.ResponseWriter, r *http.Request) {
	var group domain.VariationGroup
	if !decode(w, r, &group) {
		return
	}
	if err := h.Catalog.CreateVariationGroup(r.Context(), &group); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, group)
}

type quoteRequest struct {
	Items      []service.LineDraft `json:"items"`
	CouponCode string              `json:"coupon_code,omitempty"`
}

type quoteResponse struct {
	Items      []domain.OrderLineItem `json:"items"`
	Total      decimal.Decimal        `json:"total"`
	Discount   decimal.Decimal        `json:"discount"`
	FinalTotal decimal.Decimal        `json:"final_total"`
	CouponCode string                 `json:"coupon_code,omitempty"`
}

func (h *Handler) quoteCart(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !decode(w, r, &req) {
		return
	}
	quote, err := h.Catalog.Quote(r.Context(), req.Items)
	if err != nil {
		respondError(w, err)
		return
	}

	resp := quoteResponse{Items: quote.Items, Total: quote.Total, Discount: decimal.Zero, FinalTotal: quote.Total}
	if req.CouponCode != "" {
		applied, err := h.Coupons.Apply(r.Context(), req.CouponCode, quote.Total)
		if err != nil {
			respondError(w, err)
			return
		}
		resp.CouponCode = applied.Coupon.Code
		resp.Discount = applied.Discount
		resp.FinalTotal = applied.FinalTotal
	}
	respond(w, http.StatusOK, resp)
}

type couponCheckRequest struct {
	Code  string          `json:"code"`
	Total decimal.Decimal `json:"total"`
}

func (h *Handler) validateCoupon(w http.ResponseWriter, r *http.Request) {
	var req couponCheckRequest
	if !decode(w, r, &req) {
		return
	}
	applied, err := h.Coupons.Apply(r.Context(), req.Code, req.Total)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, applied)
}

func (h *Handler) listCoupons(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.Coupons.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, coupons)
}

func (h *Handler) createCoupon(w http.ResponseWriter, r *http.Request) {
	var coupon domain.Coupon
	if !decode(w, r, &coupon) {
		return
	}
	if err := h.Coupons.Create(r.Context(), &coupon); err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, coupon)
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	var req service.CheckoutRequest
	if !decode(w, r, &req) {
		return
	}
	order, err := h.Orders.Checkout(r.Context(), req)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusCreated, order)
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	if phone := query.Get("phone"); phone != "" {
		orders, err := h.Orders.ListByPhone(r.Context(), phone)
		if err != nil {
			respondError(w, err)
			return
		}
		respond(w, http.StatusOK, orders)
		return
	}

	from, err := parseDay(query.Get("from"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "from: " + err.Error()})
		return
	}
	to, err := parseDay(query.Get("to"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "to: " + err.Error()})
		return
	}
	orders, err := h.Orders.ListByDateRange(r.Context(), from, to.AddDate(0, 0, 1))
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, orders)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, order)
}

func (h *Handler) nextStatuses(w http.ResponseWriter, r *http.Request) {
	statuses, err := h.Orders.NextStatuses(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, map[string]interface{}{"next_statuses": statuses})
}

type statusRequest struct {
	Status domain.Status `json:"status"`
}

func (h *Handler) updateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if !decode(w, r, &req) {
		return
	}
	order, err := h.Orders.UpdateStatus(r.Context(), mux.Vars(r)["id"], req.Status)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, order)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.TrackingQRCode(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		respondError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) dailyAnalytics(w http.ResponseWriter, r *http.Request) {
	day := time.Now().UTC()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			respond(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
			return
		}
		day = parsed
	}
	summary, err := h.Analytics.DailySummary(r.Context(), day)
	if err != nil {
		respondError(w, err)
		return
	}
	respond(w, http.StatusOK, summary)
}

func parseDay(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, errors.New("is required (YYYY-MM-DD)")
	}
	return time.Parse("2006-01-02", raw)
}

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "Invalid JSON format: " + err.Error()})
		return false
	}
	return true
}

func respondError(w http.ResponseWriter, err error) {
	var validationErr *service.ValidationError
	var couponErr *service.CouponRejectedError
	switch {
	case errors.As(err, &validationErr):
		respond(w, http.StatusBadRequest, map[string]string{"error": validationErr.Error(), "field": validationErr.Field})
	case errors.As(err, &couponErr):
		respond(w, http.StatusUnprocessableEntity, map[string]string{"error": couponErr.Error(), "reason": string(couponErr.Reason)})
	case errors.Is(err, service.ErrOrderNotFound):
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidTransition):
		respond(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
