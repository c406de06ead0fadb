package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	log "github.com/sirupsen/logrus"

	"github.com/example/boutique-shop/internal/cart"
	"github.com/example/boutique-shop/internal/catalog"
	"github.com/example/boutique-shop/internal/checkout"
	"github.com/example/boutique-shop/internal/session"
	"github.com/example/boutique-shop/internal/whatsapp"
)

// Handlers serves the storefront routes. The catalog is the read-only
// product source; all mutable state lives on the request's session.
type Handlers struct {
	catalog        *catalog.Catalog
	nav            whatsapp.Navigator
	whatsappNumber string
}

func NewHandlers(c *catalog.Catalog, nav whatsapp.Navigator, whatsappNumber string) *Handlers {
	return &Handlers{
		catalog:        c,
		nav:            nav,
		whatsappNumber: whatsappNumber,
	}
}

// requestSession fetches the session placed on the context by the
// middleware. Failure here means a route was wired outside
// SessionMiddleware; surface it loudly instead of degrading.
func requestSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		log.WithError(err).WithField("path", r.URL.Path).Error("route wired without session middleware")
		respondError(w, http.StatusInternalServerError, "session unavailable")
		return nil, false
	}
	return sess, true
}

// Catalog handlers

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.Products()
	if slug := r.URL.Query().Get("category"); slug != "" {
		products = h.catalog.ProductsByCategory(slug)
	}
	if option := r.URL.Query().Get("sort"); option != "" {
		products = catalog.Sort(products, option)
	}
	respondJSON(w, http.StatusOK, products)
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, ok := h.catalog.ProductByID(chi.URLParam(r, "id"))
	if !ok {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}
	respondJSON(w, http.StatusOK, p)
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Categories())
}

func (h *Handlers) ListBestSellers(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.BestSellers())
}

func (h *Handlers) ListNewArrivals(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.NewArrivals())
}

// Cart handlers

type cartResponse struct {
	Items      []cart.Line `json:"items"`
	TotalItems int         `json:"total_items"`
	TotalPrice float64     `json:"total_price"`
}

func newCartResponse(s *cart.Store) cartResponse {
	return cartResponse{
		Items:      s.Lines(),
		TotalItems: s.TotalItems(),
		TotalPrice: s.TotalPrice(),
	}
}

func (h *Handlers) GetCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, newCartResponse(sess.Cart))
}

func (h *Handlers) AddToCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	p, found := h.catalog.ProductByID(req.ProductID)
	if !found {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	sess.Cart.AddItem(p, req.Quantity, req.Size, req.Color)
	respondJSON(w, http.StatusOK, newCartResponse(sess.Cart))
}

func (h *Handlers) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	sess.Cart.UpdateQuantity(chi.URLParam(r, "productID"), req.Quantity)
	respondJSON(w, http.StatusOK, newCartResponse(sess.Cart))
}

func (h *Handlers) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	sess.Cart.RemoveItem(chi.URLParam(r, "productID"))
	respondJSON(w, http.StatusOK, newCartResponse(sess.Cart))
}

func (h *Handlers) ClearCart(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	sess.Cart.Clear()
	respondJSON(w, http.StatusOK, newCartResponse(sess.Cart))
}

// Wishlist handlers

type wishlistResponse struct {
	Items []catalog.Product `json:"items"`
	Count int               `json:"count"`
}

func newWishlistResponse(s *session.Session) wishlistResponse {
	return wishlistResponse{
		Items: s.Wishlist.Products(),
		Count: s.Wishlist.Len(),
	}
}

func (h *Handlers) GetWishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}
	respondJSON(w, http.StatusOK, newWishlistResponse(sess))
}

func (h *Handlers) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	var req struct {
		ProductID string `json:"product_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	p, found := h.catalog.ProductByID(req.ProductID)
	if !found {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	sess.Wishlist.Add(p)
	respondJSON(w, http.StatusOK, newWishlistResponse(sess))
}

func (h *Handlers) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	sess.Wishlist.Remove(chi.URLParam(r, "productID"))
	respondJSON(w, http.StatusOK, newWishlistResponse(sess))
}

func (h *Handlers) ClearWishlist(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	sess.Wishlist.Clear()
	respondJSON(w, http.StatusOK, newWishlistResponse(sess))
}

// Checkout handlers

func (h *Handlers) BeginCheckout(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	if err := sess.Checkout.Begin(); err != nil {
		respondError(w, http.StatusConflict, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"state": string(sess.Checkout.State())})
}

func (h *Handlers) CancelCheckout(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	sess.Checkout.Cancel()
	respondJSON(w, http.StatusOK, map[string]string{"state": string(sess.Checkout.State())})
}

func (h *Handlers) ConfirmCheckout(w http.ResponseWriter, r *http.Request) {
	sess, ok := requestSession(w, r)
	if !ok {
		return
	}

	var req struct {
		Address string `json:"address"`
		Pincode string `json:"pincode"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	chatURL, err := sess.Checkout.Confirm(req.Address, req.Pincode)
	switch {
	case errors.Is(err, checkout.ErrMissingDetails):
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	case errors.Is(err, checkout.ErrNotAwaitingAddress), errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, err.Error())
		return
	case err != nil:
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"state":        string(sess.Checkout.State()),
		"whatsapp_url": chatURL,
	})
}

// Direct-order and chat handlers

// OrderProduct composes a single-product order without going through the
// cart, the storefront's "order now" path.
func (h *Handlers) OrderProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"product_id"`
		Quantity  int    `json:"quantity"`
		Size      string `json:"size"`
		Color     string `json:"color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	// Absent and nonsensical quantities both mean "one", never a
	// negative order line.
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	p, found := h.catalog.ProductByID(req.ProductID)
	if !found {
		respondError(w, http.StatusNotFound, "product not found")
		return
	}

	message := whatsapp.ProductOrderMessage(p.Name, p.Price, req.Quantity, req.Size, req.Color)
	chatURL := whatsapp.ChatURL(h.whatsappNumber, message)
	h.nav.OpenChat(chatURL)

	respondJSON(w, http.StatusOK, map[string]string{"whatsapp_url": chatURL})
}

func (h *Handlers) GeneralChat(w http.ResponseWriter, r *http.Request) {
	chatURL := whatsapp.ChatURL(h.whatsappNumber, whatsapp.GeneralInquiryMessage())
	respondJSON(w, http.StatusOK, map[string]string{"whatsapp_url": chatURL})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
