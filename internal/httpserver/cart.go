package httpserver

import (
	"net/http"
	"strings"
	"sync"

	"savage-storefront/internal/cart"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// sessionStore holds one cart per browsing session, in memory only. Carts
// vanish on restart and are dropped after a successful checkout, so nothing
// is ever persisted.
type sessionStore struct {
	mu    sync.Mutex
	carts map[string]cart.Cart
}

func newSessionStore() *sessionStore {
	return &sessionStore{carts: make(map[string]cart.Cart)}
}

func (s *sessionStore) get(id string) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.carts[id]
}

// update applies fn to the session's cart under the lock and returns the
// new value.
func (s *sessionStore) update(id string, fn func(cart.Cart) cart.Cart) cart.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := fn(s.carts[id])
	s.carts[id] = next
	return next
}

func (s *sessionStore) drop(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
}

// sessionID returns the request's cart session, minting a cookie for new
// sessions.
func sessionID(c *gin.Context) string {
	if id, err := c.Cookie(sessionCookie); err == nil && id != "" {
		return id
	}
	id := uuid.NewString()
	c.SetCookie(sessionCookie, id, 0, "/", "", false, true)
	return id
}

type cartResponse struct {
	Items     []cart.Item `json:"items"`
	ItemCount int         `json:"itemCount"`
	Total     int64       `json:"total"`
}

func toCartResponse(c cart.Cart) cartResponse {
	return cartResponse{
		Items:     c.Items(),
		ItemCount: c.ItemCount(),
		Total:     c.Total(),
	}
}

func getCartHandler(sessions *sessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, toCartResponse(sessions.get(sessionID(c))))
	}
}

type addCartItemRequest struct {
	ProductID   string `json:"productId"`
	ProductName string `json:"productName"`
	Price       int64  `json:"price"`
	Size        string `json:"size"`
	Color       string `json:"color"`
	ImageURL    string `json:"imageUrl"`
}

func addCartItemHandler(sessions *sessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if strings.TrimSpace(req.ProductID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}
		// Variant selection is mandatory before anything reaches the cart.
		if strings.TrimSpace(req.Size) == "" || strings.TrimSpace(req.Color) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Please select size and color"})
			return
		}

		updated := sessions.update(sessionID(c), func(current cart.Cart) cart.Cart {
			return current.Add(cart.Item{
				ProductID:   req.ProductID,
				ProductName: req.ProductName,
				Price:       req.Price,
				Size:        req.Size,
				Color:       req.Color,
				ImageURL:    req.ImageURL,
			})
		})
		c.JSON(http.StatusOK, toCartResponse(updated))
	}
}

type updateCartItemRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

func updateCartItemHandler(sessions *sessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}
		if strings.TrimSpace(req.ProductID) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "productId required"})
			return
		}

		updated := sessions.update(sessionID(c), func(current cart.Cart) cart.Cart {
			return current.SetQuantity(req.ProductID, req.Size, req.Color, req.Quantity)
		})
		c.JSON(http.StatusOK, toCartResponse(updated))
	}
}

func clearCartHandler(sessions *sessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		updated := sessions.update(sessionID(c), func(current cart.Cart) cart.Cart {
			return current.Clear()
		})
		c.JSON(http.StatusOK, toCartResponse(updated))
	}
}
