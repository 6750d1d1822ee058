package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"commerce-gateway/internal/models"
)

// encodeCartCookie builds the cookie a client would send back
func encodeCartCookie(t *testing.T, cart interface{}) *http.Cookie {
	t.Helper()
	raw, err := json.Marshal(cart)
	require.NoError(t, err)

	return &http.Cookie{
		Name:  CartCookieName,
		Value: base64.RawURLEncoding.EncodeToString(raw),
	}
}

func TestWriteCartCookie_Attributes(t *testing.T) {
	rec := httptest.NewRecorder()

	writeCartCookie(rec, &models.Cart{}, DefaultCartCookieTTL)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)

	cookie := cookies[0]
	assert.Equal(t, "Cart", cookie.Name)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), cookie.MaxAge)
	assert.True(t, cookie.HttpOnly)
	assert.True(t, cookie.Secure)
	assert.Equal(t, http.SameSiteStrictMode, cookie.SameSite)
}

func TestCartCookie_RoundTrip(t *testing.T) {
	original := &models.Cart{Lines: []models.CartLine{
		{ProductID: 42, VariantID: 1001, Title: "Blue Hoodie", UnitPrice: 9.99, Quantity: 2},
	}}

	rec := httptest.NewRecorder()
	writeCartCookie(rec, original, DefaultCartCookieTTL)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(rec.Result().Cookies()[0])

	decoded := &models.Cart{}
	ok := readCartCookie(req, decoded)

	assert.True(t, ok)
	assert.Equal(t, original, decoded)
}

func TestReadCartCookie_Tolerance(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{"absent cookie", nil},
		{"invalid base64", &http.Cookie{Name: CartCookieName, Value: "!!not-base64!!"}},
		{
			"invalid json",
			&http.Cookie{Name: CartCookieName, Value: base64.RawURLEncoding.EncodeToString([]byte("not json"))},
		},
		{
			"wrong-typed field",
			&http.Cookie{Name: CartCookieName, Value: base64.RawURLEncoding.EncodeToString(
				[]byte(`{"lines":[{"product_id":42,"variant_id":1001,"quantity":"oops"}]}`))},
		},
		{
			"wrong-shaped document",
			&http.Cookie{Name: CartCookieName, Value: base64.RawURLEncoding.EncodeToString([]byte(`[1,2,3]`))},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/cart", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			cart := &models.Cart{}
			ok := readCartCookie(req, cart)

			assert.False(t, ok)
			assert.Empty(t, cart.Lines, "a bad cookie must decay to an empty cart")
		})
	}
}

func TestReadCartCookie_LocalCartVariant(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	req.AddCookie(encodeCartCookie(t, models.LocalCart{42: 3}))

	cart := models.LocalCart{}
	ok := readCartCookie(req, &cart)

	assert.True(t, ok)
	assert.Equal(t, 3, cart[42])
}
