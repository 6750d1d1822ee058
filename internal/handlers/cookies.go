package handlers

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"
)

// CartCookieName is the single cookie holding the whole cart
const CartCookieName = "Cart"

// DefaultCartCookieTTL is the cart's lifetime; after expiry the cart is
// implicitly empty.
const DefaultCartCookieTTL = 7 * 24 * time.Hour

// readCartCookie decodes the cart cookie into dest. An absent or
// malformed cookie leaves dest untouched and reports false; it is never
// an error, the caller proceeds with an empty cart. Decoding goes
// through a scratch value so a cookie that fails mid-decode cannot
// leave partial data in dest.
func readCartCookie[T any](r *http.Request, dest *T) bool {
	cookie, err := r.Cookie(CartCookieName)
	if err != nil {
		return false
	}

	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return false
	}

	var decoded T
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return false
	}

	*dest = decoded
	return true
}

// writeCartCookie serializes the cart wholesale into the cookie.
// Every mutating operation rewrites the entire cookie.
func writeCartCookie(w http.ResponseWriter, cart interface{}, ttl time.Duration) {
	raw, err := json.Marshal(cart)
	if err != nil {
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CartCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
