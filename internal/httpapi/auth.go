package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// authService issues and verifies the HMAC bearer tokens guarding the
// admin review routes.
type authService struct {
	hmac []byte
	user string
	pass string
}

func newAuthService(secret, user, pass string) *authService {
	return &authService{hmac: []byte(secret), user: user, pass: pass}
}

type claims struct {
	Sub  string `json:"sub"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func (a *authService) issueJWT(sub string) (string, error) {
	now := time.Now()
	c := &claims{
		Sub:  sub,
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "factory-architect",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(8 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, c)
	return t.SignedString(a.hmac)
}

func (a *authService) parse(tokenStr string) (*claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return a.hmac, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, err
	}
	c, ok := token.Claims.(*claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	return c, nil
}

// loginHandler exchanges admin credentials for a bearer token.
func (a *authService) loginHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	if req.Username != a.user || req.Password != a.pass {
		http.Error(w, "invalid credentials", http.StatusUnauthorized)
		return
	}
	tok, err := a.issueJWT(req.Username)
	if err != nil {
		http.Error(w, "issue token", http.StatusInternalServerError)
		return
	}
	_ = json.NewEncoder(w).Encode(map[string]string{"access_token": tok})
}

// jwtMiddleware rejects requests without a valid bearer token.
func (a *authService) jwtMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "missing bearer", http.StatusUnauthorized)
			return
		}
		if _, err := a.parse(strings.TrimPrefix(h, "Bearer ")); err != nil {
			http.Error(w, "bad token", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}
