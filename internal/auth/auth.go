package auth

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/cesam-goiania/encontro-api/internal/config"
	"github.com/danielgtaylor/huma/v2"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	CookieName    = "auth_token"
	TokenDuration = 24 * time.Hour
)

// AuthInput is embedded by protected huma operations to receive the raw
// Cookie header.
type AuthInput struct {
	Cookie string `header:"Cookie"`
}

// AuthHandler authenticates the single admin identity configured via
// ADMIN_EMAIL / ADMIN_PASSWORD_HASH and issues JWT session cookies.
type AuthHandler struct {
	cfg *config.Config
}

func NewAuthHandler(cfg *config.Config) *AuthHandler {
	return &AuthHandler{cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// HandleLogin verifies the admin credentials and sets the session cookie.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if !h.checkCredentials(req.Email, req.Password) {
		http.Error(w, "Invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := h.GenerateToken(req.Email)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Expires:  time.Now().Add(TokenDuration),
		HttpOnly: true,
		Path:     "/",
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged in"})
}

// HandleLogout expires the session cookie.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Path:     "/",
	})
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
}

func (h *AuthHandler) checkCredentials(email, password string) bool {
	if h.cfg.AdminEmail == "" || h.cfg.AdminPasswordHash == "" {
		log.Printf("Admin credentials not configured; refusing login")
		return false
	}
	if email != h.cfg.AdminEmail {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(h.cfg.AdminPasswordHash), []byte(password)) == nil
}

func (h *AuthHandler) GenerateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"sub": email,
		"exp": time.Now().Add(TokenDuration).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

// Authorize validates the session token carried in a raw Cookie header.
// Protected huma operations call it with their embedded AuthInput.
func (h *AuthHandler) Authorize(cookieHeader string) error {
	tokenString := tokenFromCookieHeader(cookieHeader)
	if tokenString == "" {
		return huma.Error401Unauthorized("Unauthorized: no token found")
	}
	if _, err := h.parseToken(tokenString); err != nil {
		return huma.Error401Unauthorized("Unauthorized: invalid token")
	}
	return nil
}

type MeInput struct {
	AuthInput
}

type MeOutput struct {
	Body struct {
		Email string `json:"email"`
	}
}

// HandleMe reports the current session so the admin panel can decide
// whether to show the login screen.
func (h *AuthHandler) HandleMe(ctx context.Context, input *MeInput) (*MeOutput, error) {
	tokenString := tokenFromCookieHeader(input.Cookie)
	if tokenString == "" {
		return nil, huma.Error401Unauthorized("Unauthorized: no token found")
	}
	claims, err := h.parseToken(tokenString)
	if err != nil {
		return nil, huma.Error401Unauthorized("Unauthorized: invalid token")
	}

	res := &MeOutput{}
	res.Body.Email, _ = claims["sub"].(string)
	return res, nil
}

func (h *AuthHandler) parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(h.cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

func tokenFromCookieHeader(header string) string {
	for _, part := range strings.Split(header, ";") {
		part = strings.TrimSpace(part)
		if value, ok := strings.CutPrefix(part, CookieName+"="); ok {
			return value
		}
	}
	return ""
}
