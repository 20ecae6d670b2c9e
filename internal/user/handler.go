package user

import (
	"encoding/json"
	"errors"
	"net/http"
	"os"

	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/auth"
	"github.com/Sachidanand-dev/ai-powered-lms-edu-ai/internal/config"
)

type Handler struct {
	service UserService
}

func NewHandler(s UserService) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	email, err := h.service.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserExists):
			http.Error(w, "user already exists", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidInput):
			http.Error(w, "invalid user data", http.StatusBadRequest)
		default:
			log.WithError(err).Error("registration failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	config.JSON(w, http.StatusCreated, map[string]string{
		"message": "Registration successful. Please verify your email.",
		"email":   email,
	})
}

func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req VerifyOTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.VerifyOTP(r.Context(), req.Email, req.OTP)
	if err != nil {
		switch {
		case errors.Is(err, ErrUserNotFound):
			http.Error(w, "user not found", http.StatusBadRequest)
		case errors.Is(err, ErrAlreadyVerified):
			http.Error(w, "user already verified", http.StatusBadRequest)
		case errors.Is(err, ErrInvalidOTP):
			http.Error(w, "invalid or expired OTP", http.StatusBadRequest)
		default:
			log.WithError(err).Error("OTP verification failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.respondWithToken(w, r, u)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidCredentials):
			http.Error(w, "invalid email or password", http.StatusUnauthorized)
		case errors.Is(err, ErrNotVerified):
			http.Error(w, "please verify your email address", http.StatusUnauthorized)
		default:
			log.WithError(err).Error("login failed")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	h.respondWithToken(w, r, u)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.UpdateProfile(r.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("profile update failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.respondWithToken(w, r, u)
}

func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.WithError(err).Error("failed to fetch user")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	config.JSON(w, http.StatusOK, u)
}

// respondWithToken issues the JWT as both a cookie (browser clients) and a
// response field (the frontend stores it for bearer use).
func (h *Handler) respondWithToken(w http.ResponseWriter, r *http.Request, u *User) {
	log := config.WithContext(r.Context())

	token, err := auth.GenerateJWT(u.ID.String(), u.Role, auth.TokenDuration)
	if err != nil {
		log.WithError(err).Error("failed to issue token")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     "jwt",
		Value:    token,
		Path:     "/",
		Domain:   os.Getenv("COOKIE_DOMAIN"),
		MaxAge:   int(auth.TokenDuration.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})

	config.JSON(w, http.StatusOK, AuthResponse{
		ID:        u.ID.String(),
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Role:      u.Role,
		Streak:    u.Streak,
		Token:     token,
	})
}
