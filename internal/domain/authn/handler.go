package authn

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"vet-clinic-console/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service, log zerolog.Logger) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/login", loginHandler(svc))
		ar.Post("/recovery", recoveryHandler(svc, log))
		ar.Post("/reset-password", resetPasswordHandler(svc))
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	UserID   int64  `json:"user_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

// loginHandler godoc
// @Summary Login del personal: email + clave, devuelve token de sesión
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} authn.loginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		sess, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			httpx.WriteError(w, http.StatusUnauthorized, "invalid credentials")
			return
		}

		httpx.WriteJSON(w, http.StatusOK, loginResponse{
			Token:    sess.Token,
			UserID:   sess.UserID,
			FullName: sess.FullName,
			Email:    sess.Email,
			Role:     sess.Role,
		})
	}
}

type recoveryRequest struct {
	Email string `json:"email"`
}

func recoveryHandler(svc *Service, log zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req recoveryRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		// No hay servicio de correo: el token queda en el log del servidor
		// para que un administrativo se lo alcance al usuario.
		if tok, ok := svc.RequestRecovery(r.Context(), req.Email); ok {
			log.Info().Str("email", req.Email).Str("recovery_token", tok).Msg("password recovery requested")
		}

		// Respuesta idéntica exista o no la cuenta.
		httpx.WriteJSON(w, http.StatusAccepted, map[string]string{"status": "ok"})
	}
}

type resetPasswordRequest struct {
	Token       string `json:"token"`
	NewPassword string `json:"new_password"`
}

func resetPasswordHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resetPasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		if err := svc.ResetPassword(r.Context(), req.Token, req.NewPassword); err != nil {
			switch err {
			case ErrInvalidToken:
				httpx.WriteError(w, http.StatusUnauthorized, err.Error())
			default:
				httpx.WriteError(w, http.StatusBadRequest, "could not reset password")
			}
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
