package http

import (
	"mime"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"github.com/postwave/postwave/pkg/usecase"
)

// AuthHandler handles account and session endpoints
type AuthHandler struct {
	authUC usecase.AuthUseCase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// publicUser is the profile shown to other users
type publicUser struct {
	ID        types.UserID `json:"id"`
	Username  string       `json:"username"`
	FirstName string       `json:"first_name"`
	LastName  string       `json:"last_name"`
	CreatedAt time.Time    `json:"created_at"`
}

func toPublicUser(u *model.User) publicUser {
	return publicUser{
		ID:        u.ID,
		Username:  u.Username,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

// HandleRegister creates an account
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	user, err := h.authUC.Register(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusCreated, user)
}

// HandleLogin issues an access token. Credentials are read from a JSON body
// or from an urlencoded form with username and password fields.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "application/x-www-form-urlencoded" {
		if err := r.ParseForm(); err != nil {
			writeError(w, r, goerr.New("invalid form body", goerr.T(model.ErrTagValidation)))
			return
		}
		req.Username = r.PostForm.Get("username")
		req.Password = r.PostForm.Get("password")
	} else if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.authUC.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, token)
}

// HandleLogout revokes the session of the presented token
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	authCtx, ok := model.GetAuthContext(r.Context())
	if !ok {
		writeError(w, r, goerr.New("not authenticated", goerr.T(model.ErrTagUnauthorized)))
		return
	}

	if err := h.authUC.Logout(r.Context(), authCtx.SessionID); err != nil {
		writeError(w, r, err)
		return
	}

	ctxlog.From(r.Context()).Info("User logged out", "userID", authCtx.UserID)
	writeJSON(w, r, http.StatusOK, map[string]string{
		"message": "logged out successfully",
	})
}

// HandleUserMe returns the authenticated user
func (h *AuthHandler) HandleUserMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.authUC.GetMe(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, user)
}

// HandleGetUser returns the public profile of a user
func (h *AuthHandler) HandleGetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.authUC.GetUser(r.Context(), types.UserID(chi.URLParam(r, "userID")))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, toPublicUser(user))
}
