package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/xtrack/server/internal/telemetry/tracing"
	"github.com/xtrack/server/pkg"
)

const TokenHeader = "X-XTRACK-TOKEN"

// TokenFromRequest reads the session token from the X-XTRACK-TOKEN header,
// falling back to a bearer Authorization header.
func TokenFromRequest(r *http.Request) string {
	if token := r.Header.Get(TokenHeader); token != "" {
		return token
	}
	authz := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(authz, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return ""
}

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=auth_test

type authService interface {
	SignUp(ctx context.Context, req SignUpRequest) (*Session, error)
	SignIn(ctx context.Context, email, password string) (*Session, error)
	SignOut(ctx context.Context, token string) error
}

type sessionChecker interface {
	Session(ctx context.Context, token string) (*Session, error)
}

type Handler struct {
	service authService
	checker sessionChecker
}

func NewHandler(service authService, checker sessionChecker) *Handler {
	return &Handler{
		service: service,
		checker: checker,
	}
}

// SetupRoutes registers the /auth routes, with mw applied to the auth subrouter.
func (h *Handler) SetupRoutes(mainRouter *mux.Router, mw ...mux.MiddlewareFunc) {
	authRouter := mainRouter.PathPrefix("/auth").Subrouter()
	authRouter.HandleFunc("/signup", h.HandleSignUp).Methods("POST", "OPTIONS").Name("auth-signup")
	authRouter.HandleFunc("/signin", h.HandleSignIn).Methods("POST", "OPTIONS").Name("auth-signin")
	authRouter.HandleFunc("/signout", h.HandleSignOut).Methods("POST", "OPTIONS").Name("auth-signout")
	authRouter.HandleFunc("/session", h.HandleSession).Methods("GET", "OPTIONS").Name("auth-session")
	authRouter.Use(mw...)
}

func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.signUp")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "unsupported content type", http.StatusBadRequest)
		return
	}

	var req SignUpRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("sign up, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	session, err := h.service.SignUp(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidSignUp):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, ErrEmailTaken):
			http.Error(w, "email already registered", http.StatusConflict)
		default:
			log.Errorf("sign up: %s", err)
			http.Error(w, "sign up failed", http.StatusInternalServerError)
		}
		return
	}

	log.Debugf("new user signed up: %s", session.UserID)
	pkg.WriteJSON(w, session, http.StatusCreated)
}

func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.signIn")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "unsupported content type", http.StatusBadRequest)
		return
	}

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("sign in, unmarshal json params: %s", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Email == "" {
		http.Error(w, "error, email empty", http.StatusBadRequest)
		return
	}
	if req.Password == "" {
		http.Error(w, "error, password empty", http.StatusBadRequest)
		return
	}

	session, err := h.service.SignIn(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			log.Tracef("failed sign in attempt for: %s", req.Email)
			http.Error(w, "error, wrong credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("sign in: %s", err)
		http.Error(w, "sign in failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, session)
}

func (h *Handler) HandleSignOut(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.signOut")
	defer span.End()

	token := TokenFromRequest(r)
	if token == "" {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	if err := h.service.SignOut(ctx, token); err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
		log.Errorf("sign out: %s", err)
		http.Error(w, "sign out failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteTextResponseOK(w, "signed-out")
}

func (h *Handler) HandleSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "authHandler.session")
	defer span.End()

	session, ok := SessionFromContext(ctx)
	if !ok {
		var err error
		session, err = h.checker.Session(ctx, TokenFromRequest(r))
		if err != nil {
			http.Error(w, "no can do", http.StatusUnauthorized)
			return
		}
	}

	pkg.WriteJSONOK(w, session)
}
