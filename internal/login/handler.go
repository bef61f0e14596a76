// Package login serves the login form, the login and logout actions and the
// welcome page guarded by the session gate.
package login

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"net/url"

	"github.com/2beens/weblogin/internal/telemetry/metrics"
	"github.com/2beens/weblogin/internal/telemetry/tracing"
	"github.com/2beens/weblogin/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const (
	MsgInvalidCredentials = "Invalid username or password. Please try again."
	MsgLoggedOut          = "You have been logged out."
	MsgLoginUnavailable   = "Login is temporarily unavailable. Please try again later."
)

//go:generate mockgen -source=handler.go -destination=handler_mock_test.go -package=login

type credentialsVerifier interface {
	Verify(ctx context.Context, username, password string) bool
}

type sessionGate interface {
	Login(w http.ResponseWriter, r *http.Request, username string) error
	Logout(w http.ResponseWriter, r *http.Request, flashes ...string) error
	Allowed(r *http.Request, username string) bool
	AddFlash(w http.ResponseWriter, r *http.Request, message string) error
	Flashes(w http.ResponseWriter, r *http.Request) ([]string, error)
}

type Handler struct {
	verifier       credentialsVerifier
	gate           sessionGate
	metricsManager *metrics.Manager
	pages          *template.Template
}

func NewHandler(
	verifier credentialsVerifier,
	gate sessionGate,
	metricsManager *metrics.Manager,
) (*Handler, error) {
	pages, err := parsePages()
	if err != nil {
		return nil, fmt.Errorf("parse pages: %w", err)
	}

	return &Handler{
		verifier:       verifier,
		gate:           gate,
		metricsManager: metricsManager,
		pages:          pages,
	}, nil
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleHome).Methods("GET").Name("home")
	mainRouter.HandleFunc("/login", handler.handleLogin).Methods("POST").Name("login")
	mainRouter.HandleFunc("/welcome/{username}", handler.handleWelcome).Methods("GET").Name("welcome")
	mainRouter.HandleFunc("/logout", handler.handleLogout).Methods("GET").Name("logout")
}

func (handler *Handler) handleHome(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "loginHandler.home")
	defer span.End()

	flashes, err := handler.gate.Flashes(w, r)
	if err != nil {
		log.Errorf("get flashes: %s", err)
	}

	page, err := renderPage(handler.pages, loginPage, loginPageData{Flashes: flashes})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("home page: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteHTMLResponseOK(w, page)
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "loginHandler.login")
	defer span.End()

	if err := r.ParseForm(); err != nil {
		log.Errorf("login failed, parse form error: %s", err)
		handler.loginFailed(w, r, "")
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")
	span.SetAttributes(attribute.String("login.username", username))

	if username == "" || !handler.verifier.Verify(ctx, username, password) {
		handler.loginFailed(w, r, username)
		return
	}

	if err := handler.gate.Login(w, r, username); err != nil {
		span.SetStatus(codes.Error, fmt.Sprintf("session login: %s", err))
		log.Errorf("login [%s], session error: %s", username, err)
		if err := handler.gate.AddFlash(w, r, MsgLoginUnavailable); err != nil {
			log.Errorf("add flash: %s", err)
		}
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	handler.metricsManager.CounterLoginAttempts.WithLabelValues(metrics.LoginResultSuccess).Inc()
	log.Tracef("login success for user: %s", username)

	http.Redirect(w, r, "/welcome/"+url.PathEscape(username), http.StatusFound)
}

func (handler *Handler) loginFailed(w http.ResponseWriter, r *http.Request, username string) {
	handler.metricsManager.CounterLoginAttempts.WithLabelValues(metrics.LoginResultFailure).Inc()

	userIP, err := pkg.ReadUserIP(r)
	if err != nil {
		userIP = "unknown"
	}
	log.Tracef("failed login attempt for user [%s] from [%s]", username, userIP)

	if err := handler.gate.AddFlash(w, r, MsgInvalidCredentials); err != nil {
		log.Errorf("add flash: %s", err)
	}
	http.Redirect(w, r, "/", http.StatusFound)
}

func (handler *Handler) handleWelcome(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "loginHandler.welcome")
	defer span.End()

	username := mux.Vars(r)["username"]
	if !handler.gate.Allowed(r, username) {
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	page, err := renderPage(handler.pages, welcomePage, welcomePageData{Username: username})
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		log.Errorf("welcome page: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteHTMLResponseOK(w, page)
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "loginHandler.logout")
	defer span.End()

	if err := handler.gate.Logout(w, r, MsgLoggedOut); err != nil {
		span.SetStatus(codes.Error, fmt.Sprintf("session logout: %s", err))
		log.Errorf("logout: %s", err)
	}
	handler.metricsManager.CounterLogouts.Inc()

	http.Redirect(w, r, "/", http.StatusFound)
}
