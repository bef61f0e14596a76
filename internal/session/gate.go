package session

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/2beens/weblogin/pkg"

	"github.com/gorilla/sessions"
	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const (
	tokenKey    = "token"
	tokenLength = 35
)

var ErrEmptySecretKey = errors.New("session secret key empty")

type GateParams struct {
	SecretKey    []byte
	CookieName   string
	SecureCookie bool
	Store        Store
}

// Gate tracks whether a caller is anonymous or authenticated as a username.
// The cookie is signed with the secret key and holds only the session token
// and pending flash messages.
type Gate struct {
	cookies    *sessions.CookieStore
	cookieName string
	store      Store
	// ability to inject random string generator func for tokens (for unit and dev testing)
	RandStringFunc func(s int) (string, error)
}

func NewGate(params GateParams) (*Gate, error) {
	if len(params.SecretKey) == 0 {
		return nil, ErrEmptySecretKey
	}
	if params.Store == nil {
		return nil, errors.New("session store not set")
	}

	cookies := sessions.NewCookieStore(params.SecretKey)
	// browser-session cookie, and no expiry check on the signature either
	cookies.MaxAge(0)
	cookies.Options.Path = "/"
	cookies.Options.HttpOnly = true
	cookies.Options.Secure = params.SecureCookie
	cookies.Options.SameSite = http.SameSiteLaxMode

	return &Gate{
		cookies:        cookies,
		cookieName:     params.CookieName,
		store:          params.Store,
		RandStringFunc: pkg.GenerateRandomString,
	}, nil
}

func (g *Gate) cookieSession(r *http.Request) *sessions.Session {
	sess, err := g.cookies.Get(r, g.cookieName)
	if err != nil {
		// tampered or signed with another key: carry on with a fresh, anonymous session
		log.Tracef("decode session cookie: %s", err)
	}
	return sess
}

// Login authenticates the caller as username. A token the caller already
// held is dropped first.
func (g *Gate) Login(w http.ResponseWriter, r *http.Request, username string) error {
	ctx := r.Context()
	sess := g.cookieSession(r)

	if oldToken, ok := sess.Values[tokenKey].(string); ok && oldToken != "" {
		if err := g.store.Delete(ctx, oldToken); err != nil {
			log.Warnf("drop previous session: %s", err)
		}
	}

	token, err := g.RandStringFunc(tokenLength)
	if err != nil {
		return fmt.Errorf("generate session token: %w", err)
	}

	if err := g.store.Set(ctx, token, Marker{Username: username}); err != nil {
		return fmt.Errorf("store session: %w", err)
	}

	sess.Values[tokenKey] = token
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session cookie: %w", err)
	}

	return nil
}

// Logout returns the caller to anonymous and queues the given flash messages.
// Logging out an anonymous caller only queues the messages.
func (g *Gate) Logout(w http.ResponseWriter, r *http.Request, flashes ...string) error {
	sess := g.cookieSession(r)

	token, _ := sess.Values[tokenKey].(string)
	delete(sess.Values, tokenKey)
	for _, f := range flashes {
		sess.AddFlash(f)
	}

	var err error
	if saveErr := sess.Save(r, w); saveErr != nil {
		err = multierr.Append(err, fmt.Errorf("save session cookie: %w", saveErr))
	}

	if token != "" {
		if delErr := g.store.Delete(r.Context(), token); delErr != nil {
			err = multierr.Append(err, fmt.Errorf("delete session: %w", delErr))
		}
	}

	return err
}

// Identity returns the username the caller is authenticated as. Any cookie or
// store failure counts as anonymous.
func (g *Gate) Identity(r *http.Request) (string, bool) {
	sess := g.cookieSession(r)

	token, ok := sess.Values[tokenKey].(string)
	if !ok || token == "" {
		return "", false
	}

	marker, err := g.store.Get(r.Context(), token)
	if err != nil {
		if !errors.Is(err, ErrSessionNotFound) {
			log.Errorf("get session: %s", err)
		}
		return "", false
	}

	return marker.Username, true
}

// Allowed reports whether the caller may access the resources of username.
func (g *Gate) Allowed(r *http.Request, username string) bool {
	identity, ok := g.Identity(r)
	return ok && identity == username
}

func (g *Gate) AddFlash(w http.ResponseWriter, r *http.Request, message string) error {
	sess := g.cookieSession(r)
	sess.AddFlash(message)
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("save session cookie: %w", err)
	}
	return nil
}

// Flashes pops the pending flash messages.
func (g *Gate) Flashes(w http.ResponseWriter, r *http.Request) ([]string, error) {
	sess := g.cookieSession(r)

	raw := sess.Flashes()
	if len(raw) == 0 {
		return nil, nil
	}

	flashes := make([]string, 0, len(raw))
	for _, f := range raw {
		if s, ok := f.(string); ok {
			flashes = append(flashes, s)
		}
	}

	if err := sess.Save(r, w); err != nil {
		return flashes, fmt.Errorf("save session cookie: %w", err)
	}

	return flashes, nil
}
