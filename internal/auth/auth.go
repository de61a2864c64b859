package auth

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"

	"github.com/charmbracelet/log"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
)

// Auth handles Spotify authentication via the authorization-code flow.
type Auth struct {
	authenticator *spotifyauth.Authenticator
	redirectURI   string
	state         string
	logger        *log.Logger
	clientChan    chan *spotify.Client
}

// New creates an Auth instance requesting the playback and playlist scopes.
func New(clientID, clientSecret, redirectURI string, logger *log.Logger) *Auth {
	authenticator := spotifyauth.New(
		spotifyauth.WithRedirectURL(redirectURI),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserReadPlaybackState,
			spotifyauth.ScopeUserModifyPlaybackState,
			spotifyauth.ScopeUserReadCurrentlyPlaying,
			spotifyauth.ScopePlaylistReadPrivate,
		),
		spotifyauth.WithClientID(clientID),
		spotifyauth.WithClientSecret(clientSecret),
	)

	return &Auth{
		authenticator: authenticator,
		redirectURI:   redirectURI,
		state:         newState(),
		logger:        logger,
		clientChan:    make(chan *spotify.Client),
	}
}

// StartAuthFlow starts a local callback server, prints the authorization URL,
// and blocks until the user authorizes the application or ctx is done.
func (a *Auth) StartAuthFlow(ctx context.Context) (*spotify.Client, error) {
	addr, path, err := callbackAddr(a.redirectURI)
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.HandleFunc(path, a.completeAuth)
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.logger.Error("callback server failed", "err", err)
		}
	}()

	fmt.Println("\nPlease visit this URL to authorize the application:")
	fmt.Println(a.authenticator.AuthURL(a.state))
	fmt.Println("\nWaiting for authorization...")

	select {
	case client := <-a.clientChan:
		server.Shutdown(context.Background())
		return client, nil
	case <-ctx.Done():
		server.Shutdown(context.Background())
		return nil, fmt.Errorf("authorization aborted: %w", ctx.Err())
	}
}

// completeAuth handles the OAuth callback and hands the authenticated client
// back to StartAuthFlow.
func (a *Auth) completeAuth(w http.ResponseWriter, r *http.Request) {
	if st := r.FormValue("state"); st != a.state {
		http.NotFound(w, r)
		a.logger.Error("state mismatch in callback", "got", st)
		return
	}

	token, err := a.authenticator.Token(r.Context(), a.state, r)
	if err != nil {
		http.Error(w, "Couldn't get token", http.StatusForbidden)
		a.logger.Error("token exchange failed", "err", err)
		return
	}

	fmt.Fprint(w, "Authentication successful! You can close this window and return to the CLI.")

	// The client outlives the request, so it must not carry r.Context().
	a.clientChan <- spotify.New(a.authenticator.Client(context.Background(), token))
}

// callbackAddr extracts the listen address and handler path from the
// redirect URI.
func callbackAddr(redirectURI string) (addr, path string, err error) {
	u, err := url.Parse(redirectURI)
	if err != nil {
		return "", "", fmt.Errorf("invalid redirect URI %q: %w", redirectURI, err)
	}

	port := u.Port()
	if port == "" {
		port = "80"
	}
	path = u.Path
	if path == "" {
		path = "/"
	}
	return ":" + port, path, nil
}

func newState() string {
	buf := make([]byte, 16)
	_, _ = rand.Read(buf)
	return hex.EncodeToString(buf)
}
