package store

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"punchcard/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNotSignedIn        = errors.New("not signed in")
)

// AuthEvent describes an identity change delivered to subscribers
type AuthEvent string

const (
	AuthSignedIn  AuthEvent = "SIGNED_IN"
	AuthSignedOut AuthEvent = "SIGNED_OUT"
)

var (
	authMu        sync.Mutex
	authListeners map[int]func(AuthEvent, *models.User)
	nextListener  int
)

// SignUp registers a new account and signs it in
func SignUp(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}

	var existing models.User
	if err := DB.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := DB.Create(&user).Error; err != nil {
		log.Error().Err(err).Str("email", email).Msg("failed to create user")
		return nil, err
	}

	if err := setAuthState(user.ID); err != nil {
		return nil, err
	}
	notifyAuthChange(AuthSignedIn, &user)

	return &user, nil
}

// SignIn verifies the credentials and persists the identity so later
// invocations stay signed in
func SignIn(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user models.User
	if err := DB.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	if err := setAuthState(user.ID); err != nil {
		return nil, err
	}
	notifyAuthChange(AuthSignedIn, &user)

	return &user, nil
}

// SignOut clears the persisted identity
func SignOut() error {
	if err := clearAuthState(); err != nil {
		log.Error().Err(err).Msg("failed to sign out")
		return err
	}
	notifyAuthChange(AuthSignedOut, nil)
	return nil
}

// CurrentUser returns the signed-in identity, or ErrNotSignedIn
func CurrentUser() (*models.User, error) {
	var state models.AuthState
	if err := DB.First(&state).Error; err != nil {
		return nil, ErrNotSignedIn
	}

	var user models.User
	if err := DB.Where("id = ?", state.UserID).First(&user).Error; err != nil {
		return nil, ErrNotSignedIn
	}

	return &user, nil
}

// OnAuthChange registers fn for identity-change events and returns the
// function that unregisters it. Callers must unsubscribe on teardown.
func OnAuthChange(fn func(AuthEvent, *models.User)) func() {
	authMu.Lock()
	defer authMu.Unlock()

	if authListeners == nil {
		authListeners = make(map[int]func(AuthEvent, *models.User))
	}
	id := nextListener
	nextListener++
	authListeners[id] = fn

	return func() {
		authMu.Lock()
		defer authMu.Unlock()
		delete(authListeners, id)
	}
}

func notifyAuthChange(event AuthEvent, user *models.User) {
	authMu.Lock()
	listeners := make([]func(AuthEvent, *models.User), 0, len(authListeners))
	for _, fn := range authListeners {
		listeners = append(listeners, fn)
	}
	authMu.Unlock()

	// Called outside the lock so a listener may unsubscribe itself
	for _, fn := range listeners {
		fn(event, user)
	}
}

func setAuthState(userID string) error {
	if err := clearAuthState(); err != nil {
		return err
	}
	state := models.AuthState{UserID: userID, SignedInAt: time.Now()}
	return DB.Create(&state).Error
}

func clearAuthState() error {
	return DB.Where("1 = 1").Delete(&models.AuthState{}).Error
}
