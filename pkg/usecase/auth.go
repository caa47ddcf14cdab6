package usecase

import (
	"context"
	"net/mail"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwa"
	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/postwave/postwave/pkg/domain/interfaces"
	"github.com/postwave/postwave/pkg/domain/model"
	"github.com/postwave/postwave/pkg/domain/types"
	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultTokenTTL is the lifetime of an access token and its session
	DefaultTokenTTL = 60 * time.Minute

	tokenIssuer = "postwave"
	tokenType   = "bearer"

	usernameMinLength = 3
	usernameMaxLength = 45
	nameMaxLength     = 45
	emailMaxLength    = 200
	passwordMinLength = 8
	// bcrypt ignores bytes after 72
	passwordMaxLength = 72
)

// RegisterInput is the data required to create an account
type RegisterInput struct {
	Email       string `json:"email"`
	Username    string `json:"username"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number"`
}

// Auth implements AuthUseCase with repository-based sessions and HS256 access tokens
type Auth struct {
	repo       interfaces.Repository
	signingKey []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// AuthOption configures Auth
type AuthOption func(*Auth)

// WithTokenTTL sets the access token lifetime
func WithTokenTTL(ttl time.Duration) AuthOption {
	return func(a *Auth) {
		if ttl > 0 {
			a.tokenTTL = ttl
		}
	}
}

// WithBcryptCost sets the password hashing cost. Tests use bcrypt.MinCost.
func WithBcryptCost(cost int) AuthOption {
	return func(a *Auth) {
		a.bcryptCost = cost
	}
}

// NewAuth creates a new Auth use case signing tokens with signingKey
func NewAuth(repo interfaces.Repository, signingKey []byte, opts ...AuthOption) *Auth {
	a := &Auth{
		repo:       repo,
		signingKey: signingKey,
		tokenTTL:   DefaultTokenTTL,
		bcryptCost: bcrypt.DefaultCost,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Register creates a new account with a unique email and username
func (a *Auth) Register(ctx context.Context, input RegisterInput) (*model.User, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	input.Username = strings.TrimSpace(input.Username)
	input.FirstName = strings.TrimSpace(input.FirstName)
	input.LastName = strings.TrimSpace(input.LastName)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)

	if err := validateRegisterInput(input); err != nil {
		return nil, err
	}

	if _, err := a.repo.GetUserByEmail(ctx, input.Email); err == nil {
		return nil, goerr.Wrap(model.ErrEmailTaken, "failed to register user", goerr.V("email", input.Email))
	} else if !isNotFound(err) {
		return nil, goerr.Wrap(err, "failed to look up user by email")
	}

	if _, err := a.repo.GetUserByUsername(ctx, input.Username); err == nil {
		return nil, goerr.Wrap(model.ErrUsernameTaken, "failed to register user", goerr.V("username", input.Username))
	} else if !isNotFound(err) {
		return nil, goerr.Wrap(err, "failed to look up user by username")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), a.bcryptCost)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to hash password")
	}

	user := model.NewUser(input.Email, input.Username, input.FirstName, input.LastName)
	user.PhoneNumber = input.PhoneNumber
	user.PasswordHash = string(hash)

	if err := a.repo.SaveUser(ctx, user); err != nil {
		return nil, goerr.Wrap(err, "failed to save user")
	}

	ctxlog.From(ctx).Info("Registered new user",
		"userID", user.ID,
		"username", user.Username,
	)

	return user, nil
}

// Login checks the password, opens a session and issues an access token for it
func (a *Auth) Login(ctx context.Context, username, password string) (*model.AccessToken, error) {
	user, err := a.repo.GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(model.ErrInvalidCredential, "failed to log in")
		}
		return nil, goerr.Wrap(err, "failed to look up user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, goerr.Wrap(model.ErrInvalidCredential, "failed to log in", goerr.V("userID", user.ID))
	}
	if !user.IsActive {
		return nil, goerr.Wrap(model.ErrInvalidCredential, "user is inactive", goerr.V("userID", user.ID))
	}

	session, err := model.NewSession(user.ID, a.tokenTTL)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create session")
	}
	if err := a.repo.SaveSession(ctx, session); err != nil {
		return nil, goerr.Wrap(err, "failed to save session")
	}

	token, err := a.issueToken(session)
	if err != nil {
		return nil, err
	}

	ctxlog.From(ctx).Info("Created new session",
		"sessionID", session.ID,
		"userID", user.ID,
		"expiresAt", session.ExpiresAt,
	)

	return token, nil
}

// Authenticate verifies an access token and the session behind it
func (a *Auth) Authenticate(ctx context.Context, token string) (*model.AuthContext, error) {
	if token == "" {
		return nil, goerr.New("access token is required", goerr.T(model.ErrTagUnauthorized))
	}

	parsed, err := jwt.Parse([]byte(token),
		jwt.WithKey(jwa.HS256, a.signingKey),
		jwt.WithValidate(true),
		jwt.WithIssuer(tokenIssuer),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid access token", goerr.T(model.ErrTagUnauthorized))
	}

	userID := types.UserID(parsed.Subject())
	sessionID := types.SessionID(parsed.JwtID())
	if userID == "" || sessionID == "" {
		return nil, goerr.New("access token missing subject or session", goerr.T(model.ErrTagUnauthorized))
	}

	session, err := a.repo.GetSession(ctx, sessionID)
	if err != nil {
		if isNotFound(err) {
			return nil, goerr.Wrap(err, "session revoked",
				goerr.T(model.ErrTagUnauthorized),
				goerr.V("sessionID", sessionID))
		}
		return nil, goerr.Wrap(err, "failed to get session")
	}

	if session.UserID != userID {
		return nil, goerr.New("session does not belong to token subject",
			goerr.T(model.ErrTagUnauthorized),
			goerr.V("sessionID", sessionID))
	}
	if session.IsExpired() {
		return nil, goerr.Wrap(model.ErrSessionExpired, "failed to authenticate", goerr.V("sessionID", sessionID))
	}

	return &model.AuthContext{
		UserID:    userID,
		SessionID: sessionID,
	}, nil
}

// Logout revokes the session so its token stops working before expiry
func (a *Auth) Logout(ctx context.Context, sessionID types.SessionID) error {
	if sessionID == "" {
		return goerr.New("session ID is required", goerr.T(model.ErrTagValidation))
	}

	if err := a.repo.DeleteSession(ctx, sessionID); err != nil {
		return goerr.Wrap(err, "failed to delete session")
	}

	ctxlog.From(ctx).Info("Deleted session", "sessionID", sessionID)
	return nil
}

// GetUser returns a user by ID
func (a *Auth) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	user, err := a.repo.GetUser(ctx, id)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get user", goerr.V("userID", id))
	}
	return user, nil
}

// GetMe returns the user of the authenticated request
func (a *Auth) GetMe(ctx context.Context) (*model.User, error) {
	authCtx, ok := model.GetAuthContext(ctx)
	if !ok {
		return nil, goerr.New("authentication required", goerr.T(model.ErrTagUnauthorized))
	}
	return a.GetUser(ctx, authCtx.UserID)
}

func (a *Auth) issueToken(session *model.Session) (*model.AccessToken, error) {
	tok, err := jwt.NewBuilder().
		Issuer(tokenIssuer).
		Subject(session.UserID.String()).
		JwtID(session.ID.String()).
		IssuedAt(session.CreatedAt).
		Expiration(session.ExpiresAt).
		Build()
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build access token")
	}

	signed, err := jwt.Sign(tok, jwt.WithKey(jwa.HS256, a.signingKey))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to sign access token")
	}

	return &model.AccessToken{
		Token:     string(signed),
		TokenType: tokenType,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func validateRegisterInput(input RegisterInput) error {
	if input.Email == "" || len(input.Email) > emailMaxLength {
		return invalidField("email", "email is required and must be at most 200 characters")
	}
	if addr, err := mail.ParseAddress(input.Email); err != nil || addr.Address != input.Email {
		return invalidField("email", "email is not a valid address")
	}
	if l := len([]rune(input.Username)); l < usernameMinLength || l > usernameMaxLength {
		return invalidField("username", "username must be between 3 and 45 characters")
	}
	if strings.ContainsAny(input.Username, " \t\n/") {
		return invalidField("username", "username must not contain spaces or slashes")
	}
	if len([]rune(input.FirstName)) > nameMaxLength {
		return invalidField("first_name", "first name must be at most 45 characters")
	}
	if len([]rune(input.LastName)) > nameMaxLength {
		return invalidField("last_name", "last name must be at most 45 characters")
	}
	if l := len(input.Password); l < passwordMinLength || l > passwordMaxLength {
		return invalidField("password", "password must be between 8 and 72 bytes")
	}
	return nil
}

func invalidField(field, msg string) error {
	return goerr.New(msg, goerr.T(model.ErrTagValidation), goerr.V("field", field))
}

// isNotFound reports whether err is a repository not-found error
func isNotFound(err error) bool {
	return err != nil && goerr.HasTag(err, model.ErrTagNotFound)
}
