package usecases

import (
	"context"
	"strconv"

	"fieldops/internal/domain/identity"
	"fieldops/internal/domain/technician"
	"fieldops/internal/shared/errors"
	"fieldops/internal/shared/logger"
)

// PasswordHasher abstracts the bcrypt hasher so the legacy comparison can be
// exercised without real bcrypt work in tests.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
	IsHashed(stored string) bool
	VerifyLegacy(password, stored string) error
}

// TokenIssuer issues access tokens for authenticated subjects.
type TokenIssuer interface {
	Generate(subject, username, displayName, role string) (string, int64, error)
}

// unknownUserHash is a well-formed bcrypt hash that no password verifies
// against. A login attempt for a username with no account in either store
// still costs one bcrypt compare against it, so response timing does not
// reveal which usernames exist.
const unknownUserHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken string
	ExpiresAt   int64
	Username    string
	DisplayName string
	Role        string
}

// LoginUseCase verifies credentials against the dispatcher store first and
// falls back to the technician store. Stored plaintext passwords are upgraded
// to bcrypt on the first successful login. All failures collapse into the
// same invalid-credentials error so a caller cannot tell which store matched.
type LoginUseCase struct {
	userRepo identity.AppUserRepository
	techRepo technician.TechnicianRepository
	hasher   PasswordHasher
	tokens   TokenIssuer
	logger   logger.Interface
}

func NewLoginUseCase(
	userRepo identity.AppUserRepository,
	techRepo technician.TechnicianRepository,
	hasher PasswordHasher,
	tokens TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo: userRepo,
		techRepo: techRepo,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if cmd.Username == "" || cmd.Password == "" {
		return nil, errors.NewInvalidCredentialsError()
	}

	result, dispatcherCompared, err := uc.loginDispatcher(ctx, cmd)
	if err == nil {
		return result, nil
	}

	result, technicianCompared, err := uc.loginTechnician(ctx, cmd)
	if err == nil {
		return result, nil
	}

	if !dispatcherCompared && !technicianCompared {
		_ = uc.hasher.Verify(cmd.Password, unknownUserHash)
	}

	uc.logger.Warn("login failed", "username", cmd.Username)
	return nil, errors.NewInvalidCredentialsError()
}

// loginDispatcher reports, besides the result, whether a stored credential
// was actually compared. A lookup miss compares nothing; the caller equalizes
// the cost.
func (uc *LoginUseCase) loginDispatcher(ctx context.Context, cmd LoginCommand) (*LoginResult, bool, error) {
	user, err := uc.userRepo.GetByUsername(ctx, cmd.Username)
	if err != nil || user == nil {
		return nil, false, errors.NewInvalidCredentialsError()
	}
	if user.PasswordHash() == "" {
		return nil, false, errors.NewInvalidCredentialsError()
	}

	upgraded, err := uc.verifyStored(cmd.Password, user.PasswordHash())
	if err != nil {
		return nil, true, errors.NewInvalidCredentialsError()
	}

	if upgraded != "" {
		if err := user.SetPasswordHash(upgraded); err == nil {
			if err := uc.userRepo.Update(ctx, user); err != nil {
				uc.logger.Warn("failed to persist migrated password hash", "username", cmd.Username, "error", err)
			}
		}
	}

	result, err := uc.issue(strconv.FormatUint(uint64(user.ID()), 10), user.Username(), user.Username(), user.Role())
	return result, true, err
}

func (uc *LoginUseCase) loginTechnician(ctx context.Context, cmd LoginCommand) (*LoginResult, bool, error) {
	tech, err := uc.techRepo.GetByUsername(ctx, cmd.Username)
	if err != nil || tech == nil || !tech.HasCredentials() {
		return nil, false, errors.NewInvalidCredentialsError()
	}

	upgraded, err := uc.verifyStored(cmd.Password, tech.PasswordHash())
	if err != nil {
		return nil, true, errors.NewInvalidCredentialsError()
	}

	if upgraded != "" {
		if err := tech.SetPasswordHash(upgraded); err == nil {
			if err := uc.techRepo.Update(ctx, tech); err != nil {
				uc.logger.Warn("failed to persist migrated password hash", "username", cmd.Username, "error", err)
			}
		}
	}

	result, err := uc.issue(tech.ID(), tech.Username(), tech.Name(), identity.RoleTechnician)
	return result, true, err
}

// verifyStored checks the password against the stored credential. When the
// credential is legacy plaintext and matches, it returns the bcrypt hash to
// persist; hashed credentials return an empty upgrade string.
func (uc *LoginUseCase) verifyStored(password, stored string) (string, error) {
	if stored == "" {
		return "", errors.NewInvalidCredentialsError()
	}

	if uc.hasher.IsHashed(stored) {
		return "", uc.hasher.Verify(password, stored)
	}

	if err := uc.hasher.VerifyLegacy(password, stored); err != nil {
		return "", err
	}

	hash, err := uc.hasher.Hash(password)
	if err != nil {
		// Login already succeeded against the legacy credential; skip the
		// upgrade rather than locking the user out.
		uc.logger.Warn("failed to hash migrated password", "error", err)
		return "", nil
	}
	return hash, nil
}

func (uc *LoginUseCase) issue(subject, username, displayName, role string) (*LoginResult, error) {
	token, expiresAt, err := uc.tokens.Generate(subject, username, displayName, role)
	if err != nil {
		uc.logger.Error("failed to issue access token", "username", username, "error", err)
		return nil, errors.NewInternalError("failed to issue access token")
	}

	return &LoginResult{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		Username:    username,
		DisplayName: displayName,
		Role:        role,
	}, nil
}
