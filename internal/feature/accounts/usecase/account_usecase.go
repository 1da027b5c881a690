package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"accounts_backend/internal/feature/accounts/domain/entity"
)

const (
	// MaxPictureSize is the maximum size of an uploaded profile picture (10MB).
	MaxPictureSize = 10 * 1024 * 1024

	// dobLayout is the wire format for dates of birth.
	dobLayout = "2006-01-02"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists when a
	// user with the same email is already stored.
	Create(ctx context.Context, user *entity.User) error

	// FindAll returns every stored user in natural storage order.
	FindAll(ctx context.Context) ([]entity.User, error)

	// FindByID retrieves a user by ID. It returns ErrUserNotFound when no
	// user matches.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByEmail retrieves a user by email. It returns ErrUserNotFound
	// when no user matches.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Update persists all fields of an existing user. It returns
	// ErrEmailAlreadyExists when the new email collides with another user.
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user by ID. It returns ErrUserNotFound when no user
	// matched.
	Delete(ctx context.Context, id uint) error
}

// FileStore abstracts the storage of uploaded profile pictures.
// Following Go convention, the interface is defined by the consumer (usecase)
// rather than the provider (platform/storage).
type FileStore interface {
	// Save writes the file contents and returns the public path under which
	// the file is served back, e.g. "/uploads/<name>". The original filename
	// is only used to preserve the extension.
	Save(ctx context.Context, data []byte, originalName string) (string, error)
}

// SignupParams carries the fields of a registration request.
// Email and Password are required; the rest are optional.
type SignupParams struct {
	Name     string
	Number   string
	DOB      string
	Email    string
	Password string
}

// PictureUpload carries the contents of an uploaded profile picture.
type PictureUpload struct {
	Data     []byte
	Filename string
}

// UpdateParams carries a partial update. Nil fields were absent from the
// request and leave the stored value untouched.
type UpdateParams struct {
	Name     *string
	Number   *string
	DOB      *string
	Email    *string
	Password *string
	Picture  *PictureUpload
}

// accountUsecase implements the account management business logic.
type accountUsecase struct {
	users UserRepository
	files FileStore
}

// NewAccountUsecase creates a new instance of accountUsecase.
func NewAccountUsecase(users UserRepository, files FileStore) *accountUsecase {
	return &accountUsecase{users: users, files: files}
}

// parseDOB interprets a date of birth in YYYY-MM-DD form.
func parseDOB(s string) (*time.Time, error) {
	t, err := time.Parse(dobLayout, s)
	if err != nil {
		return nil, fmt.Errorf("%w: dob must be in YYYY-MM-DD format", ErrInvalidInput)
	}
	return &t, nil
}

// Signup registers a new user with a bcrypt-hashed password and returns the
// created record.
func (u *accountUsecase) Signup(ctx context.Context, p SignupParams) (*entity.User, error) {
	user := &entity.User{
		Name:   p.Name,
		Number: p.Number,
		Email:  p.Email,
	}

	if p.DOB != "" {
		dob, err := parseDOB(p.DOB)
		if err != nil {
			return nil, err
		}
		user.DOB = dob
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(p.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)

	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// List returns every stored user.
func (u *accountUsecase) List(ctx context.Context) ([]entity.User, error) {
	return u.users.FindAll(ctx)
}

// Update merges the supplied fields into the stored record and returns the
// result. Absent fields keep their stored values; the password is re-hashed
// only when a new non-empty one was supplied; the picture path only changes
// when a new file was uploaded.
func (u *accountUsecase) Update(ctx context.Context, id uint, p UpdateParams) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		user.Name = *p.Name
	}
	if p.Number != nil {
		user.Number = *p.Number
	}
	if p.Email != nil {
		user.Email = *p.Email
	}
	if p.DOB != nil && *p.DOB != "" {
		dob, err := parseDOB(*p.DOB)
		if err != nil {
			return nil, err
		}
		user.DOB = dob
	}
	if p.Password != nil && *p.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*p.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}
	if p.Picture != nil {
		if len(p.Picture.Data) == 0 {
			return nil, fmt.Errorf("%w: uploaded picture is empty", ErrInvalidInput)
		}
		if len(p.Picture.Data) > MaxPictureSize {
			return nil, fmt.Errorf("%w: picture exceeds maximum of %d bytes", ErrInvalidInput, MaxPictureSize)
		}
		path, err := u.files.Save(ctx, p.Picture.Data, p.Picture.Filename)
		if err != nil {
			return nil, fmt.Errorf("failed to store picture: %w", err)
		}
		user.ProfilePicture = path
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user. Deleting an ID that does not exist is treated as
// success so that the operation is idempotent at the API boundary; the store
// still reports the distinction for logging and tests.
func (u *accountUsecase) Delete(ctx context.Context, id uint) error {
	if err := u.users.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil
		}
		return err
	}
	return nil
}

// Login authenticates a user by email and password.
// To mitigate timing attacks, a bcrypt comparison runs even when the email
// is unknown, so rejections take the same time either way. Unknown email and
// wrong password both yield ErrInvalidCredentials; storage failures are
// propagated as such and never masquerade as bad credentials.
func (u *accountUsecase) Login(ctx context.Context, email, password string) error {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrUserNotFound) {
		return fmt.Errorf("failed to look up user: %w", err)
	}

	// Dummy hash compared when the user does not exist, guaranteeing that
	// bcrypt.CompareHashAndPassword always runs.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return ErrInvalidCredentials
	}
	return nil
}
