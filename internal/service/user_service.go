package service

import (
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/isfdyt26/portal-api/internal/credentials"
	"github.com/isfdyt26/portal-api/internal/models"
	appErrors "github.com/isfdyt26/portal-api/pkg/errors"
)

type userStore interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	AddUser(ctx context.Context, user models.User) (*models.User, error)
	UpdateUser(ctx context.Context, id string, updates models.UserUpdate) (*models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

// CreateUserRequest is the payload for account creation.
type CreateUserRequest struct {
	Name     string               `json:"name" validate:"required"`
	Email    string               `json:"email" validate:"required,email"`
	Password string               `json:"password" validate:"required,min=3"`
	Role     models.UserRole      `json:"role" validate:"required,oneof=ALUMNO DOCENTE PRECEPTOR DIRECTIVO ADMIN"`
	Avatar   string               `json:"avatar"`
	Academic *models.AcademicData `json:"academicData"`
}

// UserService orchestrates account management on top of the store facade.
type UserService struct {
	store     userStore
	validator *validator.Validate
	logger    *zap.Logger
}

// NewUserService constructs a UserService.
func NewUserService(store userStore, validate *validator.Validate, logger *zap.Logger) *UserService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{store: store, validator: validate, logger: logger}
}

// List returns every account without credentials.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list users")
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// Get returns one account without its credential.
func (s *UserService) Get(ctx context.Context, id string) (*models.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	if user == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}
	sanitized := *user
	sanitized.Password = ""
	return &sanitized, nil
}

// Create registers a new account with a hashed credential.
func (s *UserService) Create(ctx context.Context, req CreateUserRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid user payload")
	}
	if err := s.ensureUniqueEmail(ctx, req.Email, ""); err != nil {
		return nil, err
	}

	hashed, err := credentials.Hash(req.Password)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash credential")
	}

	user := models.User{
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		Password:     hashed,
		Role:         req.Role,
		Avatar:       req.Avatar,
		AcademicData: req.Academic,
	}

	created, err := s.store.AddUser(ctx, user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create user")
	}

	sanitized := *created
	sanitized.Password = ""
	return &sanitized, nil
}

// Update applies a partial update; a supplied password is re-hashed.
func (s *UserService) Update(ctx context.Context, id string, updates models.UserUpdate) (*models.User, error) {
	if updates.Email != nil {
		if err := s.ensureUniqueEmail(ctx, *updates.Email, id); err != nil {
			return nil, err
		}
	}
	if updates.Role != nil && !validRole(*updates.Role) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown role")
	}
	if updates.Password != nil {
		hashed, err := credentials.Hash(*updates.Password)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to hash credential")
		}
		updates.Password = &hashed
	}

	user, err := s.store.UpdateUser(ctx, id, updates)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update user")
	}
	if user == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}

	sanitized := *user
	sanitized.Password = ""
	return &sanitized, nil
}

// Delete removes an account. Deleting the last admin is allowed but logged,
// since the portal becomes unmanageable without one.
func (s *UserService) Delete(ctx context.Context, id string) error {
	user, err := s.store.GetUser(ctx, id)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load user")
	}
	if user == nil {
		return appErrors.Clone(appErrors.ErrNotFound, "user not found")
	}

	if user.Role == models.RoleAdmin {
		users, err := s.store.ListUsers(ctx)
		if err == nil {
			admins := 0
			for _, u := range users {
				if u.Role == models.RoleAdmin {
					admins++
				}
			}
			if admins <= 1 {
				s.logger.Warn("deleting the last admin account", zap.String("user_id", id))
			}
		}
	}

	if err := s.store.DeleteUser(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete user")
	}
	return nil
}

func (s *UserService) ensureUniqueEmail(ctx context.Context, email, excludeID string) error {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check email uniqueness")
	}
	for _, u := range users {
		if u.ID != excludeID && strings.EqualFold(u.Email, email) {
			return appErrors.Clone(appErrors.ErrConflict, "email already in use")
		}
	}
	return nil
}

func validRole(role models.UserRole) bool {
	switch role {
	case models.RoleStudent, models.RoleTeacher, models.RolePreceptor, models.RoleDirector, models.RoleAdmin:
		return true
	}
	return false
}
