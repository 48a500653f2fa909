package pgstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/isfdyt26/portal-api/internal/credentials"
	"github.com/isfdyt26/portal-api/internal/models"
)

type userRow struct {
	ID           string          `db:"id"`
	Name         string          `db:"name"`
	Email        string          `db:"email"`
	Password     string          `db:"password"`
	Role         string          `db:"role"`
	Avatar       sql.NullString  `db:"avatar"`
	Preferences  json.RawMessage `db:"preferences"`
	AcademicData json.RawMessage `db:"academic_data"`
}

func (r userRow) toModel() (models.User, error) {
	u := models.User{
		ID:       r.ID,
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Role:     models.UserRole(r.Role),
		Avatar:   r.Avatar.String,
	}
	if u.Avatar == "" {
		u.Avatar = models.AvatarForName(u.Name)
	}
	if len(r.Preferences) > 0 {
		var prefs models.UserPreferences
		if err := json.Unmarshal(r.Preferences, &prefs); err != nil {
			return u, fmt.Errorf("decode preferences for user %s: %w", r.ID, err)
		}
		u.Preferences = &prefs
	}
	if len(r.AcademicData) > 0 {
		var academic models.AcademicData
		if err := json.Unmarshal(r.AcademicData, &academic); err != nil {
			return u, fmt.Errorf("decode academic data for user %s: %w", r.ID, err)
		}
		u.AcademicData = &academic
	}
	return u, nil
}

const userColumns = `id, name, email, password, role, avatar, preferences, academic_data`

func (p *PG) ListUsers(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users ORDER BY created_at DESC`, userColumns)

	var rows []userRow
	if err := p.db.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	users := make([]models.User, 0, len(rows))
	for _, r := range rows {
		u, err := r.toModel()
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

func (p *PG) GetUser(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	var row userRow
	if err := p.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (p *PG) AddUser(ctx context.Context, user models.User) (*models.User, error) {
	user.ID = uuid.NewString()
	if user.Preferences == nil {
		user.Preferences = models.DefaultPreferences()
	}
	if user.Avatar == "" {
		user.Avatar = models.AvatarForName(user.Name)
	}

	prefs, err := json.Marshal(user.Preferences)
	if err != nil {
		return nil, fmt.Errorf("encode preferences: %w", err)
	}
	var academic []byte
	if user.AcademicData != nil {
		if academic, err = json.Marshal(user.AcademicData); err != nil {
			return nil, fmt.Errorf("encode academic data: %w", err)
		}
	}

	const query = `
		INSERT INTO users (id, name, email, password, role, avatar, preferences, academic_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())`
	if _, err := p.db.ExecContext(ctx, query,
		user.ID, user.Name, user.Email, user.Password, string(user.Role), user.Avatar, prefs, academic,
	); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return &user, nil
}

func (p *PG) UpdateUser(ctx context.Context, id string, updates models.UserUpdate) (*models.User, error) {
	sets := []string{"updated_at = $1"}
	args := []interface{}{time.Now().UTC()}

	add := func(column string, value interface{}) {
		args = append(args, value)
		sets = append(sets, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if updates.Name != nil {
		add("name", *updates.Name)
	}
	if updates.Email != nil {
		add("email", *updates.Email)
	}
	if updates.Password != nil {
		add("password", *updates.Password)
	}
	if updates.Role != nil {
		add("role", string(*updates.Role))
	}
	if updates.Avatar != nil {
		add("avatar", *updates.Avatar)
	}
	if updates.Preferences != nil {
		prefs, err := json.Marshal(updates.Preferences)
		if err != nil {
			return nil, fmt.Errorf("encode preferences: %w", err)
		}
		add("preferences", prefs)
	}
	if updates.AcademicData != nil {
		academic, err := json.Marshal(updates.AcademicData)
		if err != nil {
			return nil, fmt.Errorf("encode academic data: %w", err)
		}
		add("academic_data", academic)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))

	res, err := p.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		return nil, nil
	}
	return p.GetUser(ctx, id)
}

func (p *PG) DeleteUser(ctx context.Context, id string) error {
	if _, err := p.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// Authenticate fetches by email and compares the credential in process, so
// hashed and legacy plaintext credentials both verify.
func (p *PG) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE LOWER(email) = LOWER($1)`, userColumns)

	var row userRow
	if err := p.db.GetContext(ctx, &row, query, strings.TrimSpace(email)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}

	if !credentials.Matches(row.Password, password) {
		return nil, nil
	}

	u, err := row.toModel()
	if err != nil {
		return nil, err
	}
	return &u, nil
}
