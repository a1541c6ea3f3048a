package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/acadely/academia-api/internal/models"
)

const userSchema = `
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	user VARCHAR(100),
	role VARCHAR(50),
	password VARCHAR(255),
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP`

// UserRepository manages application accounts. Plaintext passwords never
// reach the store: they are hashed on create/update and compared on login.
type UserRepository struct {
	*Generic
	db *sqlx.DB
}

// NewUserRepository constructs a UserRepository.
func NewUserRepository(db *sqlx.DB, log *zap.Logger) *UserRepository {
	return &UserRepository{Generic: NewGeneric(db, "user", log), db: db}
}

// CreateTable ensures the user table exists.
func (r *UserRepository) CreateTable(ctx context.Context) error {
	return r.Generic.CreateTable(ctx, userSchema)
}

// CreateUser hashes the password and inserts the account.
func (r *UserRepository) CreateUser(ctx context.Context, username, role, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("create user: hash password: %w", err)
	}
	_, err = r.Insert(ctx, Record{"user": username, "role": role, "password": string(hash)})
	return err
}

// Login verifies the credentials. It returns false both for an unknown
// username and for a wrong password.
func (r *UserRepository) Login(ctx context.Context, username, password string) (bool, error) {
	user, err := r.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if user == nil {
		return false, nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return false, nil
	}
	return true, nil
}

// GetByUsername returns the account with the given username, or nil when
// absent.
func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `SELECT id, user, role, password, created_at FROM user WHERE user = ? LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}
	return &user, nil
}

// Exists reports whether an account with the username is present.
func (r *UserRepository) Exists(ctx context.Context, username string) (bool, error) {
	user, err := r.GetByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// UpdatePassword hashes and stores a new password, returning the affected
// row count.
func (r *UserRepository) UpdatePassword(ctx context.Context, username, newPassword string) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("update password: hash password: %w", err)
	}
	return r.Update(ctx, Record{"password": string(hash)}, Record{"user": username})
}

// UpdateRole changes the account role, returning the affected row count.
func (r *UserRepository) UpdateRole(ctx context.Context, username, newRole string) (int64, error) {
	return r.Update(ctx, Record{"role": newRole}, Record{"user": username})
}

// DeleteUser removes the account with the given username.
func (r *UserRepository) DeleteUser(ctx context.Context, username string) (int64, error) {
	return r.Delete(ctx, Record{"user": username})
}

// AllUsers returns every account.
func (r *UserRepository) AllUsers(ctx context.Context) ([]models.User, error) {
	const query = `SELECT id, user, role, password, created_at FROM user`
	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
