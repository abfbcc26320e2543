package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// User is a registered studio user.
type User struct {
	ID          string
	Email       string
	Password    string // bcrypt hash
	DisplayName string
	CreatedAt   string
}

// CreateUser inserts a new user row.
func (s *Store) CreateUser(u User) error {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.conn.Exec(
		`INSERT INTO users (id, email, password, display_name, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Email, u.Password, u.DisplayName, now,
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetUserByEmail looks a user up by email. Returns ErrNotFound when absent.
func (s *Store) GetUserByEmail(email string) (*User, error) {
	return s.getUser(`SELECT id, email, password, display_name, created_at FROM users WHERE email = ?`, email)
}

// GetUserByID looks a user up by ID. Returns ErrNotFound when absent.
func (s *Store) GetUserByID(id string) (*User, error) {
	return s.getUser(`SELECT id, email, password, display_name, created_at FROM users WHERE id = ?`, id)
}

func (s *Store) getUser(query, arg string) (*User, error) {
	var u User
	err := s.conn.QueryRow(query, arg).Scan(&u.ID, &u.Email, &u.Password, &u.DisplayName, &u.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query user: %w", err)
	}
	return &u, nil
}
