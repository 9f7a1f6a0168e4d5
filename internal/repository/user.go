package repository

import (
	"database/sql"
	"errors"

	"backend/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
)

type UserRepository interface {
	CreateUser(user *models.User) error
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int64) (*models.User, error)
}

type userRepository struct {
	db  *sqlx.DB
	log *logrus.Logger
}

func NewUserRepository(db *sqlx.DB, log *logrus.Logger) UserRepository {
	return &userRepository{db: db, log: log}
}

func (r *userRepository) CreateUser(user *models.User) error {
	query := `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	return r.db.QueryRowx(query, user.Name, user.Email, user.PasswordHash).StructScan(user)
}

func (r *userRepository) GetUserByEmail(email string) (*models.User, error) {
	var user models.User
	query := `SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`
	err := r.db.Get(&user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(id int64) (*models.User, error) {
	var user models.User
	query := `SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`
	err := r.db.Get(&user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
