package storage

import (
	"database/sql"
	"errors"

	"medichat-backend/internal/models"

	"modernc.org/sqlite"
)

var (
	ErrUsernameExists = errors.New("username already exists")
	ErrUserNotFound   = errors.New("user not found")
)

// sqlite extended error code for UNIQUE constraint violations.
const sqliteConstraintUnique = 2067

// CreateUser inserts the user together with its initial medical history in
// one transaction, so a failed history insert never leaves a half-created
// account behind.
func (s *Store) CreateUser(username, passwordHash string, hist models.MedicalHistory) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec("INSERT INTO users(username, password_hash) VALUES(?, ?)", username, passwordHash)
	if err != nil {
		var sqliteErr *sqlite.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqliteConstraintUnique {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	userID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	_, err = tx.Exec(
		"INSERT INTO medical_histories(user_id, allergies, conditions, blood_type, medications) VALUES(?, ?, ?, ?, ?)",
		userID, hist.Allergies, hist.Conditions, hist.BloodType, hist.Medications,
	)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return userID, nil
}

func (s *Store) GetUserByUsername(username string) (models.User, error) {
	var user models.User

	row := s.db.QueryRow("SELECT id, username, password_hash FROM users WHERE username = ?", username)
	if err := row.Scan(&user.ID, &user.Username, &user.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return user, ErrUserNotFound
		}
		return user, err
	}
	return user, nil
}

func (s *Store) UserExists(id int64) (bool, error) {
	var one int
	row := s.db.QueryRow("SELECT 1 FROM users WHERE id = ?", id)
	if err := row.Scan(&one); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
