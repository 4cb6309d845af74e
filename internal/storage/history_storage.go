package storage

import (
	"database/sql"
	"errors"

	"medichat-backend/internal/models"
)

// GetHistoryByUserID returns the stored profile, or an all-empty profile
// when the user has not recorded one yet.
func (s *Store) GetHistoryByUserID(userID int64) (models.MedicalHistory, error) {
	var hist models.MedicalHistory
	var allergies, conditions, bloodType, medications sql.NullString

	row := s.db.QueryRow(
		"SELECT allergies, conditions, blood_type, medications FROM medical_histories WHERE user_id = ?",
		userID,
	)
	if err := row.Scan(&allergies, &conditions, &bloodType, &medications); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return hist, nil
		}
		return hist, err
	}

	hist.Allergies = allergies.String
	hist.Conditions = conditions.String
	hist.BloodType = bloodType.String
	hist.Medications = medications.String
	return hist, nil
}

// UpsertHistory creates the profile row if absent and replaces only the
// fields the caller supplied. Runs in a transaction so a failure never
// leaves a partial write behind.
func (s *Store) UpsertHistory(userID int64, upd models.MedicalHistoryUpdate) (models.MedicalHistory, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.MedicalHistory{}, err
	}
	defer tx.Rollback()

	var hist models.MedicalHistory
	var allergies, conditions, bloodType, medications sql.NullString

	row := tx.QueryRow(
		"SELECT allergies, conditions, blood_type, medications FROM medical_histories WHERE user_id = ?",
		userID,
	)
	err = row.Scan(&allergies, &conditions, &bloodType, &medications)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return hist, err
	}
	hist.Allergies = allergies.String
	hist.Conditions = conditions.String
	hist.BloodType = bloodType.String
	hist.Medications = medications.String

	if upd.Allergies != nil {
		hist.Allergies = *upd.Allergies
	}
	if upd.Conditions != nil {
		hist.Conditions = *upd.Conditions
	}
	if upd.BloodType != nil {
		hist.BloodType = *upd.BloodType
	}
	if upd.Medications != nil {
		hist.Medications = *upd.Medications
	}

	_, err = tx.Exec(`
		INSERT INTO medical_histories(user_id, allergies, conditions, blood_type, medications)
		VALUES(?, ?, ?, ?, ?)
		ON CONFLICT(user_id) DO UPDATE SET
			allergies = excluded.allergies,
			conditions = excluded.conditions,
			blood_type = excluded.blood_type,
			medications = excluded.medications`,
		userID, hist.Allergies, hist.Conditions, hist.BloodType, hist.Medications,
	)
	if err != nil {
		return models.MedicalHistory{}, err
	}

	if err := tx.Commit(); err != nil {
		return models.MedicalHistory{}, err
	}
	return hist, nil
}
