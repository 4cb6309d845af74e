package models

// User is a registered account. The password hash never leaves the server.
type User struct {
	ID           int64  `json:"id"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

// MedicalHistory is the per-user medical profile (one row per user).
// All four fields are free text and independently optional.
type MedicalHistory struct {
	Allergies   string `json:"allergies"`
	Conditions  string `json:"conditions"`
	BloodType   string `json:"blood_type"`
	Medications string `json:"medications"`
}

// MedicalHistoryUpdate carries a partial profile update. A nil field was
// omitted by the caller and must keep its stored value.
type MedicalHistoryUpdate struct {
	Allergies   *string `json:"allergies"`
	Conditions  *string `json:"conditions"`
	BloodType   *string `json:"blood_type"`
	Medications *string `json:"medications"`
}

// ChatTurn is one prior conversation message supplied by the caller.
// Turns are request-scoped context only and are never persisted.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
