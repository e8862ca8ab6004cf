package domain

// AdminUser is a back-office user allowed to maintain countries, rates and
// content. Quote requests never require one.
type AdminUser struct {
	AdminUserID  string `json:"adminUserID"` // Primary Key (UUID)
	Username     string `json:"username"`    // Unique
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt hash, never serialized
	AuditFields
}
