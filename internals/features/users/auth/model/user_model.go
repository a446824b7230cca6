// file: internals/features/users/auth/model/user_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Admin console users. Pembaca kampanye tidak butuh akun.
type UserModel struct {
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey" json:"user_id"`
	UserName  string    `gorm:"column:user_name;type:varchar(80);not null" json:"user_name"`
	UserEmail string    `gorm:"column:user_email;type:varchar(160);not null;uniqueIndex" json:"user_email"`

	// simpan HASH password (bcrypt), bukan plaintext
	UserPasswordHash []byte `gorm:"column:user_password_hash;type:bytea;not null" json:"-"`

	UserCreatedAt time.Time `gorm:"column:user_created_at;type:timestamptz;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time `gorm:"column:user_updated_at;type:timestamptz;autoUpdateTime" json:"user_updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}
