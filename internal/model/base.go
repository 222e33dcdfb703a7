package model

import "time"

// BaseModel carries the columns shared by every table: numeric identifier,
// audit timestamps and the soft-delete pair. updated_at is refreshed by the
// repositories on every mutation.
type BaseModel struct {
	ID        int64      `db:"id" json:"id"`
	CreatedAt time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt time.Time  `db:"updated_at" json:"updated_at"`
	IsDeleted bool       `db:"is_deleted" json:"-"`
	DeletedAt *time.Time `db:"deleted_at" json:"-"`
}

// SoftDelete marks the record logically removed without touching storage.
func (b *BaseModel) SoftDelete(now time.Time) {
	b.IsDeleted = true
	b.DeletedAt = &now
	b.UpdatedAt = now
}
