package domain

import "time"

// Storage buckets referenced by PendingUpload.Bucket.
const (
	BucketVideo   = "video"
	BucketProfile = "profile"
)

// PendingUpload is a write-ahead marker recorded before a blob is uploaded
// and removed once the owning row commits. A marker that outlives ExpiresAt
// identifies a blob nothing references, which the reclamation sweep deletes.
type PendingUpload struct {
	ID         string    `json:"id"         gorm:"type:char(36);primaryKey"`
	UserID     string    `json:"userId"     gorm:"type:char(36);not null"`
	Bucket     string    `json:"bucket"     gorm:"type:varchar(16);not null"`
	StorageKey string    `json:"storageKey" gorm:"type:varchar(255);not null;uniqueIndex:ux_pending_key"`
	ExpiresAt  time.Time `json:"expiresAt"  gorm:"not null;index"`
	CreatedAt  time.Time `json:"createdAt"`
}

// TableName returns the database table name for PendingUpload.
func (PendingUpload) TableName() string { return "pending_uploads" }
