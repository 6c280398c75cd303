package domain

import "time"

// Subscription tiers.
const (
	TierFree    = "free"
	TierPremium = "premium"
)

// Notification types.
const (
	NotifySubscription = "subscription"
	NotifyLike         = "like"
	NotifyComment      = "comment"
	NotifyReply        = "reply"
	NotifySystem       = "system"
)

// Subscription links a subscriber to a channel. The (subscriber, channel)
// pair is unique; self-subscription is rejected by the service layer.
type Subscription struct {
	ID           string    `json:"id"           gorm:"type:char(36);primaryKey"`
	SubscriberID string    `json:"subscriberId" gorm:"type:char(36);not null;uniqueIndex:ux_subscriber_channel,priority:1"`
	ChannelID    string    `json:"channelId"    gorm:"type:char(36);not null;uniqueIndex:ux_subscriber_channel,priority:2;index"`
	Tier         string    `json:"tier"         gorm:"type:varchar(16);not null;default:'free'"`
	Notify       bool      `json:"notify"       gorm:"not null"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`

	Channel *Channel `json:"channel,omitempty" gorm:"foreignKey:ChannelID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Subscription.
func (Subscription) TableName() string { return "subscriptions" }

// Comment is a top-level comment on a video.
type Comment struct {
	ID        string    `json:"id"      gorm:"type:char(36);primaryKey"`
	VideoID   string    `json:"videoId" gorm:"type:char(36);not null;index:idx_comments_video,priority:1"`
	UserID    string    `json:"userId"  gorm:"type:char(36);not null"`
	Content   string    `json:"content" gorm:"type:varchar(1000);not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"index:idx_comments_video,priority:2"`
	UpdatedAt time.Time `json:"updatedAt"`

	Replies []Reply `json:"replies" gorm:"foreignKey:CommentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

// TableName returns the database table name for Comment.
func (Comment) TableName() string { return "comments" }

// Reply belongs to exactly one comment and has no lifecycle outside it.
type Reply struct {
	ID        string    `json:"id"        gorm:"type:char(36);primaryKey"`
	CommentID string    `json:"commentId" gorm:"type:char(36);not null;index:idx_replies_comment,priority:1"`
	UserID    string    `json:"userId"    gorm:"type:char(36);not null"`
	Content   string    `json:"content"   gorm:"type:varchar(1000);not null"`
	Likes     int64     `json:"likes"     gorm:"not null;default:0"`
	Dislikes  int64     `json:"dislikes"  gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt" gorm:"index:idx_replies_comment,priority:2"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the database table name for Reply.
func (Reply) TableName() string { return "replies" }

// Notification is an append-only per-user record created by internal
// fan-out. Clients can only mark it read or delete it.
type Notification struct {
	ID             string    `json:"id"                       gorm:"type:char(36);primaryKey"`
	UserID         string    `json:"userId"                   gorm:"type:char(36);not null;index:idx_notifications_user,priority:1"`
	Type           string    `json:"type"                     gorm:"type:varchar(16);not null"`
	Message        string    `json:"message"                  gorm:"type:text;not null"`
	RelatedUserID  *string   `json:"relatedUserId,omitempty"  gorm:"type:char(36)"`
	RelatedVideoID *string   `json:"relatedVideoId,omitempty" gorm:"type:char(36)"`
	Read           bool      `json:"read"                     gorm:"not null;default:false;index:idx_notifications_user,priority:2"`
	ActionURL      string    `json:"actionUrl,omitempty"      gorm:"type:text"`
	CreatedAt      time.Time `json:"createdAt"`
}

// TableName returns the database table name for Notification.
func (Notification) TableName() string { return "notifications" }

// IsNotificationType reports whether t is a known notification type.
func IsNotificationType(t string) bool {
	switch t {
	case NotifySubscription, NotifyLike, NotifyComment, NotifyReply, NotifySystem:
		return true
	}
	return false
}
