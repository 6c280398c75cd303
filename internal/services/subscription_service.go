// Package services – SubscriptionService
//
// The subscription ledger holds one row per (subscriber, channel). Each
// channel keeps a denormalized subscribersCount; the row write and the
// counter update commit in the same transaction.
package services

import (
	"context"
	"errors"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/tbourn/go-video-backend/internal/domain"
	"github.com/tbourn/go-video-backend/internal/repo"
)

// SubscriberPage is a page of a channel's subscribers.
type SubscriberPage struct {
	Count       int                  `json:"count"`
	Total       int64                `json:"total"`
	Subscribers []repo.SubscriberRow `json:"subscribers"`
}

// SubscriptionService manages channel subscriptions.
type SubscriptionService struct {
	DB       *gorm.DB
	Notifier Notifier
}

// Subscribe subscribes userID to channelID with the given tier (default free)
// and notifies the channel owner.
func (s *SubscriptionService) Subscribe(ctx context.Context, userID, channelID, tier string) (*domain.Subscription, error) {
	tr := otel.Tracer("services/SubscriptionService")
	ctx, span := tr.Start(ctx, "Subscribe",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("channel.id", channelID),
		),
	)
	defer span.End()

	if err := checkID(channelID); err != nil {
		return nil, err
	}
	tier = strings.ToLower(strings.TrimSpace(tier))
	if tier == "" {
		tier = domain.TierFree
	}
	if tier != domain.TierFree && tier != domain.TierPremium {
		return nil, invalidf("tier must be free or premium")
	}
	ch, err := repo.GetChannel(ctx, s.DB, channelID)
	if err != nil {
		return nil, orNotFound(err, ErrChannelNotFound)
	}
	if ch.UserID == userID {
		return nil, ErrSelfSubscribe
	}

	var sub *domain.Subscription
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		created, err := repo.CreateSubscription(ctx, tx, userID, channelID, tier)
		if err != nil {
			return err
		}
		sub = created
		return repo.AdjustSubscribers(ctx, tx, channelID, 1)
	})
	if err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrAlreadySubscribed
		}
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.Notify(ctx, ch.UserID, domain.NotifySubscription, "You have a new subscriber on "+ch.Name, NotifyOptions{
			RelatedUserID: userID,
			ActionURL:     "/channels/" + ch.ID,
		})
	}
	return sub, nil
}

// Unsubscribe removes the subscription and decrements the channel counter.
func (s *SubscriptionService) Unsubscribe(ctx context.Context, userID, channelID string) error {
	tr := otel.Tracer("services/SubscriptionService")
	ctx, span := tr.Start(ctx, "Unsubscribe",
		trace.WithAttributes(
			attribute.String("user.id", userID),
			attribute.String("channel.id", channelID),
		),
	)
	defer span.End()

	if err := checkID(channelID); err != nil {
		return err
	}
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := repo.DeleteSubscription(ctx, tx, userID, channelID); err != nil {
			return err
		}
		return repo.AdjustSubscribers(ctx, tx, channelID, -1)
	})
	return orNotFound(err, ErrSubscriptionNotFound)
}

// ToggleNotify flips the notify flag and returns the new value.
func (s *SubscriptionService) ToggleNotify(ctx context.Context, userID, channelID string) (bool, error) {
	if err := checkID(channelID); err != nil {
		return false, err
	}
	sub, err := repo.GetSubscription(ctx, s.DB, userID, channelID)
	if err != nil {
		return false, orNotFound(err, ErrSubscriptionNotFound)
	}
	notify := !sub.Notify
	if err := repo.SetSubscriptionNotify(ctx, s.DB, sub.ID, notify); err != nil {
		return false, err
	}
	return notify, nil
}

// IsSubscribed reports whether userID is subscribed to channelID.
func (s *SubscriptionService) IsSubscribed(ctx context.Context, userID, channelID string) (bool, error) {
	if err := checkID(channelID); err != nil {
		return false, err
	}
	_, err := repo.GetSubscription(ctx, s.DB, userID, channelID)
	if errors.Is(err, repo.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

// Mine lists the user's subscriptions with channel details.
func (s *SubscriptionService) Mine(ctx context.Context, userID string) ([]domain.Subscription, error) {
	out, err := repo.ListSubscriptions(ctx, s.DB, userID)
	if out == nil {
		out = []domain.Subscription{}
	}
	return out, err
}

// Subscribers lists a channel's subscribers, newest first.
func (s *SubscriptionService) Subscribers(ctx context.Context, channelID string, limit, skip int) (*SubscriberPage, error) {
	if err := checkID(channelID); err != nil {
		return nil, err
	}
	if _, err := repo.GetChannel(ctx, s.DB, channelID); err != nil {
		return nil, orNotFound(err, ErrChannelNotFound)
	}
	rows, total, err := repo.ListSubscribers(ctx, s.DB, channelID, skip, limit)
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []repo.SubscriberRow{}
	}
	return &SubscriberPage{Count: len(rows), Total: total, Subscribers: rows}, nil
}
