package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/tbourn/go-video-backend/internal/domain"
)

func positions(t *testing.T, pv *PlaylistView) []string {
	t.Helper()
	out := make([]string, len(pv.Videos))
	for i, it := range pv.Videos {
		if it.Position != i {
			t.Fatalf("position %d holds %d", i, it.Position)
		}
		out[i] = it.VideoID
	}
	if pv.VideoCount != len(pv.Videos) {
		t.Fatalf("videoCount = %d, entries = %d", pv.VideoCount, len(pv.Videos))
	}
	return out
}

func samePlaylistOrder(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPlaylist_AddRemoveKeepsPositionsContiguous(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "curator")
	svc := &PlaylistService{DB: db}

	p, err := svc.Create(ctx, u.ID, PlaylistInput{Title: "  Mix  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.Title != "Mix" || p.Visibility != domain.VisibilityPublic {
		t.Fatalf("unexpected playlist %+v", p)
	}

	v1 := seedVideo(t, db, u.ID, domain.StatusCompleted, 100)
	v2 := seedVideo(t, db, u.ID, domain.StatusCompleted, 100)
	v3 := seedVideo(t, db, u.ID, domain.StatusCompleted, 100)
	var pv *PlaylistView
	for _, v := range []*domain.Video{v1, v2, v3} {
		if pv, err = svc.AddVideo(ctx, u.ID, p.ID, v.ID); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if got := positions(t, pv); !samePlaylistOrder(got, []string{v1.ID, v2.ID, v3.ID}) {
		t.Fatalf("order = %v", got)
	}
	if pv.Thumbnail != v1.Thumbnail {
		t.Fatalf("thumbnail = %q, want first video's", pv.Thumbnail)
	}
	if _, err := svc.AddVideo(ctx, u.ID, p.ID, v2.ID); !errors.Is(err, ErrAlreadyInPlaylist) {
		t.Fatalf("want ErrAlreadyInPlaylist, got %v", err)
	}

	pv, err = svc.RemoveVideo(ctx, u.ID, p.ID, v2.ID)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if got := positions(t, pv); !samePlaylistOrder(got, []string{v1.ID, v3.ID}) {
		t.Fatalf("order after remove = %v", got)
	}
	if _, err := svc.RemoveVideo(ctx, u.ID, p.ID, v2.ID); !errors.Is(err, ErrNotInPlaylist) {
		t.Fatalf("want ErrNotInPlaylist, got %v", err)
	}
}

func TestPlaylist_ViewRenumbersAroundDeletedVideos(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "curator")
	svc := &PlaylistService{DB: db}
	p, err := svc.Create(ctx, u.ID, PlaylistInput{Title: "Gaps"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	v1 := seedVideo(t, db, u.ID, domain.StatusCompleted, 100)
	v2 := seedVideo(t, db, u.ID, domain.StatusCompleted, 100)
	v3 := seedVideo(t, db, u.ID, domain.StatusCompleted, 100)
	for _, v := range []*domain.Video{v1, v2, v3} {
		if _, err := svc.AddVideo(ctx, u.ID, p.ID, v.ID); err != nil {
			t.Fatalf("add: %v", err)
		}
	}
	if err := db.Delete(&domain.Video{}, "id = ?", v1.ID).Error; err != nil {
		t.Fatalf("delete video: %v", err)
	}

	pv, err := svc.Get(ctx, u.ID, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got := positions(t, pv); !samePlaylistOrder(got, []string{v2.ID, v3.ID}) {
		t.Fatalf("order = %v", got)
	}
}

func TestPlaylist_ReorderReconciles(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()
	u := seedUser(t, db, "dj")
	svc := &PlaylistService{DB: db}
	p, err := svc.Create(ctx, u.ID, PlaylistInput{Title: "Set"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	var ids []string
	for i := 0; i < 3; i++ {
		v := seedVideo(t, db, u.ID, domain.StatusCompleted, 100)
		ids = append(ids, v.ID)
		if _, err := svc.AddVideo(ctx, u.ID, p.ID, v.ID); err != nil {
			t.Fatalf("add: %v", err)
		}
	}

	pv, err := svc.Reorder(ctx, u.ID, p.ID, []string{ids[2], ids[0], ids[1]})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if got := positions(t, pv); !samePlaylistOrder(got, []string{ids[2], ids[0], ids[1]}) {
		t.Fatalf("order = %v", got)
	}

	// Unknown ids dropped, duplicates collapsed, omitted entries removed.
	pv, err = svc.Reorder(ctx, u.ID, p.ID, []string{ids[1], uuid.NewString(), ids[1], ids[2]})
	if err != nil {
		t.Fatalf("reorder: %v", err)
	}
	if got := positions(t, pv); !samePlaylistOrder(got, []string{ids[1], ids[2]}) {
		t.Fatalf("reconciled order = %v", got)
	}

	if _, err := svc.Reorder(ctx, u.ID, p.ID, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want invalid input for nil order, got %v", err)
	}
}

func TestPlaylist_OwnershipAndVisibility(t *testing.T) {
	db := newServiceDB(t)
	ctx := context.Background()
	owner := seedUser(t, db, "keeper")
	other := seedUser(t, db, "snoop")
	v := seedVideo(t, db, owner.ID, domain.StatusCompleted, 100)
	svc := &PlaylistService{DB: db}

	p, err := svc.Create(ctx, owner.ID, PlaylistInput{Title: "Secret", Visibility: "PRIVATE"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	pub, err := svc.Create(ctx, owner.ID, PlaylistInput{Title: "Open"})
	if err != nil {
		t.Fatalf("create public: %v", err)
	}

	if _, err := svc.Get(ctx, other.ID, p.ID); !errors.Is(err, ErrPrivatePlaylist) || !errors.Is(err, ErrForbidden) {
		t.Fatalf("want ErrPrivatePlaylist, got %v", err)
	}
	if _, err := svc.Get(ctx, "", p.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("anonymous viewer: got %v", err)
	}
	if _, err := svc.Get(ctx, owner.ID, p.ID); err != nil {
		t.Fatalf("owner get: %v", err)
	}
	if _, err := svc.AddVideo(ctx, other.ID, p.ID, v.ID); !errors.Is(err, ErrNotPlaylistOwner) {
		t.Fatalf("want ErrNotPlaylistOwner, got %v", err)
	}
	if err := svc.Delete(ctx, other.ID, p.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("want forbidden delete, got %v", err)
	}

	lists, err := svc.ByUser(ctx, owner.ID)
	if err != nil || len(lists) != 1 || lists[0].ID != pub.ID {
		t.Fatalf("public lists = %+v, %v", lists, err)
	}
	mine, err := svc.Mine(ctx, owner.ID)
	if err != nil || len(mine) != 2 {
		t.Fatalf("mine = %d, %v", len(mine), err)
	}

	title := "Renamed"
	vis := "unlisted"
	up, err := svc.Update(ctx, owner.ID, p.ID, PlaylistPatch{Title: &title, Visibility: &vis})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if up.Title != title || up.Visibility != domain.VisibilityUnlisted {
		t.Fatalf("updated = %+v", up)
	}
	bad := "everyone"
	if _, err := svc.Update(ctx, owner.ID, p.ID, PlaylistPatch{Visibility: &bad}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("want invalid visibility, got %v", err)
	}

	if err := svc.Delete(ctx, owner.ID, p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(ctx, owner.ID, p.ID); !errors.Is(err, ErrPlaylistNotFound) {
		t.Fatalf("want ErrPlaylistNotFound, got %v", err)
	}
}

func TestPlaylist_CreateValidation(t *testing.T) {
	db := newServiceDB(t)
	svc := &PlaylistService{DB: db}
	u := seedUser(t, db, "validator")

	cases := []PlaylistInput{
		{Title: "   "},
		{Title: "ok", Visibility: "friends"},
	}
	for _, in := range cases {
		if _, err := svc.Create(context.Background(), u.ID, in); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("Create(%+v) err = %v, want invalid input", in, err)
		}
	}
}
