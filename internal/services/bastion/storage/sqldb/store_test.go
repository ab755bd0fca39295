package sqldb

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/louisbranch/bastionhearth/internal/platform/storage/dbmigrate"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/rules"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(dbmigrate.DialectSQLite, filepath.Join(t.TempDir(), "bastion.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return store
}

func seedCampaign(t *testing.T, store *Store) domain.Campaign {
	t.Helper()
	campaign := domain.Campaign{
		ID:        "camp-1",
		Name:      "Shadows over Icewind",
		Threat:    domain.ThreatLevelLow,
		CreatedAt: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
		UpdatedAt: time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC),
	}
	if err := store.PutCampaign(context.Background(), campaign); err != nil {
		t.Fatalf("PutCampaign() error = %v", err)
	}
	return campaign
}

func TestOpenRejectsInvalidConfig(t *testing.T) {
	if _, err := Open(dbmigrate.Dialect("oracle"), "x"); err == nil {
		t.Error("Open with unknown dialect should fail")
	}
	if _, err := Open(dbmigrate.DialectSQLite, "  "); err == nil {
		t.Error("Open with blank dsn should fail")
	}
}

func TestCampaignRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	want := seedCampaign(t, store)

	got, err := store.GetCampaign(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetCampaign() error = %v", err)
	}
	if got.Name != want.Name || got.Threat != want.Threat || got.CurrentDay != 0 {
		t.Errorf("campaign = %+v, want %+v", got, want)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, want.CreatedAt)
	}

	want.CurrentDay = 12
	want.Threat = domain.ThreatLevelHigh
	if err := store.PutCampaign(ctx, want); err != nil {
		t.Fatalf("PutCampaign(update) error = %v", err)
	}
	got, err = store.GetCampaign(ctx, want.ID)
	if err != nil {
		t.Fatalf("GetCampaign() error = %v", err)
	}
	if got.CurrentDay != 12 || got.Threat != domain.ThreatLevelHigh {
		t.Errorf("updated campaign = %+v", got)
	}

	if _, err := store.GetCampaign(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetCampaign(missing) error = %v, want ErrNotFound", err)
	}
}

func TestCharacterAndBastionRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCampaign(t, store)

	characters := []domain.Character{
		{ID: "char-2", CampaignID: "camp-1", Name: "Kaelen", Level: 9},
		{ID: "char-1", CampaignID: "camp-1", Name: "Elara", Level: 5},
	}
	for _, character := range characters {
		if err := store.PutCharacter(ctx, character); err != nil {
			t.Fatalf("PutCharacter() error = %v", err)
		}
	}

	listed, err := store.ListCharacters(ctx, "camp-1")
	if err != nil {
		t.Fatalf("ListCharacters() error = %v", err)
	}
	if len(listed) != 2 || listed[0].Name != "Elara" || listed[1].Name != "Kaelen" {
		t.Errorf("characters = %+v, want name-ordered pair", listed)
	}

	bastion := domain.Bastion{ID: "bast-1", CampaignID: "camp-1", CharacterID: "char-1", Name: "Hearthstone Keep", Defenders: 4}
	if err := store.PutBastion(ctx, bastion); err != nil {
		t.Fatalf("PutBastion() error = %v", err)
	}
	bastion.Defenders = 2
	if err := store.PutBastion(ctx, bastion); err != nil {
		t.Fatalf("PutBastion(update) error = %v", err)
	}
	got, err := store.GetBastion(ctx, "bast-1")
	if err != nil {
		t.Fatalf("GetBastion() error = %v", err)
	}
	if got.Defenders != 2 || got.CharacterID != "char-1" {
		t.Errorf("bastion = %+v", got)
	}

	bastions, err := store.ListBastions(ctx, "camp-1")
	if err != nil {
		t.Fatalf("ListBastions() error = %v", err)
	}
	if len(bastions) != 1 {
		t.Errorf("bastions = %d, want 1", len(bastions))
	}

	if _, err := store.GetCharacter(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetCharacter(missing) error = %v, want ErrNotFound", err)
	}
}

func TestFacilityRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCampaign(t, store)
	if err := store.PutCharacter(ctx, domain.Character{ID: "char-1", CampaignID: "camp-1", Name: "Elara", Level: 5}); err != nil {
		t.Fatal(err)
	}
	if err := store.PutBastion(ctx, domain.Bastion{ID: "bast-1", CampaignID: "camp-1", CharacterID: "char-1", Name: "Hearthstone Keep"}); err != nil {
		t.Fatal(err)
	}

	idle := domain.Facility{ID: "fac-1", BastionID: "bast-1", Name: "Smithy", Kind: rules.KindSpecial, Size: rules.SizeRoomy}
	if err := store.PutFacility(ctx, idle); err != nil {
		t.Fatalf("PutFacility() error = %v", err)
	}
	got, err := store.GetFacility(ctx, "fac-1")
	if err != nil {
		t.Fatalf("GetFacility() error = %v", err)
	}
	if !got.Idle() || got.Kind != rules.KindSpecial || got.Size != rules.SizeRoomy {
		t.Errorf("facility = %+v, want idle special roomy", got)
	}

	busy := got
	if err := busy.BeginOrder("Craft: Smith's Tools Item", 14); err != nil {
		t.Fatal(err)
	}
	busy.Task.Progress = 3
	if err := store.PutFacility(ctx, busy); err != nil {
		t.Fatalf("PutFacility(busy) error = %v", err)
	}
	got, err = store.GetFacility(ctx, "fac-1")
	if err != nil {
		t.Fatalf("GetFacility() error = %v", err)
	}
	if got.Task == nil {
		t.Fatal("task should round trip")
	}
	if got.Task.Kind != domain.TaskKindOrder || got.Task.OrderName != "Craft: Smith's Tools Item" ||
		got.Task.Progress != 3 || got.Task.Duration != 14 {
		t.Errorf("task = %+v", got.Task)
	}

	enlarging := domain.Facility{ID: "fac-2", BastionID: "bast-1", Name: "Bedroom", Kind: rules.KindBasic, Size: rules.SizeCramped}
	if err := enlarging.BeginEnlargement(rules.SizeRoomy, 25); err != nil {
		t.Fatal(err)
	}
	if err := store.PutFacility(ctx, enlarging); err != nil {
		t.Fatalf("PutFacility(enlarging) error = %v", err)
	}
	got, err = store.GetFacility(ctx, "fac-2")
	if err != nil {
		t.Fatalf("GetFacility() error = %v", err)
	}
	if got.Task == nil || got.Task.Kind != domain.TaskKindEnlargement || got.Task.TargetSize != rules.SizeRoomy {
		t.Errorf("enlargement task = %+v", got.Task)
	}

	facilities, err := store.ListFacilities(ctx, "bast-1")
	if err != nil {
		t.Fatalf("ListFacilities() error = %v", err)
	}
	if len(facilities) != 2 || facilities[0].Name != "Bedroom" || facilities[1].Name != "Smithy" {
		t.Errorf("facilities = %+v, want name-ordered pair", facilities)
	}

	if _, err := store.GetFacility(ctx, "missing"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetFacility(missing) error = %v, want ErrNotFound", err)
	}
}

func TestChronicleListNewestFirst(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	seedCampaign(t, store)

	base := time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)
	messages := []string{"first entry", "second entry", "third entry"}
	for i, message := range messages {
		entry := domain.ChronicleEntry{
			ID:         string(rune('a' + i)),
			CampaignID: "camp-1",
			Day:        i,
			Message:    message,
			Category:   domain.CategoryNeutral,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.AppendChronicle(ctx, entry); err != nil {
			t.Fatalf("AppendChronicle() error = %v", err)
		}
	}

	entries, err := store.ListChronicle(ctx, "camp-1", 2)
	if err != nil {
		t.Fatalf("ListChronicle() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want limit 2", len(entries))
	}
	if entries[0].Message != "third entry" || entries[1].Message != "second entry" {
		t.Errorf("entries = %+v, want newest first", entries)
	}
	if entries[0].Day != 2 || !entries[0].CreatedAt.Equal(base.Add(2*time.Minute)) {
		t.Errorf("entry fields = %+v", entries[0])
	}
}
