// Package service implements the bastion command surface: order lifecycle,
// time advancement, event resolution, facility acquisition, and the campaign
// chronicle. Commands take explicit identifiers, validate against the rules
// catalog and current store state, and return updated records or typed
// errors.
package service

import (
	"context"
	"errors"
	"log"
	"time"

	apperrors "github.com/louisbranch/bastionhearth/internal/platform/errors"
	"github.com/louisbranch/bastionhearth/internal/platform/id"
	"github.com/louisbranch/bastionhearth/internal/platform/telemetry/metrics"
	"github.com/louisbranch/bastionhearth/internal/random"
	"github.com/louisbranch/bastionhearth/internal/services/bastion/domain"
)

// Forwarder delivers chronicle entries to an external channel. Delivery is
// best-effort; a nil Forwarder disables forwarding.
type Forwarder interface {
	Forward(ctx context.Context, entry domain.ChronicleEntry) error
}

// Config wires the service dependencies. Store is required; everything else
// has a sensible default or is optional.
type Config struct {
	Store     domain.Store
	Forwarder Forwarder
	Metrics   *metrics.Metrics
	Clock     func() time.Time
	NewID     func() (string, error)
	NewSeed   func() (int64, error)
}

// Service orchestrates bastion campaign commands.
type Service struct {
	store   domain.Store
	forward Forwarder
	metrics *metrics.Metrics
	clock   func() time.Time
	newID   func() (string, error)
	newSeed func() (int64, error)
}

// New constructs the bastion service.
func New(cfg Config) *Service {
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	if cfg.NewID == nil {
		cfg.NewID = id.NewID
	}
	if cfg.NewSeed == nil {
		cfg.NewSeed = random.NewSeed
	}
	return &Service{
		store:   cfg.Store,
		forward: cfg.Forwarder,
		metrics: cfg.Metrics,
		clock:   cfg.Clock,
		newID:   cfg.NewID,
		newSeed: cfg.NewSeed,
	}
}

// storeErr wraps persistence failures, preserving ErrNotFound as NOT_FOUND.
func storeErr(action string, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return apperrors.Wrap(apperrors.CodeNotFound, action+": record not found", err)
	}
	return apperrors.Wrap(apperrors.CodeStoreUnavailable, action+" failed", err)
}

// chronicle appends an entry for the campaign day and forwards it. The store
// append and the forward are both best-effort: a failure is logged and
// counted but never aborts the triggering command.
func (s *Service) chronicle(ctx context.Context, campaignID string, day int, message string) {
	entry, err := domain.NewChronicleEntry(campaignID, day, message, s.clock, s.newID)
	if err != nil {
		log.Printf("chronicle entry build failed: %v", err)
		s.metrics.RecordChronicleDrop()
		return
	}
	if err := s.store.AppendChronicle(ctx, entry); err != nil {
		log.Printf("chronicle append failed: %v", err)
		s.metrics.RecordChronicleDrop()
		return
	}
	if s.forward == nil {
		return
	}
	if err := s.forward.Forward(ctx, entry); err != nil {
		log.Printf("chronicle forward failed: %v", err)
		s.metrics.RecordChronicleDrop()
	}
}

// recordCommand tracks command outcomes for telemetry.
func (s *Service) recordCommand(command string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = string(apperrors.GetCode(err))
	}
	s.metrics.RecordCommand(command, outcome)
}

// facilityOwner resolves the owning character name for chronicle messages.
// Falls back to the bastion name when the owner cannot be loaded.
func (s *Service) facilityOwner(ctx context.Context, bastion domain.Bastion) string {
	character, err := s.store.GetCharacter(ctx, bastion.CharacterID)
	if err != nil {
		return bastion.Name
	}
	return character.Name
}
