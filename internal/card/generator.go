package card

import (
	"bytes"
	"context"
	"fmt"
	"io"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/wibes/draw-api/internal/domain"
)

// qrSize is the rendered PNG edge length in pixels.
const qrSize = 512

// ObjectStore is the storage surface the generator needs. PutIfAbsent must
// treat a concurrent "already exists" as success; the pre-check via Exists
// only saves encoding work, it is not the idempotency guarantee.
type ObjectStore interface {
	Exists(ctx context.Context, key string) (bool, error)
	PutIfAbsent(ctx context.Context, key string, r io.Reader, contentType string) error
	Download(ctx context.Context, key string) (io.ReadCloser, error)
}

// Generator produces each participant's scannable contact card exactly once.
type Generator struct {
	store ObjectStore
}

func NewGenerator(store ObjectStore) *Generator {
	return &Generator{store: store}
}

// Ensure renders the participant's vCard as a QR PNG and stores it under the
// participant's card key, skipping work when the card already exists.
func (g *Generator) Ensure(ctx context.Context, p *domain.Participant) error {
	key := Key(p.Name, p.ParticipantID)
	if exists, err := g.store.Exists(ctx, key); err == nil && exists {
		return nil
	}
	// High error correction so the card survives print damage.
	png, err := qrcode.Encode(VCard(p.Name, p.Phone), qrcode.High, qrSize)
	if err != nil {
		return fmt.Errorf("encode card for %s: %w", p.ParticipantID, err)
	}
	if err := g.store.PutIfAbsent(ctx, key, bytes.NewReader(png), "image/png"); err != nil {
		return fmt.Errorf("store card for %s: %w", p.ParticipantID, err)
	}
	return nil
}

// Open streams a previously generated card.
func (g *Generator) Open(ctx context.Context, p *domain.Participant) (io.ReadCloser, error) {
	return g.store.Download(ctx, Key(p.Name, p.ParticipantID))
}
