package participant

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/wibes/draw-api/internal/domain"
	"github.com/wibes/draw-api/internal/pkg/id"
	"github.com/wibes/draw-api/internal/prize"
)

// sideEffectTimeout bounds the background card and SMS work spawned after a
// request has already been answered.
const sideEffectTimeout = 30 * time.Second

// DynamoDB attribute names used in partial update maps.
const (
	fieldNumber     = "number"
	fieldPrizeMoney = "prize_money"
)

type Service interface {
	// RegisterOrResolve finds or creates the participant for (name, phone)
	// and returns it with a freshly signed session token. Card generation is
	// best-effort and never affects the result.
	RegisterOrResolve(ctx context.Context, req domain.RegisterRequest) (*domain.Participant, string, error)
	// SubmitNumber validates the token, resolves the prize amount for the
	// wheel outcome and persists both on the participant.
	SubmitNumber(ctx context.Context, token string, number int) (*domain.Participant, error)
	List(ctx context.Context) ([]domain.Participant, error)
	OpenCard(ctx context.Context, participantID string) (io.ReadCloser, error)
}

type participantStore interface {
	Put(ctx context.Context, p *domain.Participant) error
	Get(ctx context.Context, participantID string) (*domain.Participant, error)
	Update(ctx context.Context, participantID string, updates map[string]interface{}) error
	Delete(ctx context.Context, participantID string) error
	Scan(ctx context.Context) ([]domain.Participant, error)
}

type registrationStore interface {
	Get(ctx context.Context, name, phone string) (string, error)
	Claim(ctx context.Context, name, phone, participantID string) error
}

type tokenProvider interface {
	Sign(participantID string) (string, error)
	Verify(token string) (string, error)
}

type cardGenerator interface {
	Ensure(ctx context.Context, p *domain.Participant) error
	Open(ctx context.Context, p *domain.Participant) (io.ReadCloser, error)
}

type smsSender interface {
	SendSMS(ctx context.Context, to, message string) error
}

type service struct {
	participants  participantStore
	registrations registrationStore
	tokens        tokenProvider
	cards         cardGenerator
	prizes        *prize.Table
	sms           smsSender // nil when SMS is not configured
}

type ServiceDeps struct {
	ParticipantRepo  participantStore
	RegistrationRepo registrationStore
	Tokens           tokenProvider
	Cards            cardGenerator
	Prizes           *prize.Table
	SMSSender        smsSender
}

func NewService(deps ServiceDeps) Service {
	return &service{
		participants:  deps.ParticipantRepo,
		registrations: deps.RegistrationRepo,
		tokens:        deps.Tokens,
		cards:         deps.Cards,
		prizes:        deps.Prizes,
		sms:           deps.SMSSender,
	}
}

func (s *service) RegisterOrResolve(ctx context.Context, req domain.RegisterRequest) (*domain.Participant, string, error) {
	p, err := s.resolve(ctx, req.Name, req.Phone)
	if errors.Is(err, domain.ErrNotFound) {
		p, err = s.create(ctx, req.Name, req.Phone)
	}
	if err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Sign(p.ParticipantID)
	if err != nil {
		return nil, "", fmt.Errorf("sign session token: %w", err)
	}
	go s.ensureCard(p)
	return p, token, nil
}

func (s *service) resolve(ctx context.Context, name, phone string) (*domain.Participant, error) {
	participantID, err := s.registrations.Get(ctx, name, phone)
	if err != nil {
		return nil, err
	}
	return s.participants.Get(ctx, participantID)
}

// create writes the participant record first and claims the (name, phone)
// pair second, so that once a claim is visible the record it points at is
// already readable. Losing the claim race means another registration got the
// pair first; the provisional record is discarded and the winner returned.
func (s *service) create(ctx context.Context, name, phone string) (*domain.Participant, error) {
	now := time.Now().UTC()
	p := &domain.Participant{
		ParticipantID: id.New(),
		Name:          name,
		Phone:         phone,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.participants.Put(ctx, p); err != nil {
		return nil, err
	}
	if err := s.registrations.Claim(ctx, name, phone, p.ParticipantID); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			if dErr := s.participants.Delete(ctx, p.ParticipantID); dErr != nil {
				slog.Warn("could not clean up provisional participant", "participant", p.ParticipantID, "err", dErr)
			}
			return s.resolve(ctx, name, phone)
		}
		return nil, err
	}
	return p, nil
}

func (s *service) SubmitNumber(ctx context.Context, token string, number int) (*domain.Participant, error) {
	participantID, err := s.tokens.Verify(token)
	if err != nil {
		return nil, fmt.Errorf("invalid session token: %w", domain.ErrUnauthorized)
	}
	amount := s.prizes.Amount(number)
	updates := map[string]interface{}{
		fieldNumber:     number,
		fieldPrizeMoney: amount,
	}
	if err := s.participants.Update(ctx, participantID, updates); err != nil {
		return nil, err
	}
	p, err := s.participants.Get(ctx, participantID)
	if err != nil {
		return nil, err
	}
	if s.sms != nil && amount > 0 {
		go s.notifyWin(p, number, amount)
	}
	return p, nil
}

func (s *service) List(ctx context.Context) ([]domain.Participant, error) {
	return s.participants.Scan(ctx)
}

func (s *service) OpenCard(ctx context.Context, participantID string) (io.ReadCloser, error) {
	p, err := s.participants.Get(ctx, participantID)
	if err != nil {
		return nil, err
	}
	return s.cards.Open(ctx, p)
}

func (s *service) ensureCard(p *domain.Participant) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()
	if err := s.cards.Ensure(ctx, p); err != nil {
		slog.Error("card generation failed", "participant", p.ParticipantID, "err", err)
	}
}

func (s *service) notifyWin(p *domain.Participant, number, amount int) {
	ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
	defer cancel()
	msg := fmt.Sprintf("Congratulations %s! Your spin landed on %d and won you %d.", p.Name, number, amount)
	if err := s.sms.SendSMS(ctx, p.Phone, msg); err != nil {
		slog.Error("prize SMS failed", "participant", p.ParticipantID, "err", err)
	}
}
