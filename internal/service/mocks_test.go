package service

import (
	"context"
	"sync"

	"github.com/nutritrack/notification-service/internal/entity"
)

// mock gateway
type mockGateway struct {
	mu       sync.Mutex
	sendFunc func(ctx context.Context, payload *entity.Payload) error
	dryFunc  func(ctx context.Context, token string) error
	sent     []*entity.Payload
	probed   []string
}

func (m *mockGateway) Send(ctx context.Context, payload *entity.Payload) error {
	m.mu.Lock()
	m.sent = append(m.sent, payload)
	m.mu.Unlock()

	if m.sendFunc != nil {
		return m.sendFunc(ctx, payload)
	}
	return nil
}

func (m *mockGateway) SendDryRun(ctx context.Context, token string) error {
	m.mu.Lock()
	m.probed = append(m.probed, token)
	m.mu.Unlock()

	if m.dryFunc != nil {
		return m.dryFunc(ctx, token)
	}
	return nil
}

// mock directory
type mockRepo struct {
	mu       sync.Mutex
	profiles []*entity.Profile
	queryErr error
	cleared  []string
}

func (m *mockRepo) GetProfilesWithToken(ctx context.Context) ([]*entity.Profile, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var withToken []*entity.Profile
	for _, p := range m.profiles {
		if p.HasToken() {
			withToken = append(withToken, p)
		}
	}
	return withToken, nil
}

func (m *mockRepo) GetByID(ctx context.Context, userID string) (*entity.Profile, error) {
	if m.queryErr != nil {
		return nil, m.queryErr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range m.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, nil
}

func (m *mockRepo) ClearToken(ctx context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cleared = append(m.cleared, userID)
	for _, p := range m.profiles {
		if p.UserID == userID {
			p.FCMToken = ""
		}
	}
	return nil
}

func newTestUseCase(repo *mockRepo, gateway *mockGateway) *reminderUseCase {
	return &reminderUseCase{
		repo:    repo,
		gateway: gateway,
		matcher: NewTimeMatcher("Europe/Paris"),
		builder: NewMessageBuilder("https://nutritraack.web.app", "/icon-192.png", "/icon-192.png"),
	}
}
