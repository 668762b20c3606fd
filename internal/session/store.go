package session

import (
	"context"
	"sync"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Session состояние диалога одного пользователя Telegram
type Session struct {
	Booking      *BookingDraft
	Registration *RegistrationDraft
	AdminAuthed  bool

	touchedAt time.Time
}

// Store хранилище сессий в памяти с вытеснением по TTL
// Ключ — Telegram ID пользователя
type Store struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	ttl      time.Duration
	logger   Logger
}

// NewStore создает хранилище сессий
func NewStore(ttl time.Duration, logger Logger) *Store {
	return &Store{
		sessions: make(map[int64]*Session),
		ttl:      ttl,
		logger:   logger,
	}
}

// Get возвращает сессию пользователя, создавая её при первом обращении
// Каждое обращение продлевает TTL
func (s *Store) Get(userID int64) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[userID]
	if !ok {
		sess = &Session{}
		s.sessions[userID] = sess
	}
	sess.touchedAt = time.Now()
	return sess
}

// Reset сбрасывает черновики пользователя, сохраняя админскую авторизацию
func (s *Store) Reset(userID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sess, ok := s.sessions[userID]; ok {
		sess.Booking = nil
		sess.Registration = nil
		sess.touchedAt = time.Now()
	}
}

// Sweep удаляет сессии, не тронутые дольше TTL, возвращает число удаленных
func (s *Store) Sweep(now time.Time) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for id, sess := range s.sessions {
		if now.Sub(sess.touchedAt) > s.ttl {
			delete(s.sessions, id)
			removed++
		}
	}
	return removed
}

// RunSweeper периодически чистит просроченные сессии до отмены контекста
func (s *Store) RunSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if removed := s.Sweep(now); removed > 0 {
				s.logger.Info("session: swept %d expired sessions", removed)
			}
		}
	}
}

// Len возвращает число активных сессий
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
