package quiz

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/character-forge/internal/services/quiz TimeProvider

type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider reads the wall clock in UTC
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now().UTC()
}
