package utils

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// HealthStatus represents current status of external services.
type HealthStatus struct {
	Store        string    `json:"store"`
	StoreHealthy bool      `json:"storeHealthy"`
	LLMProvider  string    `json:"llmProvider"`
	CheckedAt    time.Time `json:"checkedAt"`
}

var (
	currentHealth HealthStatus
	mu            sync.RWMutex
)

// GetHealthStatus returns latest stored health snapshot.
func GetHealthStatus() HealthStatus {
	mu.RLock()
	defer mu.RUnlock()
	return currentHealth
}

func setHealthStatus(h HealthStatus) {
	mu.Lock()
	currentHealth = h
	mu.Unlock()
}

// StartHealthMonitor checks the store immediately and then on every interval
// until ctx is cancelled.
func StartHealthMonitor(ctx context.Context, storeName, provider string, ping func(context.Context) error, interval time.Duration) {
	check := func() {
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		err := ping(pingCtx)
		if err != nil {
			GetLogger().Warn("health: store ping failed", zap.String("store", storeName), zap.Error(err))
		}
		setHealthStatus(HealthStatus{
			Store:        storeName,
			StoreHealthy: err == nil,
			LLMProvider:  provider,
			CheckedAt:    time.Now(),
		})
	}

	check()
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				check()
			}
		}
	}()
}
