package handlers

import (
	"time"

	"github.com/BruksfildServices01/barber-booking/internal/config"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// timezone oficial da barbearia vem da configuração (instância única)
func shopLocation(cfg *config.Config) *time.Location {
	return timezone.Location(cfg.ShopTimezone)
}

func nowInShop(cfg *config.Config) time.Time {
	return timezone.NowIn(cfg.ShopTimezone)
}

func parseDateInShop(cfg *config.Config, dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		shopLocation(cfg),
	)
}
