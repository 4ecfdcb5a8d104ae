package domain

import (
	"strings"
	"time"
)

// Service бронируемая услуга (переговорная, офис, студия)
// После создания не изменяется
type Service struct {
	ID              string
	Name            string
	Description     string
	DurationMinutes int
	Price           float64
	Category        string
	ImageURL        string
	CreatedAt       time.Time
}

// ServiceFilter фильтр каталога
type ServiceFilter struct {
	Category string // пусто или "all" - без фильтра
	Search   string // подстрока в названии или описании без учета регистра
}

// Matches проверяет услугу на соответствие фильтру
func (f ServiceFilter) Matches(s *Service) bool {
	if f.Category != "" && f.Category != CategoryAll && s.Category != f.Category {
		return false
	}

	search := strings.ToLower(strings.TrimSpace(f.Search))
	if search == "" {
		return true
	}

	return strings.Contains(strings.ToLower(s.Name), search) ||
		strings.Contains(strings.ToLower(s.Description), search)
}
