package coin

import (
	"time"
	"valens/internal/domain"
)

type RefreshView struct {
	Address   string
	Status    domain.PriceRefreshStatus
	PriceUSD  *float64
	UpdatedAt *time.Time
}
