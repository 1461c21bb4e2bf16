package pool_iface

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 200
)

type PageFilter struct {
	Page  int `json:"page" validate:"gte=0"`
	Limit int `json:"limit" validate:"gte=0,lte=200"`
}

// Normalize fills page and limit defaults.
func (p *PageFilter) Normalize() {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
}

func (p *PageFilter) Offset() int {
	return (p.Page - 1) * p.Limit
}

type PageInfo struct {
	Page      int   `json:"page"`
	Limit     int   `json:"limit"`
	TotalItem int64 `json:"total_item"`
	TotalPage int64 `json:"total_page"`
}

func NewPageInfo(filter *PageFilter, total int64) *PageInfo {
	info := PageInfo{
		Page:      filter.Page,
		Limit:     filter.Limit,
		TotalItem: total,
	}

	if filter.Limit > 0 {
		info.TotalPage = (total + int64(filter.Limit) - 1) / int64(filter.Limit)
	}

	return &info
}

type Empty struct{}
