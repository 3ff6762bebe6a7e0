package models

const (
	// DefaultPageLimit is applied when the caller does not pass a limit.
	DefaultPageLimit = 100
	// MaxPageLimit caps a single page; requests beyond it are clamped.
	MaxPageLimit = 1000
)

// PageQuery is skip/limit pagination, bound from query parameters.
type PageQuery struct {
	Skip  int `query:"skip"`
	Limit int `query:"limit"`
}

// Normalize clamps the query into a usable range.
func (p PageQuery) Normalize() PageQuery {
	if p.Skip < 0 {
		p.Skip = 0
	}
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}
