package listing

// Page is the list envelope returned by every admin listing endpoint.
type Page[T any] struct {
	Success    bool   `json:"success"`
	Data       []T    `json:"data"`
	Total      int64  `json:"total"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	TotalPages int    `json:"totalPages"`
	Message    string `json:"message,omitempty"`
}

func NewPage[T any](data []T, total int64, p Params) Page[T] {
	p = p.Normalize()
	if data == nil {
		data = []T{}
	}
	return Page[T]{
		Success:    true,
		Data:       data,
		Total:      total,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: TotalPages(total, p.Limit),
	}
}
