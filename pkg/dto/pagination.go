package dto

type PaginationMetadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

type PaginationResponse struct {
	Data interface{}        `json:"data"`
	Meta PaginationMetadata `json:"meta"`
}

func CreatePaginationMetadata(total int64, page, limit int) PaginationMetadata {
	meta := PaginationMetadata{
		Total: total,
		Page:  page,
		Limit: limit,
	}
	if limit > 0 {
		meta.TotalPages = (total + int64(limit) - 1) / int64(limit)
	}

	return meta
}
