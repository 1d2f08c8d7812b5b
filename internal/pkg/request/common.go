package request

// ByIDRequest is a common struct for endpoints keyed by a numeric ID
// path parameter.
type ByIDRequest struct {
	ID int64 `uri:"id" binding:"required,gt=0"`
}

// ListParams holds shared pagination query parameters.
type ListParams struct {
	Page     int `form:"page" binding:"omitempty,gte=1"`
	PageSize int `form:"pageSize" binding:"omitempty,gte=1,lte=100"`
}
