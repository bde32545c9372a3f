package dto

// Request and response bodies for the trusted /_internal surface. These map
// straight onto the internal table with no business validation beyond shape.

type ListSettingsRequest struct {
	Name   *string `query:"name"`
	Limit  int     `query:"limit" validate:"omitempty,gte=0,lte=1000"`
	Offset int     `query:"offset" validate:"omitempty,gte=0"`
}

type CreateSettingRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Value int64  `json:"value" validate:"required"`
}

type UpdateSettingRequest struct {
	Name  string `json:"name" validate:"required,max=255"`
	Value int64  `json:"value" validate:"required"`
}

type SettingResponse struct {
	Id    uint   `json:"id"`
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

type CacheSetRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value" validate:"required"`
	TTL   int    `json:"ttl" validate:"omitempty,gte=0"` // seconds, 0 means no expiry
}

type CacheGetResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
