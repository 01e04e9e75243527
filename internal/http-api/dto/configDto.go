package dto

// SetConfigRequest upserts one operator setting
type SetConfigRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
