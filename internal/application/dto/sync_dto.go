package dto

// SyncResponse resultado de la sincronización del catálogo.
type SyncResponse struct {
	ActionResponse
	Products int   `json:"products"`
	Variants int   `json:"variants"`
	Removed  int64 `json:"removed"`
}
