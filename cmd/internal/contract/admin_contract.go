package contract

import "hrindex/cmd/internal/loader"

// RefreshResponse reports one admin-triggered ingest: how many code lists
// were synced and the batch summary of the filing load.
type RefreshResponse struct {
	CodeListsSynced int             `json:"code_lists_synced"`
	Batch           *loader.Summary `json:"batch"`
}
