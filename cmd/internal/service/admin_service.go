package service

import (
	"context"
	"sync"

	"hrindex/cmd/internal/contract"
	"hrindex/cmd/internal/loader"
	"hrindex/cmd/internal/utils/apierror"

	"github.com/labstack/gommon/log"
)

// DefaultAdminService drives a full ingest on demand: code lists first, then
// the filing batch. The loader owns the write transaction boundary, so only
// one refresh may run at a time; concurrent triggers get a 409.
type DefaultAdminService struct {
	Sync   *ReferenceSyncService
	Loader *loader.Loader

	mu sync.Mutex
}

func NewAdminService(syncService *ReferenceSyncService, batchLoader *loader.Loader) *DefaultAdminService {
	return &DefaultAdminService{
		Sync:   syncService,
		Loader: batchLoader,
	}
}

func (s *DefaultAdminService) Refresh(ctx context.Context) (*contract.RefreshResponse, apierror.ErrorResponse) {
	if !s.mu.TryLock() {
		return nil, apierror.RefreshRunningError
	}
	defer s.mu.Unlock()

	synced, err := s.Sync.SyncAll(ctx)
	if err != nil {
		// Stale labels are tolerable; the filings themselves still load.
		log.Warnf("code list sync incomplete: %v", err)
	}

	summary, err := s.Loader.Run()
	if err != nil {
		log.Errorf("ingest run failed to start: %v", err)
		return nil, apierror.InternalServerError
	}

	return &contract.RefreshResponse{
		CodeListsSynced: synced,
		Batch:           summary,
	}, nil
}
