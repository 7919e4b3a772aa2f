package service

import (
	"context"
	"errors"
	"fmt"

	"hrindex/cmd/internal/infrastructure/xrepository"

	"github.com/sirupsen/logrus"
)

type CodeListRepository interface {
	Replace(model any, rows any) error
}

// ReferenceSyncService pulls the published code lists and reloads the lookup
// tables the read API joins against. A failing list is logged and skipped;
// the remaining lists still load.
type ReferenceSyncService struct {
	Client   *xrepository.Client
	CodeRepo CodeListRepository
	Logger   *logrus.Logger
}

func NewReferenceSyncService(client *xrepository.Client, repo CodeListRepository, logger *logrus.Logger) *ReferenceSyncService {
	return &ReferenceSyncService{
		Client:   client,
		CodeRepo: repo,
		Logger:   logger,
	}
}

// SyncAll returns how many lists loaded and a joined error over the ones
// that did not.
func (s *ReferenceSyncService) SyncAll(ctx context.Context) (int, error) {
	synced := 0
	var errs []error
	for _, spec := range xrepository.Lists() {
		list, err := s.Client.GetCodeList(ctx, spec.Path)
		if err != nil {
			s.Logger.Errorf("Failed to retrieve code list %s: %v", spec.Name, err)
			errs = append(errs, fmt.Errorf("%s: %w", spec.Name, err))
			continue
		}

		rows := spec.Convert(list.Rows)
		if err := s.CodeRepo.Replace(spec.Model, rows); err != nil {
			s.Logger.Errorf("Failed to load code list %s: %v", spec.Name, err)
			errs = append(errs, fmt.Errorf("%s: %w", spec.Name, err))
			continue
		}

		s.Logger.Infof("Loaded code list %s (%d rows)", spec.Name, len(list.Rows))
		synced++
	}
	return synced, errors.Join(errs...)
}
