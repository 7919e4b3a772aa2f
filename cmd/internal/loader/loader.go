package loader

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"hrindex/cmd/internal/domain/entity"
	"hrindex/cmd/internal/utils"
	"hrindex/cmd/internal/xjustiz"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Config holds everything a batch run depends on. No environment reads, no
// globals; both binaries construct this explicitly.
type Config struct {
	// RootDir is the crawler output root with one directory tree per company.
	RootDir string
	// DownloadBaseURL is the public prefix recorded on every row as the
	// source-document reference.
	DownloadBaseURL string
}

// Loader ingests one full batch of filings. Single-threaded by design: it is
// the only writer during a run, and each company gets its own transaction.
type Loader struct {
	cfg    Config
	db     *gorm.DB
	logger *logrus.Logger
}

func New(cfg Config, db *gorm.DB, logger *logrus.Logger) *Loader {
	return &Loader{cfg: cfg, db: db, logger: logger}
}

// Run executes a full ingest pass: clear the four core tables, then load
// company after company. A company's failure never aborts the run; it just
// shows up in the summary. The whole-batch clear is intentionally not undone
// on later failures, so a bad run ends up with fewer rows, not stale ones.
func (l *Loader) Run() (*Summary, error) {
	summary := &Summary{
		RunID:   uuid.NewString(),
		Started: time.Now().UTC(),
	}
	l.logger.Infof("Starting ingest run %s over %s", summary.RunID, l.cfg.RootDir)

	dirs, err := companyDirs(l.cfg.RootDir)
	if err != nil {
		return nil, err
	}

	if err := l.clearTables(); err != nil {
		return nil, fmt.Errorf("clearing tables: %w", err)
	}

	for _, dir := range dirs {
		path, ok := latestDocument(dir)
		if !ok {
			// Not every crawled directory holds filings; not worth a result row.
			l.logger.Debugf("No source documents in %s", dir)
			continue
		}

		result := l.loadCompany(dir, path, summary)
		summary.add(result)

		switch result.Status {
		case StatusLoaded:
			l.logger.Infof("%s has been processed.", path)
		case StatusSkipped:
			l.logger.Warnf("Skipped %s: %s", path, result.Reason)
		case StatusFailed:
			l.logger.Errorf("Failed %s: %s", path, result.Reason)
		}
	}

	summary.Finished = time.Now().UTC()
	l.logger.Infof("Ingest run %s finished: %d loaded, %d skipped, %d failed",
		summary.RunID, summary.Loaded, summary.Skipped, summary.Failed)
	return summary, nil
}

func (l *Loader) clearTables() error {
	session := l.db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []any{
		&entity.RegisterEntry{},
		&entity.ParticipantPerson{},
		&entity.ParticipantOrganization{},
		&entity.Company{},
	} {
		if err := session.Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) loadCompany(dir, path string, summary *Summary) CompanyResult {
	result := CompanyResult{Dir: dir}

	data, err := os.ReadFile(path)
	if err != nil {
		result.Status = StatusFailed
		result.Reason = fmt.Sprintf("read: %v", err)
		return result
	}

	doc, err := xjustiz.Parse(data)
	if err != nil {
		result.Status = StatusFailed
		result.Reason = fmt.Sprintf("parse: %v", err)
		return result
	}

	if !doc.HasRoot() {
		result.Status = StatusSkipped
		result.Reason = fmt.Sprintf("file %s does not contain the required data", path)
		return result
	}

	rel, err := filepath.Rel(l.cfg.RootDir, path)
	if err != nil {
		rel = path
	}
	fileURL := utils.DownloadURL(l.cfg.DownloadBaseURL, filepath.ToSlash(rel))

	filing, err := xjustiz.Assemble(doc, fileURL)
	if err != nil {
		result.Status = StatusFailed
		result.Reason = fmt.Sprintf("assemble: %v", err)
		return result
	}
	result.CompanyNumber = filing.Company.CompanyNumber
	summary.DroppedParticipants += filing.DroppedParticipants
	summary.DroppedEntries += filing.DroppedEntries

	if err := l.persist(filing); err != nil {
		result.Status = StatusFailed
		if isDuplicate(err) {
			result.Reason = fmt.Sprintf("duplicate company number %s", filing.Company.CompanyNumber)
		} else {
			result.Reason = fmt.Sprintf("persist: %v", err)
		}
		return result
	}

	result.Status = StatusLoaded
	result.Participants = len(filing.Participants)
	result.Entries = len(filing.Entries)
	return result
}

// persist writes one company's rows in a single transaction: either the
// whole filing lands or none of it does.
func (l *Loader) persist(filing *xjustiz.Filing) error {
	return l.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(filing.Company).Error; err != nil {
			return err
		}
		for _, p := range filing.Participants {
			var err error
			if p.Person != nil {
				err = tx.Create(p.Person).Error
			} else if p.Organization != nil {
				err = tx.Create(p.Organization).Error
			}
			if err != nil {
				return err
			}
		}
		for _, e := range filing.Entries {
			if err := tx.Create(e).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
