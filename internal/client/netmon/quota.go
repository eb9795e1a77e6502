package netmon

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/ddanilov/sitesync/internal/models"
)

// Thresholds for the quota warning flags, as shares of the budget.
const (
	quotaWarningShare  = 0.8
	quotaCriticalShare = 0.95
)

// DirQuotaSampler measures how much of a fixed byte budget the local
// data directory occupies.
type DirQuotaSampler struct {
	dir    string
	budget int64
}

// NewDirQuotaSampler creates a sampler over dir with the given budget.
func NewDirQuotaSampler(dir string, budget int64) *DirQuotaSampler {
	return &DirQuotaSampler{dir: dir, budget: budget}
}

// SampleQuota walks the data directory and reports usage against the
// budget.
func (s *DirQuotaSampler) SampleQuota(ctx context.Context) (*models.StorageQuota, error) {
	var used int64
	err := filepath.WalkDir(s.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		used += info.Size()
		return nil
	})
	if err != nil {
		return nil, err
	}

	available := s.budget - used
	if available < 0 {
		available = 0
	}

	return &models.StorageQuota{
		Total:     s.budget,
		Used:      used,
		Available: available,
		Warning:   float64(used) >= float64(s.budget)*quotaWarningShare,
		Critical:  float64(used) >= float64(s.budget)*quotaCriticalShare,
	}, nil
}
