// Package report renders evaluation results for people and machines.
package report

import (
	"io"

	"go-image-metrics/pkg/models"
)

// Reporter writes a finished run to w
type Reporter interface {
	WriteBatch(w io.Writer, r *models.BatchReport) error
	WriteNoReference(w io.Writer, r *models.NoReferenceReport) error
	Format() string
}
