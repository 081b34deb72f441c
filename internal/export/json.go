// Package export writes session data to the interchange formats: a JSON
// snapshot for re-import and an Excel workbook for reporting.
package export

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rmacedo/pegada/internal/footprint"
	"github.com/rmacedo/pegada/internal/snapshot"
)

// fallbackYear labels exports when no base year is configured.
const fallbackYear = "ano-base"

// JSONFileName returns the export file name for the configured base year.
func JSONFileName(baseYear string) string {
	return fmt.Sprintf("pegada-ecologica-%s.json", yearLabel(baseYear))
}

// ExcelFileName returns the workbook file name for the configured base year.
func ExcelFileName(baseYear string) string {
	return fmt.Sprintf("pegada-ecologica-%s.xlsx", yearLabel(baseYear))
}

func yearLabel(baseYear string) string {
	if trimmed := strings.TrimSpace(baseYear); trimmed != "" {
		return trimmed
	}
	return fallbackYear
}

// WriteJSON exports the session as a snapshot with an export timestamp.
func WriteJSON(session *footprint.Session, path string, now time.Time) error {
	snap := snapshot.Build(session, now)
	snap.ExportedAt = now.UTC().Format(time.RFC3339)

	data, err := snap.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
