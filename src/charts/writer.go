package charts

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/AlSakharoB/lab2-search/src/logging"
	"github.com/AlSakharoB/lab2-search/src/timings"
)

// Output filenames, fixed so reruns overwrite the previous report.
const (
	CompareFileName    = "search_time_compare.png"
	CollisionsFileName = "hash_collisions.png"
)

// WriteCharts renders both report charts from tbl and writes them as PNGs
// under outDir. Rendering happens before any file is touched for a given
// chart, so a render failure leaves no partial file behind.
func WriteCharts(tbl *timings.Table, outDir string, opts Options) error {
	if outDir == "" {
		outDir = "."
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("create out dir: %w", err)
	}

	toRender := []struct {
		name string
		fn   func(*timings.Table, Options) (image.Image, error)
	}{
		{CompareFileName, RenderSearchCompare},
		{CollisionsFileName, RenderCollisions},
	}

	for _, item := range toRender {
		start := time.Now()
		img, err := item.fn(tbl, opts)
		if err != nil {
			return err
		}
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return fmt.Errorf("png encode %s: %w", item.name, err)
		}
		outPath := filepath.Join(outDir, item.name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("write %s: %w", outPath, err)
		}
		logging.TimeTrack(start, item.name)
		logging.Infof("wrote %s (%d bytes)", outPath, buf.Len())
	}
	return nil
}
