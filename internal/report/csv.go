package report

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"perksolver/internal/perk"
)

// WriteCSV exports every top-K entry with a nonzero prob_gizmo, across
// every level, as one row per material combination. Grounded on flowShop/internal/bench/runner.go's
// WriteCSV (MkdirAll + os.Create + csv.Writer + header then rows).
func WriteCSV(path string, bestPerLevel map[int][]perk.ResultLine, levels []int) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"level", "prob_gizmo", "prob_attempt", "price", "price_per_success", "materials"}
	if err := w.Write(header); err != nil {
		return err
	}

	for _, lvl := range levels {
		for _, line := range bestPerLevel[lvl] {
			if line.ProbGizmo <= 0 {
				continue
			}
			row := []string{
				strconv.Itoa(lvl),
				strconv.FormatFloat(line.ProbGizmo, 'f', -1, 64),
				strconv.FormatFloat(line.ProbAttempt, 'f', -1, 64),
				strconv.FormatFloat(line.Price, 'f', -1, 64),
				strconv.FormatFloat(line.PricePerSuccess, 'f', -1, 64),
				perk.VecToString(line.Materials),
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
	}

	return w.Error()
}
