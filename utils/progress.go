package utils

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
)

const barWidth = 40

// ProgressBar redraws an in-place terminal progress bar. Matches the
// searcher.Progress signature so it can be passed straight to the engine.
func ProgressBar(done, total int, label string) {
	if total <= 0 {
		return
	}
	filled := barWidth * done / total
	bar := strings.Repeat("=", filled) + strings.Repeat("-", barWidth-filled)
	fmt.Printf("\r%s [%s] %d/%d", label, aurora.Green(bar), done, total)
	if done >= total {
		fmt.Println()
	}
}
