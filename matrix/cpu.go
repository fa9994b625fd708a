// SPDX-License-Identifier: MIT

package matrix

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Panel widths in columns. A panel's running sums must stay resident in L1
// while every row streams past it: 256 float64 = 2 KiB, 512 float64 = 4 KiB.
const (
	panelWidthBaseline = 256
	panelWidthWide     = 512
)

// defaultPanelWidth picks the column panel width from the detected CPU.
// Wider vector units drain a row segment faster, so a wider panel amortizes
// the per-row loop overhead without spilling the accumulators out of L1.
func defaultPanelWidth() int {
	switch runtime.GOARCH {
	case "amd64":
		if cpu.X86.HasAVX2 || cpu.X86.HasAVX512F {
			return panelWidthWide
		}
	case "arm64":
		if cpu.ARM64.HasASIMD {
			return panelWidthWide
		}
	}

	return panelWidthBaseline
}
