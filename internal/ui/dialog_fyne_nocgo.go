//go:build fyne && !cgo

package ui

import (
	"fmt"

	"modalkit/internal/result"
	"modalkit/internal/spec"
)

// Show informs the user that the Fyne UI requires cgo (OpenGL) and a C
// toolchain. This stub is compiled when the build uses -tags fyne but CGO is
// disabled.
func Show(_ *spec.Dialog) (result.Map, error) {
	return nil, fmt.Errorf("Fyne UI requires cgo (OpenGL). Enable cgo and install a C toolchain, then rebuild: CGO_ENABLED=1 go build -tags fyne ./cmd/modalkit")
}

// ShowWith is Show with per-invocation options.
func ShowWith(_ *spec.Dialog, _ Options) (result.Map, error) {
	return Show(nil)
}
