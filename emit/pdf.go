package emit

import (
	"fmt"
	"os/exec"
)

// RenderPDF shells out to a system Graphviz install to rasterize a DOT file
// into a PDF (§6.2). cohgen does not vendor a rasterizer; callers should
// treat a returned error as non-fatal to the run and log it rather than
// abort, since the CSV and DOT outputs are already complete by this point.
func RenderPDF(dotPath, pdfPath string) error {
	cmd := exec.Command("dot", "-Tpdf", dotPath, "-o", pdfPath)
	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("render %s via system graphviz: %w: %s", dotPath, err, out)
	}
	return nil
}
