package render

import "github.com/lasangainc/toast-thebrowser/pkg/core"

// Pipeline is the full screenshot-to-terminal-frame path: decode, scale to
// the terminal's pixel grid, then convert to half-block cells.
type Pipeline struct {
	converter *HalfBlockConverter
}

// NewPipeline builds a pipeline around a fresh half-block converter (and
// therefore a fresh quantizer LUT).
func NewPipeline() *Pipeline {
	return &Pipeline{converter: NewHalfBlockConverter()}
}

// Render decodes shot, scales it to (termWidth, 2*termHeight), and
// converts it to a (termWidth, termHeight) terminal frame.
func (p *Pipeline) Render(shot core.Screenshot, termWidth, termHeight int) (*core.TerminalFrame, error) {
	decoded, err := Decode(shot)
	if err != nil {
		return nil, err
	}

	scaled, err := Scale(decoded, termWidth, termHeight*2)
	if err != nil {
		return nil, err
	}

	return p.converter.Convert(scaled, termWidth, termHeight)
}
