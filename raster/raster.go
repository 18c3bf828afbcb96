package raster

// CompressionDeltaRow is the only raster compression method the
// decoder understands. Each row is stored as a list of edits against
// the previous row.
const CompressionDeltaRow = 1030

// MaxLineSize is the longest line, in bytes, the decoder will
// produce. Lines that would grow beyond it abort decoding with
// ErrLineOverflow.
const MaxLineSize = 2000

const (
	escape   = 0x1b
	formFeed = '\f'

	// edit-count sentinel marking a blank row
	blankRow = 255
)
