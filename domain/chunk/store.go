package chunk

import "github.com/veridex/veridex/domain/repository"

// LineRangeStore defines persistence for chunk line ranges.
type LineRangeStore interface {
	repository.Store[LineRange]
}
