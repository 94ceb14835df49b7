package ports

import "github.com/josebatistam/Astroinformatics-II/internal/core/domain"

// Logger defines the interface for logging.
//
//go:generate mockgen -source=logger.go -destination=mocks/mock_logger.go -package=mocks
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(err error)
	// Stage reports how long one pipeline stage took.
	Stage(t domain.StageTiming)
}
