// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/josebatistam/Astroinformatics-II/internal/adapters/cas"
	_ "github.com/josebatistam/Astroinformatics-II/internal/adapters/catalog"
	_ "github.com/josebatistam/Astroinformatics-II/internal/adapters/config"
	_ "github.com/josebatistam/Astroinformatics-II/internal/adapters/linear"
	_ "github.com/josebatistam/Astroinformatics-II/internal/adapters/logger"
	_ "github.com/josebatistam/Astroinformatics-II/internal/adapters/pdf"
	_ "github.com/josebatistam/Astroinformatics-II/internal/adapters/telemetry"
	// Register app nodes.
	_ "github.com/josebatistam/Astroinformatics-II/internal/app"
)
