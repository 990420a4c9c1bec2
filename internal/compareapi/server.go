// Package compareapi exposes the comparison engine as an HTTP service.
// Each request is an independent, pure comparison run.
package compareapi

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"

	"github.com/antennalabs/patterncmp/internal/pattern"
)

// Server wraps the fiber app serving comparison requests.
type Server struct {
	App    *fiber.App
	config *ServerConfig
}

func NewServer(serverConfig *ServerConfig) *Server {
	if serverConfig == nil {
		serverConfig = &ServerConfig{
			Host:      DefaultServerHost,
			Port:      DefaultServerPort,
			BodyLimit: DefaultBodyLimit,
		}
	}

	app := fiber.New(fiber.Config{
		Prefork:      false,
		ErrorHandler: fiberErrHandler,
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		BodyLimit:    serverConfig.BodyLimit,
	})

	app.Use(recover.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelBestCompression}))

	s := &Server{App: app, config: serverConfig}

	app.Get("/health", s.handleHealth)
	app.Post("/compare", s.handleCompare)

	return s
}

func fiberErrHandler(ctx *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	log.Error().
		Err(err).
		Int("status_code", code).
		Str("path", ctx.Path()).
		Str("method", ctx.Method()).
		Msg("Fiber error handler triggered")

	return ctx.Status(code).JSON(ErrorResponse{Error: err.Error()})
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleCompare(c *fiber.Ctx) error {
	var req CompareRequest
	if err := c.BodyParser(&req); err != nil {
		log.Error().Err(err).Msg("failed to parse compare request body")
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid payload: " + err.Error()})
	}

	ref := payloadToTable(req.Reference, "reference")
	recon := payloadToTable(req.Reconstruction, "reconstruction")

	comparer := comparerFromOptions(req.Options)

	result, err := comparer.Compare(ref, recon)
	if err != nil {
		var raggedErr *pattern.RaggedRowError
		if errors.As(err, &raggedErr) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid payload: " + err.Error()})
		}

		var missingErr *pattern.MissingFieldsError
		var emptyErr *pattern.EmptyAlignmentError
		var dupErr *pattern.DuplicateKeyError
		if errors.As(err, &missingErr) || errors.As(err, &emptyErr) || errors.As(err, &dupErr) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(ErrorResponse{Error: err.Error()})
		}
		return err
	}

	log.Info().
		Int("aligned", result.Summary.N).
		Float64("mse", result.Summary.MSE).
		Msg("comparison served")

	return c.Status(fiber.StatusOK).JSON(resultToResponse(result))
}

func comparerFromOptions(opts CompareOptions) *pattern.Comparer {
	spec := pattern.DefaultFieldSpec()
	if opts.CoordAField != "" {
		spec.CoordA = opts.CoordAField
	}
	if opts.CoordBField != "" {
		spec.CoordB = opts.CoordBField
	}
	if opts.ValueField != "" {
		spec.Value = opts.ValueField
	}

	comparerOpts := []pattern.ComparerOption{pattern.WithFieldSpec(spec)}
	if opts.TopN > 0 {
		comparerOpts = append(comparerOpts, pattern.WithTopN(opts.TopN))
	}
	return pattern.NewComparer(comparerOpts...)
}

func payloadToTable(p TablePayload, fallbackName string) *pattern.Table {
	name := p.Name
	if name == "" {
		name = fallbackName
	}
	return &pattern.Table{Name: name, Fields: p.Fields, Rows: p.Rows}
}

func resultToResponse(result *pattern.Result) CompareResponse {
	top := make([]TopErrorPayload, len(result.Top))
	for i, r := range result.Top {
		top[i] = TopErrorPayload{CoordA: r.CoordA, CoordB: r.CoordB, Ref: r.Ref, Recon: r.Recon, Diff: r.Diff}
	}

	return CompareResponse{
		Summary: SummaryPayload{
			MSE:    result.Summary.MSE,
			RMSE:   result.Summary.RMSE,
			Bias:   result.Summary.Bias,
			Points: result.Summary.N,
		},
		TopErrors: top,
		Grids: GridsPayload{
			RowCoords:      result.Grids.RowCoords,
			ColCoords:      result.Grids.ColCoords,
			Reconstruction: gridToPayload(result.Grids.Recon),
			Reference:      gridToPayload(result.Grids.Ref),
			AbsError:       gridToPayload(result.Grids.AbsErr),
		},
	}
}

func gridToPayload(grid *mat.Dense) [][]*float64 {
	rows, cols := grid.Dims()
	out := make([][]*float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = make([]*float64, cols)
		for j := 0; j < cols; j++ {
			v := grid.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			value := v
			out[i][j] = &value
		}
	}
	return out
}

// Start runs the server until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	go func() {
		if err := s.App.Listen(addr); err != nil {
			log.Error().Err(err).Msg("server listen failed")
		}
	}()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.Shutdown(shutdownCtx)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.App.ShutdownWithContext(ctx)
}
