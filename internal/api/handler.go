package api

import (
	"bytes"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/insightdelivered/camt-statement-converter/internal/camt"
	"github.com/insightdelivered/camt-statement-converter/internal/models"
	"github.com/insightdelivered/camt-statement-converter/internal/writer"
)

// Version is reported by the health endpoint and every conversion.
const Version = "2.0.0"

const maxUploadSize = 32 << 20

// ConvertResponse is the JSON response from the /api/convert endpoint.
type ConvertResponse struct {
	Success     bool               `json:"success"`
	Error       string             `json:"error,omitempty"`
	ID          string             `json:"id,omitempty"`
	Statement   *models.Statement  `json:"statement,omitempty"`
	CSV         string             `json:"csv,omitempty"`
	TotalDebit  decimal.Decimal    `json:"totalDebit"`
	TotalCredit decimal.Decimal    `json:"totalCredit"`
	Count       int                `json:"count"`
	Version     string             `json:"version,omitempty"`
	DebugLines  []models.DebugLine `json:"debugLines,omitempty"`
}

// Handler holds the HTTP handlers for the API.
type Handler struct {
	// Currency is the default reporting currency, overridable per request.
	Currency  string
	StaticDir string
	Logger    *zap.Logger
}

// NewApp returns a fiber app with all routes registered.
func NewApp(h *Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "camt-statement-converter",
		BodyLimit:             maxUploadSize,
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "POST,GET,OPTIONS",
		AllowHeaders: "Content-Type",
	}))
	h.RegisterRoutes(app)
	return app
}

// RegisterRoutes sets up the HTTP routes.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	app.Get("/api/health", h.HandleHealth)
	app.Post("/api/convert", h.HandleConvert)

	// Serve the frontend; unknown paths get index.html
	if h.StaticDir != "" {
		app.Static("/", h.StaticDir)
		app.Get("/*", func(c *fiber.Ctx) error {
			return c.SendFile(filepath.Join(h.StaticDir, "index.html"))
		})
	}
}

// HandleHealth reports liveness.
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"version": Version,
		"engine":  "fiber",
	})
}

// HandleConvert parses an uploaded camt.053 file (form field "file") and
// returns the statement as JSON together with its CSV rendering.
func (h *Handler) HandleConvert(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "No file uploaded. Use form field 'file'.")
	}
	if !strings.HasSuffix(strings.ToLower(fh.Filename), ".xml") {
		return fiber.NewError(fiber.StatusBadRequest, "Only camt.053 XML files are supported.")
	}

	currency := h.Currency
	if v := strings.TrimSpace(c.FormValue("currency")); v != "" {
		currency = strings.ToUpper(v)
	}
	includeHeader := c.FormValue("header") != "false"

	f, err := fh.Open()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to read uploaded file.")
	}
	defer f.Close()

	id := uuid.NewString()
	log := h.logger().With(zap.String("conversion_id", id), zap.String("filename", fh.Filename))

	st, err := camt.NewParser(currency, log).Parse(f)
	if err != nil {
		log.Warn("conversion failed", zap.Error(err))
		return fiber.NewError(statusFor(err), fmt.Sprintf("Parsing failed: %v", err))
	}

	var csvBuf bytes.Buffer
	csvWriter := &writer.CSVWriter{IncludeHeader: includeHeader}
	if err := csvWriter.Write(&csvBuf, st); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, fmt.Sprintf("CSV generation failed: %v", err))
	}

	credit, debit := st.Totals()
	log.Info("statement converted",
		zap.String("account", st.AccountID),
		zap.String("currency", st.Currency),
		zap.Int("lines", len(st.Lines)))

	return c.JSON(ConvertResponse{
		Success:     true,
		ID:          id,
		Statement:   st,
		CSV:         csvBuf.String(),
		TotalDebit:  debit,
		TotalCredit: credit,
		Count:       len(st.Lines),
		Version:     Version,
		DebugLines:  st.DebugLines,
	})
}

func (h *Handler) logger() *zap.Logger {
	if h.Logger == nil {
		return zap.NewNop()
	}
	return h.Logger
}

// statusFor maps parse failures to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, camt.ErrConfig):
		return fiber.StatusBadRequest
	case errors.Is(err, camt.ErrFormat), errors.Is(err, camt.ErrReconciliation):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	return c.Status(status).JSON(ConvertResponse{
		Success: false,
		Error:   err.Error(),
	})
}
