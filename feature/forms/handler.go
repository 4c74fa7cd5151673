package forms

import (
	"bytes"
	"errors"
	"html/template"
	"net/url"

	"formdesk/core/logger"
	"formdesk/core/store"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the form service.
type Handler struct {
	service *Service
	tpl     *template.Template
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, tpl *template.Template) *Handler {
	return &Handler{service: service, tpl: tpl}
}

// RegisterRoutes registers the form routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/", h.HandleForm)
	app.Post("/submit", h.HandleSubmit)
	app.Get("/display", h.HandleDisplay)
	app.Get("/api/data", h.HandleAPIData)
}

// formPage is the template data for the form page.
type formPage struct {
	Message string
}

// displayPage is the template data for the listing page.
type displayPage struct {
	Submissions []store.Submission
	LoadError   bool
}

func (h *Handler) render(c *fiber.Ctx, name string, data any) error {
	var buf bytes.Buffer
	if err := h.tpl.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	c.Type("html")
	return c.Send(buf.Bytes())
}

// HandleForm renders the submission form.
// @Summary Render Form
// @Description Renders the contact form. An optional message query parameter is shown as an inline notice.
// @Tags forms
// @Produce html
// @Param message query string false "Inline notice, e.g. a prior validation error"
// @Success 200 {string} string "Form page"
// @Router / [get]
func (h *Handler) HandleForm(c *fiber.Ctx) error {
	return h.render(c, "form.html", formPage{Message: c.Query("message")})
}

// HandleSubmit accepts a form submission.
// @Summary Submit Form
// @Description Validates and persists a submission, then redirects to the listing page. Missing required fields redirect back to the form with an error message.
// @Tags forms
// @Accept x-www-form-urlencoded
// @Param name formData string true "Name"
// @Param email formData string true "Email"
// @Param phone formData string false "Phone"
// @Param message formData string false "Message"
// @Success 302 {string} string "Redirect to /display or back to /"
// @Router /submit [post]
func (h *Handler) HandleSubmit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	input := SubmissionInput{
		Name:    c.FormValue("name"),
		Email:   c.FormValue("email"),
		Phone:   c.FormValue("phone"),
		Message: c.FormValue("message"),
	}

	sub, err := h.service.Submit(c.Context(), input)
	if err != nil {
		if errors.Is(err, ErrValidation) {
			return c.Redirect("/?message="+url.QueryEscape(err.Error()), fiber.StatusFound)
		}
		// A storage failure is logged but not surfaced: the caller still
		// sees a successful redirect. Documented limitation.
		l.Error("Failed to persist submission", zap.Error(err))
	} else {
		l.Info("Submission accepted", zap.Int64("id", sub.ID))
	}

	return c.Redirect("/display", fiber.StatusFound)
}

// HandleDisplay renders the submission listing.
// @Summary List Submissions
// @Description Renders the persisted submissions, most recent first. A load failure renders an empty list with a visible error notice.
// @Tags forms
// @Produce html
// @Success 200 {string} string "Listing page"
// @Router /display [get]
func (h *Handler) HandleDisplay(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	subs, err := h.service.ListNewestFirst(c.Context())
	if err != nil {
		l.Error("Failed to load submissions", zap.Error(err))
		return h.render(c, "display.html", displayPage{LoadError: true})
	}

	return h.render(c, "display.html", displayPage{Submissions: subs})
}

// HandleAPIData returns the raw submission collection.
// @Summary Raw Submission Listing
// @Description Returns the full submission collection as JSON in insertion order.
// @Tags forms
// @Produce json
// @Success 200 {array} store.Submission "Submissions"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/data [get]
func (h *Handler) HandleAPIData(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	subs, err := h.service.ListAll(c.Context())
	if err != nil {
		l.Error("Failed to load submissions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(subs)
}
