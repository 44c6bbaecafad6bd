package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"assignment-service/internal/apperr"
	"assignment-service/internal/logger"
	"assignment-service/internal/models"
	"assignment-service/internal/services"
)

// Client-facing messages. Storage failures deliberately share one generic message
// per operation so no driver detail leaks out; full errors go to the logs only.
const (
	MissingFieldsMessage = "Server could not proceed because there are missing data from client"
	NotFoundMessage      = "Server could not find a requested assignment"
	ReadFailureMessage   = "Server could not read assignment because database connection"
	CreateFailureMessage = "Server could not create assignment because database connection"
	UpdateFailureMessage = "Server could not update assignment because database connection"
	DeleteFailureMessage = "Server could not delete assignment because database connection"
)

// AssignmentHandler defines handlers for managing assignment resources.
type AssignmentHandler struct {
	Service *services.AssignmentService
	Log     *logger.Logger
}

// NewAssignmentHandler creates a new AssignmentHandler with the given AssignmentService.
func NewAssignmentHandler(service *services.AssignmentService, log *logger.Logger) *AssignmentHandler {
	return &AssignmentHandler{Service: service, Log: log}
}

// ListAssignments handles GET /assignments to retrieve all assignments.
// @Summary List all assignments
// @Description Gets all assignments stored in the system
// @Tags assignments
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{} "List of all assignments"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments [get]
func (h *AssignmentHandler) ListAssignments(c *fiber.Ctx) error {
	assignments, err := h.Service.ListAssignments(c.Context())
	if err != nil {
		return h.respondError(c, err, ReadFailureMessage)
	}
	h.Log.Infof("Successfully listed %d assignments", len(assignments))
	return c.JSON(fiber.Map{"data": assignments})
}

// GetAssignment handles GET /assignments/:id to retrieve a single assignment.
// @Summary Get an assignment by ID
// @Description Get details of a specific assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} map[string]interface{} "Assignment found"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) GetAssignment(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": NotFoundMessage})
	}

	assignment, err := h.Service.GetAssignment(c.Context(), id)
	if err != nil {
		return h.respondError(c, err, ReadFailureMessage)
	}
	return c.JSON(fiber.Map{"data": assignment})
}

// CreateAssignment handles POST /assignments to create a new assignment.
// @Summary Create an assignment
// @Description Create a new assignment from a JSON body with title, content and category
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body models.AssignmentPayload true "Assignment fields"
// @Success 201 {object} map[string]interface{} "Assignment successfully created"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments [post]
func (h *AssignmentHandler) CreateAssignment(c *fiber.Ctx) error {
	var payload models.AssignmentPayload
	if err := c.BodyParser(&payload); err != nil {
		h.Log.Warnf("Failed to parse create body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": MissingFieldsMessage})
	}

	assignment, err := h.Service.CreateAssignment(c.Context(), &payload)
	if err != nil {
		return h.respondError(c, err, CreateFailureMessage)
	}

	h.Log.Infof("Successfully created assignment: ID=%d, Title=%s", assignment.ID, assignment.Title)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "Created assignment successfully"})
}

// UpdateAssignment handles PUT /assignments/:id to apply a partial update.
// Fields omitted from the body keep their stored values.
// @Summary Update an assignment
// @Description Overlay the supplied fields onto an existing assignment
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Param assignment body models.AssignmentPayload true "Fields to update"
// @Success 200 {object} map[string]interface{} "Assignment successfully updated"
// @Failure 400 {object} map[string]interface{} "Missing required fields"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments/{id} [put]
func (h *AssignmentHandler) UpdateAssignment(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": NotFoundMessage})
	}

	var payload models.AssignmentPayload
	if err := c.BodyParser(&payload); err != nil {
		h.Log.Warnf("Failed to parse update body: ID=%d, Error=%v", id, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": MissingFieldsMessage})
	}

	assignment, err := h.Service.UpdateAssignment(c.Context(), id, &payload)
	if err != nil {
		return h.respondError(c, err, UpdateFailureMessage)
	}

	h.Log.Infof("Successfully updated assignment: ID=%d", assignment.ID)
	return c.JSON(fiber.Map{"message": "Updated assignment successfully"})
}

// DeleteAssignment handles DELETE /assignments/:id to remove an assignment.
// @Summary Delete an assignment
// @Description Delete an assignment by ID
// @Tags assignments
// @Accept json
// @Produce json
// @Param id path int true "Assignment ID"
// @Success 200 {object} map[string]interface{} "Assignment successfully deleted"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assignments/{id} [delete]
func (h *AssignmentHandler) DeleteAssignment(c *fiber.Ctx) error {
	id, ok := parseID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": NotFoundMessage})
	}

	if err := h.Service.DeleteAssignment(c.Context(), id); err != nil {
		return h.respondError(c, err, DeleteFailureMessage)
	}

	h.Log.Infof("Successfully deleted assignment: ID=%d", id)
	return c.JSON(fiber.Map{"message": "Deleted assignment successfully"})
}

// respondError maps the error taxonomy onto HTTP responses: validation failures
// become 400 with the offending field names, missing records become 404, and
// storage failures become 500 with the generic per-operation message.
func (h *AssignmentHandler) respondError(c *fiber.Ctx, err error, storageMessage string) error {
	var validationErr *apperr.ValidationError
	var notFoundErr *apperr.NotFoundError
	var storageErr *apperr.StorageError

	switch {
	case errors.As(err, &validationErr):
		h.Log.Warnf("Validation failed: %s %s, Fields=%v", c.Method(), c.Path(), validationErr.Fields)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": MissingFieldsMessage,
			"fields":  validationErr.Fields,
		})
	case errors.As(err, &notFoundErr):
		h.Log.Warnf("Assignment not found: ID=%d", notFoundErr.ID)
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": NotFoundMessage})
	case errors.As(err, &storageErr):
		h.Log.Error("Storage failure", zap.String("op", storageErr.Op), zap.Error(storageErr.Err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": storageMessage})
	default:
		h.Log.Error("Unclassified failure", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": storageMessage})
	}
}

// parseID parses the :id path segment. An id that cannot be a stored id is
// indistinguishable from an absent record and is reported as not found.
func parseID(raw string) (uint, bool) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
