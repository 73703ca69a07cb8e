package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Moein-9/optica-api/internal/application/dto"
	"github.com/Moein-9/optica-api/internal/application/usecase"
)

// CatalogHandler handles catalog browse and search requests (protected).
type CatalogHandler struct {
	uc *usecase.CatalogUseCase
}

// NewCatalogHandler builds the handler.
func NewCatalogHandler(uc *usecase.CatalogUseCase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// CreateFrame godoc
// @Summary      Add frame to inventory
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateFrameRequest  true  "Frame data"
// @Success      201   {object}  dto.FrameResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/frames [post]
func (h *CatalogHandler) CreateFrame(c *fiber.Ctx) error {
	var in dto.CreateFrameRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	out, err := h.uc.CreateFrame(in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SearchFrames godoc
// @Summary      Search frames by brand, model or color
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  true   "Search substring"
// @Param        limit  query  int     false  "Limit"  default(20)
// @Success      200    {array}  dto.FrameResponse
// @Router       /api/frames/search [get]
func (h *CatalogHandler) SearchFrames(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q is required"})
	}
	out, err := h.uc.SearchFrames(query, c.QueryInt("limit", 20))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListFrames godoc
// @Summary      List frame inventory
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.FrameResponse
// @Router       /api/frames [get]
func (h *CatalogHandler) ListFrames(c *fiber.Ctx) error {
	out, err := h.uc.ListFrames(c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AdjustFrameQty godoc
// @Summary      Adjust frame stock (restock or shrinkage)
// @Tags         catalog
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "Frame ID"
// @Param        body  body  object{delta=int}  true  "Quantity delta"
// @Success      200   {object}  dto.FrameResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/frames/{id}/qty [patch]
func (h *CatalogHandler) AdjustFrameQty(c *fiber.Ctx) error {
	var in struct {
		Delta int `json:"delta"`
	}
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "invalid body"})
	}
	if in.Delta == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "delta must not be zero"})
	}
	out, err := h.uc.AdjustFrameQty(c.Params("id"), in.Delta)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListLensTypes godoc
// @Summary      List lens families
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.LensTypeResponse
// @Router       /api/lens-types [get]
func (h *CatalogHandler) ListLensTypes(c *fiber.Ctx) error {
	out, err := h.uc.ListLensTypes()
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListCoatings godoc
// @Summary      List coatings for a lens category
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  true  "Lens category"
// @Success      200       {array}  dto.CoatingResponse
// @Router       /api/coatings [get]
func (h *CatalogHandler) ListCoatings(c *fiber.Ctx) error {
	out, err := h.uc.ListCoatings(c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListThicknesses godoc
// @Summary      List thicknesses for a lens category
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  true  "Lens category"
// @Success      200       {array}  dto.ThicknessResponse
// @Router       /api/thicknesses [get]
func (h *CatalogHandler) ListThicknesses(c *fiber.Ctx) error {
	out, err := h.uc.ListThicknesses(c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// CombinationPrice godoc
// @Summary      Bundled price for a lens component triple
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        lens_type_id  query  string  true  "Lens type ID"
// @Param        coating_id    query  string  true  "Coating ID"
// @Param        thickness_id  query  string  true  "Thickness ID"
// @Success      200  {object}  dto.CombinationPriceResponse
// @Router       /api/lens-combinations/price [get]
func (h *CatalogHandler) CombinationPrice(c *fiber.Ctx) error {
	out, err := h.uc.GetCombinationPrice(
		c.Query("lens_type_id"), c.Query("coating_id"), c.Query("thickness_id"),
	)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SearchContactLenses godoc
// @Summary      Search contact lens stock
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        q      query  string  true   "Brand or type substring"
// @Param        limit  query  int     false  "Limit"  default(20)
// @Success      200    {array}  dto.ContactLensResponse
// @Router       /api/contact-lenses/search [get]
func (h *CatalogHandler) SearchContactLenses(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "q is required"})
	}
	out, err := h.uc.SearchContactLenses(query, c.QueryInt("limit", 20))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListContactLenses godoc
// @Summary      List contact lens stock
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        limit   query  int  false  "Limit"   default(50)
// @Param        offset  query  int  false  "Offset"  default(0)
// @Success      200     {array}  dto.ContactLensResponse
// @Router       /api/contact-lenses [get]
func (h *CatalogHandler) ListContactLenses(c *fiber.Ctx) error {
	out, err := h.uc.ListContactLenses(c.QueryInt("limit", 50), c.QueryInt("offset", 0))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ListServices godoc
// @Summary      List billable services
// @Tags         catalog
// @Security     Bearer
// @Produce      json
// @Param        category  query  string  false  "exam | repair"
// @Success      200       {array}  dto.ServiceResponse
// @Router       /api/services [get]
func (h *CatalogHandler) ListServices(c *fiber.Ctx) error {
	out, err := h.uc.ListServices(c.Query("category"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
