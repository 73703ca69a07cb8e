package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Moein-9/optica-api/internal/application/analytics"
	"github.com/Moein-9/optica-api/internal/application/auth"
	"github.com/Moein-9/optica-api/internal/application/billing"
	"github.com/Moein-9/optica-api/internal/application/receipts"
	"github.com/Moein-9/optica-api/internal/application/usecase"
	"github.com/Moein-9/optica-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	PatientUC   *usecase.PatientUseCase
	CatalogUC   *usecase.CatalogUseCase
	WorkflowUC  *billing.WorkflowUseCase
	InvoiceUC   *billing.InvoiceUseCase
	ReceiptUC   *receipts.ReceiptUseCase
	DashboardUC *analytics.DashboardUseCase
	JWTSecret   string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (login public, register behind auth so only staff create accounts)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/register", AuthMiddleware(deps.JWTSecret), RequireRole(entity.RoleAdmin), authHandler.Register)

	// Protected routes (Bearer token required)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Patients
	patients := protected.Group("/patients")
	patientHandler := NewPatientHandler(deps.PatientUC, deps.InvoiceUC)
	patients.Post("/", patientHandler.Create)
	patients.Get("/", patientHandler.List)
	patients.Get("/search", patientHandler.Search)
	patients.Get("/:id", patientHandler.GetByID)
	patients.Put("/:id", patientHandler.Update)
	patients.Get("/:id/invoices", patientHandler.Invoices)

	// Catalog
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	frames := protected.Group("/frames")
	frames.Post("/", catalogHandler.CreateFrame)
	frames.Get("/", catalogHandler.ListFrames)
	frames.Get("/search", catalogHandler.SearchFrames)
	frames.Patch("/:id/qty", catalogHandler.AdjustFrameQty)
	protected.Get("/lens-types", catalogHandler.ListLensTypes)
	protected.Get("/coatings", catalogHandler.ListCoatings)
	protected.Get("/thicknesses", catalogHandler.ListThicknesses)
	protected.Get("/lens-combinations/price", catalogHandler.CombinationPrice)
	contacts := protected.Group("/contact-lenses")
	contacts.Get("/", catalogHandler.ListContactLenses)
	contacts.Get("/search", catalogHandler.SearchContactLenses)
	protected.Get("/services", catalogHandler.ListServices)

	// Invoice workflow
	sessions := protected.Group("/workflow/sessions")
	workflowHandler := NewWorkflowHandler(deps.WorkflowUC)
	sessions.Post("/", workflowHandler.Start)
	sessions.Get("/:id", workflowHandler.Get)
	sessions.Put("/:id/patient", workflowHandler.SetPatient)
	sessions.Put("/:id/glasses", workflowHandler.SetGlasses)
	sessions.Put("/:id/contacts", workflowHandler.SetContacts)
	sessions.Put("/:id/service", workflowHandler.SetService)
	sessions.Put("/:id/payment", workflowHandler.SetPayment)
	sessions.Post("/:id/pay-in-full", workflowHandler.PayInFull)
	sessions.Put("/:id/type", workflowHandler.SwitchType)
	sessions.Post("/:id/reset", workflowHandler.Reset)
	sessions.Post("/:id/save", workflowHandler.Save)

	// Finalized invoices and printable renditions
	invoices := protected.Group("/invoices")
	invoiceHandler := NewInvoiceHandler(deps.InvoiceUC)
	receiptHandler := NewReceiptHandler(deps.ReceiptUC)
	invoices.Get("/", invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.Get)
	invoices.Post("/:id/payments", invoiceHandler.AddPayment)
	invoices.Post("/:id/edits", invoiceHandler.AddEdit)
	invoices.Get("/:id/pdf", receiptHandler.PDF)
	invoices.Get("/:id/receipt", receiptHandler.Thermal)
	invoices.Get("/:id/label", receiptHandler.Label)

	// Dashboard (admin only)
	dashboard := protected.Group("/dashboard", RequireRole(entity.RoleAdmin))
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	dashboard.Get("/summary", dashboardHandler.Summary)
}
