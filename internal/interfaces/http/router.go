package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/SharuLucky21/Hospital-Management-System/internal/application/analytics"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/auth"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/billing"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/facility"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/inventory"
	"github.com/SharuLucky21/Hospital-Management-System/internal/application/patients"
	"github.com/SharuLucky21/Hospital-Management-System/internal/domain/entity"
)

// RouterDeps carries the use cases the router wires to routes.
type RouterDeps struct {
	AuthUC        *auth.UseCase
	PatientUC     *patients.UseCase
	CreateInvoice *billing.CreateInvoiceUseCase
	InvoicePDF    *billing.PDFUseCase
	ClaimsUC      *billing.ClaimsUseCase
	InventoryUC   *inventory.UseCase
	AppointmentUC *facility.AppointmentUseCase
	ComplaintUC   *facility.ComplaintUseCase
	SurgeryUC     *facility.SurgeryUseCase
	RoomUC        *facility.RoomUseCase
	AnalyticsUC   *analytics.UseCase
	JWTSecret     string
}

// Router registers the API routes. Staff routes gate on role; patients
// only reach their own "/mine" views.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	staff := []string{entity.RoleAdmin, entity.RoleDoctor, entity.RoleBilling}
	billers := []string{entity.RoleAdmin, entity.RoleBilling}

	// Auth (public)
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup := api.Group("/auth")
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Get("/auth/me", authHandler.Me)
	protected.Put("/auth/me", authHandler.UpdateProfile)

	// Patient directory (staff)
	patientHandler := NewPatientHandler(deps.PatientUC)
	patientsGroup := protected.Group("/patients", RequireRole(staff...))
	patientsGroup.Post("/", patientHandler.Create)
	patientsGroup.Get("/", patientHandler.List)
	patientsGroup.Get("/:id", patientHandler.GetByID)

	// Invoices (billing staff; patients see their own)
	invoiceHandler := NewInvoiceHandler(deps.CreateInvoice, deps.InvoicePDF)
	invoices := protected.Group("/invoices")
	invoices.Get("/mine", RequireRole(entity.RolePatient), invoiceHandler.MyInvoices)
	invoices.Post("/", RequireRole(billers...), invoiceHandler.Create)
	invoices.Get("/", RequireRole(billers...), invoiceHandler.List)
	invoices.Get("/:id", invoiceHandler.GetByID)
	invoices.Post("/:id/pay", RequireRole(billers...), invoiceHandler.MarkPaid)
	invoices.Get("/:id/pdf", invoiceHandler.DownloadPDF)

	// Claims ledger (billing staff)
	claimHandler := NewClaimHandler(deps.ClaimsUC)
	claims := protected.Group("/claims", RequireRole(billers...))
	claims.Post("/", claimHandler.Submit)
	claims.Get("/", claimHandler.List)
	claims.Put("/:id", claimHandler.Update)
	claims.Get("/export/:insurer", claimHandler.Export)

	// Inventory and purchases (billing staff)
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv := protected.Group("/inventory", RequireRole(billers...))
	inv.Post("/", inventoryHandler.AddItem)
	inv.Get("/", inventoryHandler.ListItems)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	purchases := protected.Group("/purchases", RequireRole(billers...))
	purchases.Post("/", inventoryHandler.RecordPurchase)
	purchases.Get("/", inventoryHandler.ListPurchases)

	// Appointments
	appointmentHandler := NewAppointmentHandler(deps.AppointmentUC)
	appts := protected.Group("/appointments")
	appts.Post("/request", RequireRole(entity.RolePatient), appointmentHandler.Request)
	appts.Get("/mine", RequireRole(entity.RolePatient), appointmentHandler.Mine)
	appts.Get("/doctor/:name", RequireRole(entity.RoleAdmin, entity.RoleDoctor), appointmentHandler.ForDoctor)
	appts.Post("/", RequireRole(staff...), appointmentHandler.Book)
	appts.Get("/", RequireRole(staff...), appointmentHandler.List)

	// Complaints
	complaintHandler := NewComplaintHandler(deps.ComplaintUC)
	complaints := protected.Group("/complaints")
	complaints.Post("/", RequireRole(entity.RolePatient), complaintHandler.File)
	complaints.Get("/mine", RequireRole(entity.RolePatient), complaintHandler.Mine)
	complaints.Get("/", RequireRole(entity.RoleAdmin), complaintHandler.List)
	complaints.Put("/:id", RequireRole(entity.RoleAdmin), complaintHandler.Resolve)

	// Surgeries
	surgeryHandler := NewSurgeryHandler(deps.SurgeryUC)
	surgeries := protected.Group("/surgeries", RequireRole(entity.RoleAdmin, entity.RoleDoctor))
	surgeries.Post("/", surgeryHandler.Schedule)
	surgeries.Get("/", surgeryHandler.List)
	surgeries.Get("/doctor/:name", surgeryHandler.ForDoctor)

	// Rooms (admin)
	roomHandler := NewRoomHandler(deps.RoomUC)
	rooms := protected.Group("/rooms", RequireRole(entity.RoleAdmin))
	rooms.Post("/", roomHandler.Add)
	rooms.Get("/", roomHandler.List)
	rooms.Put("/:id", roomHandler.UpdateStatus)

	// Dashboards and reports
	dashboardHandler := NewDashboardHandler(deps.AnalyticsUC)
	protected.Get("/dashboard/admin", RequireRole(entity.RoleAdmin), dashboardHandler.Admin)
	protected.Get("/dashboard/billing", RequireRole(billers...), dashboardHandler.Billing)
	protected.Get("/reports/daily", RequireRole(billers...), dashboardHandler.DailyReport)
	protected.Get("/reports/mine", RequireRole(entity.RolePatient), dashboardHandler.MyReport)
}
