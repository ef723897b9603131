package routers

import (
	"famhealth-service/internal/app/delivery/http/middlewares"
	"famhealth-service/internal/app/services/core/reports"
	"famhealth-service/internal/app/services/core/sharing"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, middlewares *middlewares.Middlewares, reportController *reports.ReportController, sharingController *sharing.SharingController) {
	router.With(middlewares.Authentication).Post("/upload", reportController.UploadReport)
	router.With(middlewares.Authentication).Get("/byUser", reportController.GetReportsByUser)
	router.With(middlewares.Authentication).Post("/byMembers", reportController.GetReportsByMembers)
	router.With(middlewares.Authentication).Post("/byIds", reportController.GetReportsByIDs)
	router.With(middlewares.Authentication).Get("/sharedWith", reportController.GetReportsSharedWith)
	router.With(middlewares.Authentication).Post("/share", reportController.ShareReport)
	router.With(middlewares.Authentication).Post("/accept", sharingController.AcceptSharedReport)
	router.With(middlewares.Authentication).Post("/reject", sharingController.RejectSharedReport)
}
