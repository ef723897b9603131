package routers

import (
	"famhealth-service/internal/app/delivery/http/middlewares"
	"famhealth-service/internal/app/services/core/profiles"
	"famhealth-service/internal/app/services/core/sharing"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, middlewares *middlewares.Middlewares, profileController *profiles.ProfileController, sharingController *sharing.SharingController) {
	router.With(middlewares.Authentication).Post("/create", profileController.CreateProfile)
	router.With(middlewares.Authentication).Get("/", profileController.GetProfileByPhoneNumber)
	router.With(middlewares.Authentication).Get("/{profile_id}", profileController.GetProfileByID)
	router.With(middlewares.Authentication).Put("/{profile_id}", profileController.UpdateProfile)
	router.With(middlewares.Authentication).Delete("/{profile_id}", profileController.DeleteProfile)

	router.With(middlewares.Authentication).Post("/addMember", profileController.AddMember)
	router.With(middlewares.Authentication).Post("/removeMember", profileController.RemoveMember)
	router.With(middlewares.Authentication).Post("/updateVaccination", profileController.UpdateVaccination)

	router.With(middlewares.Authentication).Post("/shareMember", sharingController.ShareMember)
	router.With(middlewares.Authentication).Get("/getPendingShares", sharingController.GetPendingShares)
	router.With(middlewares.Authentication).Post("/acceptSharedMember", sharingController.AcceptSharedMember)
	router.With(middlewares.Authentication).Post("/rejectSharedMember", sharingController.RejectSharedMember)
	router.With(middlewares.Authentication).Post("/unshareMember", sharingController.UnshareMember)

	router.With(middlewares.Authentication).Post("/doctorVerification", profileController.SubmitDoctorVerification)
	router.With(middlewares.APIKeyAuth).Post("/approveDoctor/{profile_id}", profileController.ApproveDoctor)
}
