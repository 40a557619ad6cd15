package api

import (
	"github.com/vasavi-eco-club/club-site-backend/auth"
	"github.com/vasavi-eco-club/club-site-backend/database"
)

// initializeHandlers creates and returns all handlers organized in a
// routeHandlers struct
func initializeHandlers(db database.Database, tokens auth.Tokens, uploadDir string) *routeHandlers {
	return &routeHandlers{
		authHandler:    newAuthHandler(auth.NewCredentials(db.AdminUserRepo()), tokens),
		eventHandler:   newEventHandler(db.EventRepo(), db.EventRegistrationRepo()),
		memberHandler:  newMemberHandler(db.MemberRepo()),
		projectHandler: newProjectHandler(db.ProjectRepo()),
		galleryHandler: newGalleryHandler(db.GalleryRepo(), uploadDir),
		metricHandler:  newMetricHandler(db.MetricRepo()),
	}
}
