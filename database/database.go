package database

// Database bundles one repository per entity kind. Everything lives in
// process memory; swapping in a persistent store means replacing the repo
// internals, not this contract.
type Database struct {
	adminUserRepo    *AdminUserRepo
	eventRepo        *EventRepo
	registrationRepo *EventRegistrationRepo
	memberRepo       *MemberRepo
	projectRepo      *ProjectRepo
	galleryRepo      *GalleryRepo
	metricRepo       *MetricRepo
}

// New initializes a Database with empty collections.
func New() Database {
	return Database{
		adminUserRepo:    NewAdminUserRepo(),
		eventRepo:        NewEventRepo(),
		registrationRepo: NewEventRegistrationRepo(),
		memberRepo:       NewMemberRepo(),
		projectRepo:      NewProjectRepo(),
		galleryRepo:      NewGalleryRepo(),
		metricRepo:       NewMetricRepo(),
	}
}

// Accessor methods for each repository

func (d Database) AdminUserRepo() *AdminUserRepo {
	return d.adminUserRepo
}

func (d Database) EventRepo() *EventRepo {
	return d.eventRepo
}

func (d Database) EventRegistrationRepo() *EventRegistrationRepo {
	return d.registrationRepo
}

func (d Database) MemberRepo() *MemberRepo {
	return d.memberRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) GalleryRepo() *GalleryRepo {
	return d.galleryRepo
}

func (d Database) MetricRepo() *MetricRepo {
	return d.metricRepo
}
