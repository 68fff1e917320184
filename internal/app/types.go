package app

import "time"

// Repository entity. Optional fields are empty when the API omits them.
type Repository struct {
	Name        string
	Description string
	Language    string
	Stars       int
	Forks       int
	SizeKB      int
	UpdatedAt   time.Time
	Private     bool
	Fork        bool
	URL         string
}

// Partition is a result of splitting non-fork repositories by the featured set.
type Partition struct {
	Featured []Repository
	Other    []Repository
}

// RenderModel holds repositories for each display slot.
type RenderModel struct {
	Featured []Repository
	Recent   []Repository
	All      []Repository
}

// Slot identifies a named insertion point in the host document.
type Slot string

// Display slots and the loading indicator element id.
const (
	SlotFeatured Slot = "featuredProjects"
	SlotRecent   Slot = "recentProjects"
	SlotAll      Slot = "allProjects"

	LoadingElementID = "loading"
)

// Slots lists all display slots in page order.
var Slots = []Slot{SlotFeatured, SlotRecent, SlotAll}
