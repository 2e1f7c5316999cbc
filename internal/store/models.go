package store

// Persisted record shapes. JSON field names are the wire schema: collections
// are stored as JSON arrays under their key, the two session records as single
// JSON objects. Date fields hold ISO dates (YYYY-MM-DD), times hold HH:MM.

// Resident is the logged-in resident session record. At most one is stored.
type Resident struct {
	Rut            string `json:"rut"`
	Address        string `json:"address"`
	BuildingNumber string `json:"buildingNumber"`
}

// AdminUser is the administrator session record. The password is stored as
// plain text and never compared as a security control; admin "login" is
// presentational only.
type AdminUser struct {
	Rut      string `json:"rut"`
	Address  string `json:"address"`
	Password string `json:"password"`
}

type Invoice struct {
	ID       string `json:"id"`
	Month    string `json:"month"`
	Amount   int    `json:"amount"`
	DueDate  string `json:"dueDate"`
	Paid     bool   `json:"paid"`
	PaidDate string `json:"paidDate,omitempty"`
}

// Space identifies one of the three reservable shared amenities.
type Space string

const (
	SpaceEventRoom Space = "sala-eventos"
	SpacePool      Space = "piscina"
	SpaceTerrace   Space = "terraza"
)

// Spaces lists every reservable amenity.
func Spaces() []Space {
	return []Space{SpaceEventRoom, SpacePool, SpaceTerrace}
}

// Valid reports whether s names a known amenity.
func (s Space) Valid() bool {
	switch s {
	case SpaceEventRoom, SpacePool, SpaceTerrace:
		return true
	}
	return false
}

type Reservation struct {
	ID        string `json:"id"`
	Space     Space  `json:"space"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

type Visitor struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Unit      string `json:"unit"`
	EntryDate string `json:"entryDate"`
	EntryTime string `json:"entryTime"`
}

// AnnouncementType categorizes board entries.
type AnnouncementType string

const (
	AnnouncementMaintenance AnnouncementType = "maintenance"
	AnnouncementBilling     AnnouncementType = "billing"
	AnnouncementGeneral     AnnouncementType = "general"
)

type Announcement struct {
	ID          string           `json:"id"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Date        string           `json:"date"`
	Type        AnnouncementType `json:"type"`
}

type BillingStatement struct {
	ID          string `json:"id"`
	Month       string `json:"month"`
	Amount      int    `json:"amount"`
	Details     string `json:"details"`
	CreatedDate string `json:"createdDate"`
}

type MaintenanceProject struct {
	ID            string `json:"id"`
	ProjectName   string `json:"projectName"`
	Area          string `json:"area"`
	EstimatedDate string `json:"estimatedDate"`
	Budget        int    `json:"budget"`
	Description   string `json:"description"`
	CreatedDate   string `json:"createdDate"`
}
