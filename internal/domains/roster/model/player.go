package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

// Player is a single roster entry. Coaching staff live in the same table
// with IsStaff set; their athletic fields are left zero and hidden from
// responses.
type Player struct {
	ID             uuid.UUID `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	Number         int       `json:"number" db:"number"`
	Position       string    `json:"position" db:"position"`
	GraduationYear string    `json:"graduation_year" db:"graduation_year"`
	Hometown       string    `json:"hometown" db:"hometown"`
	Major          string    `json:"major" db:"major"`
	HeadshotURL    string    `json:"headshot_url" db:"headshot_url"`
	IsStaff        bool      `json:"is_staff" db:"is_staff"`
	RosterYearID   uuid.UUID `json:"roster_year_id" db:"roster_year_id"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" db:"updated_at"`
}

// PlayerResponse is the public shape. Athletic fields are pointers so that
// staff entries omit them entirely instead of serving zero values.
type PlayerResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	Number         *int      `json:"number,omitempty"`
	Position       *string   `json:"position,omitempty"`
	GraduationYear *string   `json:"graduation_year,omitempty"`
	Hometown       string    `json:"hometown"`
	Major          string    `json:"major"`
	HeadshotURL    string    `json:"headshot_url"`
	IsStaff        bool      `json:"is_staff"`
	RosterYearID   uuid.UUID `json:"roster_year_id"`
}

func (p *Player) ToResponse() PlayerResponse {
	resp := PlayerResponse{
		ID:           p.ID,
		Name:         p.Name,
		Hometown:     p.Hometown,
		Major:        p.Major,
		HeadshotURL:  p.HeadshotURL,
		IsStaff:      p.IsStaff,
		RosterYearID: p.RosterYearID,
	}
	if !p.IsStaff {
		number := p.Number
		position := p.Position
		gradYear := p.GraduationYear
		resp.Number = &number
		resp.Position = &position
		resp.GraduationYear = &gradYear
	}
	return resp
}

func ToResponseList(players []*Player) []PlayerResponse {
	responses := make([]PlayerResponse, 0, len(players))
	for _, p := range players {
		responses = append(responses, p.ToResponse())
	}
	return responses
}

// CreatePlayerRequest - POST /v1/admin/roster
//
// Position and graduation year are free text; the editor form has no option
// lists and entries like "2-Meter Offense" are valid.
type CreatePlayerRequest struct {
	Name           string    `json:"name" form:"name"`
	Number         int       `json:"number" form:"number"`
	Position       string    `json:"position" form:"position"`
	GraduationYear string    `json:"graduation_year" form:"graduation_year"`
	Hometown       string    `json:"hometown" form:"hometown"`
	Major          string    `json:"major" form:"major"`
	IsStaff        bool      `json:"is_staff" form:"is_staff"`
	RosterYearID   uuid.UUID `json:"roster_year_id" form:"roster_year_id"`
}

func (r CreatePlayerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Number,
			validation.When(!r.IsStaff, validation.Min(0), validation.Max(99))),
		validation.Field(&r.Position,
			validation.When(!r.IsStaff, validation.Required), validation.Length(0, 100)),
		validation.Field(&r.GraduationYear,
			validation.When(!r.IsStaff, validation.Required), validation.Length(0, 50)),
		validation.Field(&r.Hometown, validation.Length(0, 100)),
		validation.Field(&r.Major, validation.Length(0, 100)),
		validation.Field(&r.RosterYearID, validation.Required, validation.By(notNilUUID)),
	)
}

func (r CreatePlayerRequest) ToEntity() *Player {
	return &Player{
		ID:             uuid.New(),
		Name:           r.Name,
		Number:         r.Number,
		Position:       r.Position,
		GraduationYear: r.GraduationYear,
		Hometown:       r.Hometown,
		Major:          r.Major,
		IsStaff:        r.IsStaff,
		RosterYearID:   r.RosterYearID,
	}
}

// UpdatePlayerRequest - PUT /v1/admin/roster/:id
// Full replacement of the editable fields; the editor form always submits
// the whole entry.
type UpdatePlayerRequest struct {
	Name           string    `json:"name" form:"name"`
	Number         int       `json:"number" form:"number"`
	Position       string    `json:"position" form:"position"`
	GraduationYear string    `json:"graduation_year" form:"graduation_year"`
	Hometown       string    `json:"hometown" form:"hometown"`
	Major          string    `json:"major" form:"major"`
	IsStaff        bool      `json:"is_staff" form:"is_staff"`
	RosterYearID   uuid.UUID `json:"roster_year_id" form:"roster_year_id"`
}

func (r UpdatePlayerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Number,
			validation.When(!r.IsStaff, validation.Min(0), validation.Max(99))),
		validation.Field(&r.Position,
			validation.When(!r.IsStaff, validation.Required), validation.Length(0, 100)),
		validation.Field(&r.GraduationYear,
			validation.When(!r.IsStaff, validation.Required), validation.Length(0, 50)),
		validation.Field(&r.Hometown, validation.Length(0, 100)),
		validation.Field(&r.Major, validation.Length(0, 100)),
		validation.Field(&r.RosterYearID, validation.Required, validation.By(notNilUUID)),
	)
}

func (r UpdatePlayerRequest) Apply(p *Player) {
	p.Name = r.Name
	p.Number = r.Number
	p.Position = r.Position
	p.GraduationYear = r.GraduationYear
	p.Hometown = r.Hometown
	p.Major = r.Major
	p.IsStaff = r.IsStaff
	p.RosterYearID = r.RosterYearID
}

// HeadshotUpload carries a raw image file pulled out of a multipart form.
type HeadshotUpload struct {
	Data     []byte
	Filename string
}

func notNilUUID(value interface{}) error {
	id, ok := value.(uuid.UUID)
	if !ok || id == uuid.Nil {
		return validation.NewError("validation_required", "cannot be blank")
	}
	return nil
}
