package models

import "time"

// Status is the moderation state of a pereval.
type Status string

const (
	StatusNew      Status = "new"
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// CoordsDB represents a coordinates record owned by one pereval
type CoordsDB struct {
	ID        int64   `json:"id" db:"id"`
	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`
	Height    int     `json:"height" db:"height"`
}

func (CoordsDB) TableName() string {
	return "coords"
}

// LevelDB represents seasonal difficulty grades owned by one pereval
type LevelDB struct {
	ID     int64   `json:"id" db:"id"`
	Winter *string `json:"winter" db:"winter"`
	Summer *string `json:"summer" db:"summer"`
	Autumn *string `json:"autumn" db:"autumn"`
	Spring *string `json:"spring" db:"spring"`
}

func (LevelDB) TableName() string {
	return "levels"
}

// ActivityTypeDB represents a reference activity type
type ActivityTypeDB struct {
	ID    int64  `json:"id" db:"id"`
	Title string `json:"title" db:"title"`
}

func (ActivityTypeDB) TableName() string {
	return "activity_types"
}

// ImageDB represents an image record; Data holds the object storage key
type ImageDB struct {
	ID        int64     `json:"id" db:"id"`
	Data      string    `json:"data" db:"data"`
	Title     string    `json:"title" db:"title"`
	DateAdded time.Time `json:"date_added" db:"date_added"`
}

func (ImageDB) TableName() string {
	return "images"
}

// PerevalDB represents a pereval record in the database
type PerevalDB struct {
	ID             int64     `json:"id" db:"id"`
	BeautyTitle    string    `json:"beauty_title" db:"beauty_title"`
	Title          string    `json:"title" db:"title"`
	OtherTitles    string    `json:"other_titles" db:"other_titles"`
	Connect        string    `json:"connect" db:"connect"`
	AddTime        time.Time `json:"add_time" db:"add_time"`
	Status         Status    `json:"status" db:"status"`
	UserID         int64     `json:"user_id" db:"user_id"`
	CoordsID       int64     `json:"coords_id" db:"coords_id"`
	LevelID        int64     `json:"level_id" db:"level_id"`
	ActivityTypeID int64     `json:"activity_type_id" db:"activity_type_id"`
}

func (PerevalDB) TableName() string {
	return "perevals"
}

// PerevalDetail is the read model of a pereval together with its user,
// owned coords and level, activity type and linked images.
type PerevalDetail struct {
	PerevalDB
	User         UserDB         `gorm:"foreignKey:UserID"`
	Coords       CoordsDB       `gorm:"foreignKey:CoordsID"`
	Level        LevelDB        `gorm:"foreignKey:LevelID"`
	ActivityType ActivityTypeDB `gorm:"foreignKey:ActivityTypeID"`
	Images       []ImageDB      `gorm:"many2many:pereval_images;joinForeignKey:PerevalID;joinReferences:ImageID"`
}

func (PerevalDetail) TableName() string {
	return "perevals"
}
