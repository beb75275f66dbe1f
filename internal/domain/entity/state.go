package entity

// DefaultStateName is the state assigned to tasks created without an explicit state.
const DefaultStateName = "New"

type State struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"not null;uniqueIndex" json:"name"`
}
