package entity

type Task struct {
	ID       uint     `gorm:"primaryKey" json:"id"`
	Name     string   `gorm:"not null" json:"name"`
	Priority Priority `gorm:"type:varchar(10);not null" json:"priority"`
	StateID  uint     `gorm:"not null;index" json:"stateId"`
	State    State    `gorm:"foreignKey:StateID" json:"state"`
	TodoID   uint     `gorm:"not null;index" json:"todoId"`
}
