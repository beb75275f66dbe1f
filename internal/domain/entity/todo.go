package entity

import "time"

type ToDo struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	CreatedAt     time.Time `gorm:"not null" json:"createdAt"`
	OwnerID       uint      `gorm:"not null;index" json:"ownerId"`
	Owner         User      `gorm:"foreignKey:OwnerID" json:"owner"`
	Collaborators []User    `gorm:"many2many:todo_collaborators;joinForeignKey:TodoID;joinReferences:CollaboratorID;constraint:OnDelete:CASCADE" json:"collaborators"`
}

func (ToDo) TableName() string {
	return "todos"
}

// HasMember reports whether the user owns the list or collaborates on it.
func (t ToDo) HasMember(userID uint) bool {
	return t.OwnerID == userID || t.HasCollaborator(userID)
}

func (t ToDo) HasCollaborator(userID uint) bool {
	for _, c := range t.Collaborators {
		if c.ID == userID {
			return true
		}
	}
	return false
}
