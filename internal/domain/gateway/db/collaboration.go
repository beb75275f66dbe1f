package db

// collaboration is a row of the join table behind entity.ToDo.Collaborators.
type collaboration struct {
	TodoID         uint `gorm:"primaryKey"`
	CollaboratorID uint `gorm:"primaryKey"`
}

func (collaboration) TableName() string {
	return "todo_collaborators"
}
