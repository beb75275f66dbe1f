package entity

type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	FirstName string `gorm:"not null" json:"firstName"`
	LastName  string `gorm:"not null" json:"lastName"`
	Email     string `gorm:"not null;uniqueIndex" json:"email"`
	Password  string `gorm:"not null" json:"-"`
	RoleID    uint   `gorm:"not null" json:"roleId"`
	Role      Role   `gorm:"foreignKey:RoleID" json:"role"`
}
