package db

import (
	"database/sql"
	"errors"

	"todo-tracker/internal/domain/entity"
)

type SQLCRoleGateway struct {
	DB *sql.DB
}

var _ RoleGateway = (*SQLCRoleGateway)(nil)

func NewSQLCRoleGateway(db *sql.DB) *SQLCRoleGateway {
	return &SQLCRoleGateway{DB: db}
}

func (gateway *SQLCRoleGateway) Save(role entity.Role) (*entity.Role, error) {
	if role.ID == 0 {
		err := gateway.DB.QueryRow(`
			INSERT INTO roles (name)
			VALUES ($1)
			RETURNING id`, role.Name).Scan(&role.ID)
		if err != nil {
			return nil, err
		}
		return &role, nil
	}

	_, err := gateway.DB.Exec(`
		UPDATE roles
		SET name = $1
		WHERE id = $2`, role.Name, role.ID)
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (gateway *SQLCRoleGateway) FindByID(id uint) (*entity.Role, error) {
	var r entity.Role
	err := gateway.DB.QueryRow(`
		SELECT id, name
		FROM roles
		WHERE id = $1`, id).Scan(&r.ID, &r.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (gateway *SQLCRoleGateway) FindByName(name string) (*entity.Role, error) {
	var r entity.Role
	err := gateway.DB.QueryRow(`
		SELECT id, name
		FROM roles
		WHERE name = $1`, name).Scan(&r.ID, &r.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (gateway *SQLCRoleGateway) FindAll() (roles []entity.Role, err error) {
	rows, err := gateway.DB.Query(`
		SELECT id, name
		FROM roles
		ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results := make([]entity.Role, 0)
	for rows.Next() {
		var r entity.Role
		if err := rows.Scan(&r.ID, &r.Name); err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, rows.Err()
}

func (gateway *SQLCRoleGateway) Delete(role entity.Role) error {
	_, err := gateway.DB.Exec(`DELETE FROM roles WHERE id = $1`, role.ID)
	return err
}
