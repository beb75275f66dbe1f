package db

import (
	"database/sql"
	"errors"

	"todo-tracker/internal/domain/entity"
)

type SQLCStateGateway struct {
	DB *sql.DB
}

var _ StateGateway = (*SQLCStateGateway)(nil)

func NewSQLCStateGateway(db *sql.DB) *SQLCStateGateway {
	return &SQLCStateGateway{DB: db}
}

func (gateway *SQLCStateGateway) Save(state entity.State) (*entity.State, error) {
	if state.ID == 0 {
		err := gateway.DB.QueryRow(`
			INSERT INTO states (name)
			VALUES ($1)
			RETURNING id`, state.Name).Scan(&state.ID)
		if err != nil {
			return nil, err
		}
		return &state, nil
	}

	_, err := gateway.DB.Exec(`
		UPDATE states
		SET name = $1
		WHERE id = $2`, state.Name, state.ID)
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (gateway *SQLCStateGateway) FindByID(id uint) (*entity.State, error) {
	var s entity.State
	err := gateway.DB.QueryRow(`
		SELECT id, name
		FROM states
		WHERE id = $1`, id).Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (gateway *SQLCStateGateway) FindByName(name string) (*entity.State, error) {
	var s entity.State
	err := gateway.DB.QueryRow(`
		SELECT id, name
		FROM states
		WHERE name = $1`, name).Scan(&s.ID, &s.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (gateway *SQLCStateGateway) FindAll() ([]entity.State, error) {
	return gateway.query(`
		SELECT id, name
		FROM states`)
}

func (gateway *SQLCStateGateway) FindAllOrdered() ([]entity.State, error) {
	return gateway.query(`
		SELECT id, name
		FROM states
		ORDER BY id ASC`)
}

func (gateway *SQLCStateGateway) query(statement string) (states []entity.State, err error) {
	rows, err := gateway.DB.Query(statement)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	results := make([]entity.State, 0)
	for rows.Next() {
		var s entity.State
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		results = append(results, s)
	}
	return results, rows.Err()
}

func (gateway *SQLCStateGateway) Delete(state entity.State) error {
	_, err := gateway.DB.Exec(`DELETE FROM states WHERE id = $1`, state.ID)
	return err
}
