package model

type CreateToDoDTO struct {
	Title   string `json:"title"`
	OwnerID uint   `json:"ownerId"`
}

type UpdateToDoDTO struct {
	Title string `json:"title"`
}

type CreateTaskDTO struct {
	Name     string `json:"name"`
	Priority string `json:"priority"`
	StateID  uint   `json:"stateId"`
}

type UpdateTaskDTO struct {
	Name     string `json:"name"`
	Priority string `json:"priority"`
	StateID  uint   `json:"stateId"`
}

type NamedDTO struct {
	Name string `json:"name"`
}
