package technologyapimodels

import (
	dbmodels "employability-backend/models/db"
)

type TechnologyView struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TechnologyConvert(rec dbmodels.Technology) TechnologyView {
	return TechnologyView{
		ID:   rec.ID,
		Name: rec.Name,
	}
}
