package dto

import (
	"resort/shared/constant"
	"resort/shared/model"
)

type Metadata struct {
	CreatedAt  string `json:"createdAt"`
	ModifiedAt string `json:"modifiedAt"`
	CreatedBy  string `json:"createdBy"`
	ModifiedBy string `json:"modifiedBy"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.CreatedAt = model.CreatedAt.UTC().Format(constant.DateFormat)
	m.ModifiedAt = model.ModifiedAt.UTC().Format(constant.DateFormat)
	m.CreatedBy = model.CreatedBy
	m.ModifiedBy = model.ModifiedBy
}
