package dtos

import "encoding/json"

type CreateWizardRequest struct {
	Flow string `json:"flow" binding:"required"`
}

type JumpRequest struct {
	Step int `json:"step"`
}

type FieldRequest struct {
	Value json.RawMessage `json:"value"`
}

type ItemRequest struct {
	Item string `json:"item" binding:"required"`
}

type RecordRequest struct {
	Record map[string]string `json:"record" binding:"required"`
}
