package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel 所有内存实体共享的标识字段
type BaseModel struct {
	ID        string    `json:"id" yaml:"id"`
	CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
}

func newBaseModel() BaseModel {
	return BaseModel{
		ID:        GenerateUUID(),
		CreatedAt: time.Now(),
	}
}

func GenerateUUID() string {
	return uuid.New().String()
}
