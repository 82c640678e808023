package mongo

import (
	"integrate/internal/repository/mongo/structs"
)

//go:generate mockery --case=snake --name=PresetsRepo

type PresetsRepo interface {
	SetDefault() error
	Load(page string) (*structs.Preset, error)
	Update(preset *structs.Preset) error
}
