package domain

import "github.com/yungbote/dinocatalog-backend/internal/domain/taxa"

type Dinosaur = taxa.Dinosaur

type Period = taxa.Period
type Diet = taxa.Diet
type Size = taxa.Size
type Clade = taxa.Clade
type Group = taxa.Group
type Locomotion = taxa.Locomotion
type Habitat = taxa.Habitat
type FossilQuality = taxa.FossilQuality

type Error = taxa.Error
type ErrorCode = taxa.ErrorCode

const (
	CodeNotFound         = taxa.CodeNotFound
	CodeValidation       = taxa.CodeValidation
	CodeDataIntegrity    = taxa.CodeDataIntegrity
	CodeStoreUnavailable = taxa.CodeStoreUnavailable
)

var (
	ErrNotFound         = taxa.ErrNotFound
	ErrValidation       = taxa.ErrValidation
	ErrDataIntegrity    = taxa.ErrDataIntegrity
	ErrStoreUnavailable = taxa.ErrStoreUnavailable
)

var (
	NewError         = taxa.NewError
	NotFoundError    = taxa.NotFoundError
	ValidationError  = taxa.ValidationError
	IntegrityError   = taxa.IntegrityError
	UnavailableError = taxa.UnavailableError
	CodeOf           = taxa.CodeOf
	MessageOf        = taxa.MessageOf
)
