package utils

import "errors"

var (
	ErrSessionNotFound         = errors.New("wizard session not found")
	ErrInvalidStep             = errors.New("operation not valid for current step")
	ErrInvalidInput            = errors.New("invalid input")
	ErrLocationNotFound        = errors.New("location not found in draft")
	ErrImageSearchUnavailable  = errors.New("image search unavailable")
	ErrIntroductionUnavailable = errors.New("introduction generation unavailable")
	ErrMappingUnavailable      = errors.New("mapping provider unavailable")
	ErrExportFailed            = errors.New("document export failed")
)
