package service

import "errors"

var (
	ErrRecipeNotFound    = errors.New("recipe not found")
	ErrNutritionNotFound = errors.New("nutrition data not found")
	ErrUploadNotFound    = errors.New("upload not found")
	ErrInvalidFilename   = errors.New("invalid filename")
)
