package storage

import (
	"fmt"

	"exambook/internal/domain"
)

// Keys of the two primary collections. Each holds a JSON array and is
// read-modify-written as a whole on every mutation.
const (
	ExamsKey     = "exams"
	ExercisesKey = "exercises"
)

const (
	imageKeyPrefix    = "image_"
	markdownKeyPrefix = "markdown_"
)

// ImagePath derives the storage path of an exercise image. The path doubles
// as a human-readable identifier in the exported markdown.
func ImagePath(examID, exerciseID string, imageType domain.ImageType, filename string) string {
	return fmt.Sprintf("/images/%s/%s/%s/%s", examID, exerciseID, imageType, filename)
}

// ImageKey returns the storage key for an encoded image.
func ImageKey(path string) string {
	return imageKeyPrefix + path
}

// MarkdownKey returns the storage key for an exam's markdown export.
func MarkdownKey(examID string) string {
	return markdownKeyPrefix + examID
}
