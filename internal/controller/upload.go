package controller

import (
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// saveUpload stores a multipart file under uploadDir with a random name and
// returns its public URL. Returns "" when the field is absent.
func saveUpload(ctx *fiber.Ctx, field, uploadDir, baseURL string) (string, error) {
	file, err := ctx.FormFile(field)
	if err != nil {
		return "", nil
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)
	if err := ctx.SaveFile(file, filepath.Join(uploadDir, filename)); err != nil {
		return "", fmt.Errorf("failed to save upload %s: %w", field, err)
	}
	return baseURL + "/uploads/" + filename, nil
}
