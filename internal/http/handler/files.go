package handler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"

	"filebox/internal/filename"
	"filebox/internal/model"
	"filebox/internal/service"
	"filebox/internal/storage"
)

// UploadFiles handles POST /upload. The multipart body is consumed as a
// stream (the app runs with StreamRequestBody) so per-file size limits are
// enforced while bytes arrive instead of after buffering the request.
func UploadFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		boundary := string(c.Context().Request.Header.MultipartFormBoundary())
		if boundary == "" {
			return uploadFailure(c, fiber.StatusBadRequest, "No files were uploaded")
		}

		// Bodies small enough to be buffered by the server have no stream.
		var body io.Reader = c.Context().RequestBodyStream()
		if body == nil {
			body = bytes.NewReader(c.Body())
		}
		parts := multipart.NewReader(body, boundary)

		files, err := svc.Upload(c.UserContext(), parts)
		if err != nil {
			var tooMany *service.TooManyFilesError
			var tooLarge *service.FileTooLargeError
			switch {
			case errors.As(err, &tooMany),
				errors.As(err, &tooLarge),
				errors.Is(err, service.ErrNoFiles):
				// Earlier parts of the same request may already be on disk;
				// clients must re-list after a failed upload.
				return uploadFailure(c, fiber.StatusBadRequest, err.Error())
			default:
				return uploadFailure(c, fiber.StatusInternalServerError, "Failed to store uploaded files")
			}
		}

		return c.JSON(model.UploadResponse{
			Success: true,
			Message: fmt.Sprintf("Successfully uploaded %d file(s)", len(files)),
			Files:   files,
		})
	}
}

func uploadFailure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(model.UploadResponse{
		Success: false,
		Message: message,
		Files:   []model.FileRecord{},
	})
}

// ListFiles handles GET /files.
func ListFiles(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		files, err := svc.List(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(model.FileListResponse{Files: files})
	}
}

// StorageInfo handles GET /storage. The endpoint always answers: a failed
// disk probe is reported through disk_probe_ok rather than an error.
func StorageInfo(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		stats, err := svc.Stats(c.UserContext())
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(stats)
	}
}

// DeleteFile handles POST /delete/:id.
func DeleteFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := svc.Delete(c.UserContext(), c.Params("id")); err != nil {
			if errors.Is(err, service.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(model.ActionResponse{
					Success: false,
					Message: "File not found",
				})
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.JSON(model.ActionResponse{
			Success: true,
			Message: "File deleted successfully",
		})
	}
}

// PreviewFile handles GET /preview/:id.
func PreviewFile(svc service.FileService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res, err := svc.Preview(c.UserContext(), c.Params("id"))
		if err != nil {
			switch {
			case errors.Is(err, service.ErrNotPreviewable):
				return previewFailure(c, fiber.StatusBadRequest, "File cannot be previewed as text")
			case errors.Is(err, service.ErrNotFound):
				return previewFailure(c, fiber.StatusNotFound, "File not found")
			default:
				return previewFailure(c, fiber.StatusInternalServerError, "Failed to read file")
			}
		}
		return c.JSON(model.PreviewResponse{
			Content:  &res.Content,
			Type:     res.Type,
			Filename: res.Filename,
		})
	}
}

func previewFailure(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(model.PreviewResponse{Error: &message})
}

// DownloadFile handles GET /download/:id, serving raw bytes with the display
// name as the attachment filename. The store validates the id against path
// traversal before resolving it.
func DownloadFile(store storage.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		path, err := store.Path(id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrInvalidName) {
				return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
		}
		return c.Download(path, filename.DisplayName(id))
	}
}
