package handler

import (
	"io"
	"mime"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pdfsummarizer/internal/extractor"
	"pdfsummarizer/internal/model"
	"pdfsummarizer/internal/prompt"
	"pdfsummarizer/internal/service"
)

const (
	pdfField   = "pdf"
	styleField = "summaryStyle"
)

// parseUpload validates the multipart request and reads the PDF into memory.
func parseUpload(c *fiber.Ctx) (service.SummarizeInput, error) {
	var in service.SummarizeInput

	if !strings.HasPrefix(string(c.Request().Header.ContentType()), fiber.MIMEMultipartForm) {
		return in, &apiError{status: fiber.StatusBadRequest, message: msgNoFile, hint: hintNoFile}
	}
	form, err := c.MultipartForm()
	if err != nil {
		return in, uploadError()
	}

	files := form.File[pdfField]
	switch {
	case len(files) == 0 && len(form.File) == 0:
		return in, &apiError{status: fiber.StatusBadRequest, message: msgNoFile, hint: hintNoFile}
	case len(files) != 1, len(form.File) > 1:
		// Exactly one file, under the pdf field and nowhere else.
		return in, uploadError()
	}
	fh := files[0]

	if mediaType(fh.Header.Get(fiber.HeaderContentType)) != extractor.PDFMimeType {
		return in, badRequest(msgOnlyPDF)
	}

	data, err := readFile(fh)
	if err != nil {
		return in, uploadError()
	}
	if !extractor.IsPDF(data) {
		return in, badRequest(msgInvalidPDF)
	}

	style, err := prompt.ParseSummaryStyle(formValue(form, styleField))
	if err != nil {
		return in, &apiError{
			status:  fiber.StatusBadRequest,
			message: msgInvalidStyle,
			hint:    "Use one of: " + prompt.StyleNames(),
		}
	}

	in.Upload = &model.Upload{
		Filename:    fh.Filename,
		ContentType: extractor.PDFMimeType,
		Size:        fh.Size,
		Data:        data,
	}
	in.Style = style
	return in, nil
}

func uploadError() *apiError {
	return &apiError{status: fiber.StatusBadRequest, message: msgUploadError, details: detailsUpload}
}

func mediaType(ct string) string {
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(ct))
	}
	return mt
}

func formValue(form *multipart.Form, key string) string {
	if v := form.Value[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

func readFile(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
