package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"ocr-translator/internal/config"
	internalhttp "ocr-translator/internal/http"
	"ocr-translator/internal/logger"
	"ocr-translator/models"
)

// Version is reported in the User-Agent header; set by main.
var Version = "dev"

// BackendClient talks to the remote OCR/translation service. It is stateless:
// no caching, no deduplication.
type BackendClient struct {
	baseURL string
	client  *http.Client
	retry   internalhttp.RetryPolicy
}

// NewBackendClient creates a client from the application config.
func NewBackendClient(cfg *models.Config) *BackendClient {
	return &BackendClient{
		baseURL: cfg.BaseURL(),
		client:  internalhttp.NewPooledClient(cfg.ClientConfig()),
		retry:   cfg.RetryPolicy(),
	}
}

// NewBackendClientWith creates a client with an explicit HTTP client and retry policy.
func NewBackendClientWith(baseURL string, client *http.Client, retry internalhttp.RetryPolicy) *BackendClient {
	if client == nil {
		client = internalhttp.NewDefaultClient()
	}
	return &BackendClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		retry:   retry,
	}
}

type requestIDKey struct{}

// WithRequestID attaches the id sent as X-Request-ID by requests made with ctx.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey{}).(string); ok && id != "" {
		return id
	}
	return uuid.NewString()
}

func (c *BackendClient) setHeaders(ctx context.Context, req *http.Request) {
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", config.AppName+"/"+Version)
	req.Header.Set(config.RequestIDHeader, requestID(ctx))
}

// FetchCatalog retrieves the selectable target languages in remote order.
func (c *BackendClient) FetchCatalog(ctx context.Context) ([]models.LanguageOption, error) {
	const op = "fetch language catalog"
	url := c.baseURL + config.LanguagesPath

	resp, err := internalhttp.Do(ctx, c.client, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(ctx, req)
		return req, nil
	}, c.retry)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{Op: op, Status: resp.StatusCode}
	}

	languages, err := DecodeLanguageCatalog(body)
	if err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}

	logger.Debug("Catalog: %d languages from %s", len(languages), url)
	return languages, nil
}

// SubmitTranslation uploads the file with the two language codes and returns
// the remote result verbatim.
func (c *BackendClient) SubmitTranslation(ctx context.Context, file models.FileHandle, targetLanguageCode, ocrLanguageCode string) (*models.TranslationResult, error) {
	const op = "submit translation"
	url := c.baseURL + config.TranslatePath

	body, contentType, err := encodeTranslateForm(file, targetLanguageCode, ocrLanguageCode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	resp, err := internalhttp.Do(ctx, c.client, func(ctx context.Context) (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
		if err != nil {
			return nil, err
		}
		c.setHeaders(ctx, req)
		req.Header.Set("Content-Type", contentType)
		return req, nil
	}, c.retry)
	if err != nil {
		return nil, &TransportError{Op: op, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Op: op, Status: resp.StatusCode, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &TransportError{
			Op:     op,
			Status: resp.StatusCode,
			Detail: errorDetail(respBody),
		}
	}

	result, err := DecodeTranslationResult(respBody)
	if err != nil {
		return nil, &DecodeError{Op: op, Err: err}
	}
	return result, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// encodeTranslateForm builds the multipart body once so every retry attempt
// can send the same bytes.
func encodeTranslateForm(file models.FileHandle, targetLanguageCode, ocrLanguageCode string) ([]byte, string, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open file: %w", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		config.FieldFile, quoteEscaper.Replace(file.Name())))
	header.Set("Content-Type", detectContentType(file.Name(), data))

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, "", fmt.Errorf("failed to write form file: %w", err)
	}

	if err := writer.WriteField(config.FieldTargetLanguageCode, targetLanguageCode); err != nil {
		return nil, "", err
	}
	if err := writer.WriteField(config.FieldOCRLanguageCode, ocrLanguageCode); err != nil {
		return nil, "", err
	}
	if err := writer.Close(); err != nil {
		return nil, "", err
	}

	return body.Bytes(), writer.FormDataContentType(), nil
}

// detectContentType picks the part's MIME type. The service decides between
// OCR and plain-text reading from it.
func detectContentType(name string, data []byte) string {
	if ct := mime.TypeByExtension(strings.ToLower(filepath.Ext(name))); ct != "" {
		return ct
	}
	return http.DetectContentType(data)
}
