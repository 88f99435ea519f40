package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/alimikegami/point-of-sales/product-admin/internal/domain"
	"github.com/alimikegami/point-of-sales/product-admin/internal/dto"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/errs"
	"github.com/alimikegami/point-of-sales/product-admin/pkg/httpclient"
)

const (
	CreateProductPath   = "/api/product"
	GenerateProductPath = "/api/product/generate-product"

	imagePartName   = "imageFile"
	productPartName = "product"
)

type HTTPProductRepository struct {
	baseURL string
	client  *httpclient.Client
}

func CreateHTTPProductRepository(baseURL string, client *httpclient.Client) (ProductAPIRepository, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errs.ErrMissingBaseURL
	}
	if client == nil {
		client = httpclient.NewClient(nil)
	}
	return &HTTPProductRepository{baseURL: baseURL, client: client}, nil
}

func (r *HTTPProductRepository) CreateProduct(ctx context.Context, product dto.ProductRequest, image domain.ProductImage) (err error) {
	body, contentType, err := buildProductMultipart(product, image)
	if err != nil {
		return err
	}

	statusCode, respBody, err := r.client.SendRequest(ctx, httpclient.HttpRequest{
		URL:    r.baseURL + CreateProductPath,
		Method: http.MethodPost,
		Body:   body,
		Headers: map[string]string{
			"Content-Type": contentType,
			"Accept":       "application/json",
		},
	})
	if err != nil {
		return fmt.Errorf("error calling product creation endpoint: %w", err)
	}

	if !isSuccess(statusCode) {
		return rejection(statusCode, respBody)
	}

	return nil
}

func (r *HTTPProductRepository) GenerateProduct(ctx context.Context, query string) (product *dto.GeneratedProduct, err error) {
	params := url.Values{}
	params.Set("query", query)

	statusCode, respBody, err := r.client.SendRequest(ctx, httpclient.HttpRequest{
		URL:    r.baseURL + GenerateProductPath + "?" + params.Encode(),
		Method: http.MethodPost,
		Headers: map[string]string{
			"Accept": "application/json",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("error calling product generation endpoint: %w", err)
	}

	if !isSuccess(statusCode) {
		return nil, rejection(statusCode, respBody)
	}

	if len(bytes.TrimSpace(respBody)) == 0 {
		return nil, nil
	}

	var generated dto.GeneratedProduct
	if err := json.Unmarshal(respBody, &generated); err != nil {
		return nil, fmt.Errorf("error unmarshalling generated product: %w", err)
	}

	return &generated, nil
}

func buildProductMultipart(product dto.ProductRequest, image domain.ProductImage) ([]byte, string, error) {
	if image.Open == nil {
		return nil, "", errs.ErrMissingImage
	}

	productJSON, err := json.Marshal(product)
	if err != nil {
		return nil, "", fmt.Errorf("error marshalling product: %w", err)
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	imageHeader := make(textproto.MIMEHeader)
	imageHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, imagePartName, escapeQuotes(image.Filename)))
	imageHeader.Set("Content-Type", image.ContentType)
	imagePart, err := mw.CreatePart(imageHeader)
	if err != nil {
		return nil, "", fmt.Errorf("error creating image part: %w", err)
	}

	src, err := image.Open()
	if err != nil {
		return nil, "", fmt.Errorf("error opening image: %w", err)
	}
	_, err = io.Copy(imagePart, src)
	src.Close()
	if err != nil {
		return nil, "", fmt.Errorf("error reading image: %w", err)
	}

	productHeader := make(textproto.MIMEHeader)
	productHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"`, productPartName))
	productHeader.Set("Content-Type", "application/json")
	productPart, err := mw.CreatePart(productHeader)
	if err != nil {
		return nil, "", fmt.Errorf("error creating product part: %w", err)
	}
	if _, err := productPart.Write(productJSON); err != nil {
		return nil, "", fmt.Errorf("error writing product part: %w", err)
	}

	if err := mw.Close(); err != nil {
		return nil, "", fmt.Errorf("error closing multipart body: %w", err)
	}

	return buf.Bytes(), mw.FormDataContentType(), nil
}

// rejection classifies a non-2xx response. A JSON object carrying at least one
// string value is a field error mapping; anything else is a bare status.
func rejection(statusCode int, body []byte) error {
	var raw map[string]interface{}
	if err := json.Unmarshal(body, &raw); err == nil {
		fields := make(map[string]string)
		for k, v := range raw {
			if s, ok := v.(string); ok {
				fields[k] = s
			}
		}
		if len(fields) > 0 {
			return &errs.ValidationError{StatusCode: statusCode, Fields: fields}
		}
	}
	return &errs.StatusError{StatusCode: statusCode}
}

func isSuccess(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string {
	return quoteEscaper.Replace(s)
}
