package shared

import (
	"errors"
	"io"
	"net/http"

	"github.com/phrazzld/ecommerce-api/internal/domain"
)

// MaxBodyBytes caps the size of a request body.
const MaxBodyBytes = 1 << 20

// DecodePayload reads the request body as a JSON object. Bodies that are
// empty, oversized or not a JSON object yield a *domain.ValidationError.
func DecodePayload(w http.ResponseWriter, r *http.Request) (domain.Payload, error) {
	body, err := readBody(w, r)
	if err != nil {
		return nil, err
	}
	return domain.ParsePayload(body)
}

// DecodeLinkPayload reads an order/product link body. A JSON value other than
// an object decodes to an empty payload, so the request fails on its missing
// product_id.
func DecodeLinkPayload(w http.ResponseWriter, r *http.Request) (domain.Payload, error) {
	body, err := readBody(w, r)
	if err != nil {
		return nil, err
	}
	return domain.ParseLinkPayload(body)
}

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, domain.NewValidationError(domain.SchemaField, domain.MsgInvalidInput)
		}
		return nil, err
	}
	return body, nil
}
