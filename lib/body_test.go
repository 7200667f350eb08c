package lib

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type samplePayload struct {
	Code  string `json:"code" validate:"required,min=2"`
	Store string `json:"store" validate:"required"`
}

func TestExtractAndValidateBody(t *testing.T) {
	r := httptest.NewRequest("POST", "/coupons", strings.NewReader(`{"code":"TB15","store":"Terabyte"}`))

	body, err := ExtractAndValidateBody[samplePayload](r)
	require.NoError(t, err)
	assert.Equal(t, "TB15", body.Code)
	assert.Equal(t, "Terabyte", body.Store)
}

func TestExtractAndValidateBodyMissingField(t *testing.T) {
	r := httptest.NewRequest("POST", "/coupons", strings.NewReader(`{"code":"TB15"}`))

	_, err := ExtractAndValidateBody[samplePayload](r)
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, ve.Errors, 1)
	assert.Equal(t, "store", ve.Errors[0].Field)
}

func TestExtractAndValidateBodyUnknownField(t *testing.T) {
	r := httptest.NewRequest("POST", "/coupons", strings.NewReader(`{"code":"TB15","store":"Terabyte","extra":1}`))

	_, err := ExtractAndValidateBody[samplePayload](r)
	assert.Error(t, err)
}

func TestExtractAndValidateBodyMalformedJSON(t *testing.T) {
	r := httptest.NewRequest("POST", "/coupons", strings.NewReader(`{`))

	_, err := ExtractAndValidateBody[samplePayload](r)
	assert.Error(t, err)
}
