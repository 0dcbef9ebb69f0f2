package domain

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// OrderSchema selects which order form contract a deployment accepts
type OrderSchema string

const (
	// OrderSchemaClassic - age / description / rulesAccepted form
	OrderSchemaClassic OrderSchema = "classic"
	// OrderSchemaExtended - features / optionalMessage / optionalImageDataUri form
	OrderSchemaExtended OrderSchema = "extended"
)

// Valid reports whether the schema names a known form contract
func (s OrderSchema) Valid() bool {
	return s == OrderSchemaClassic || s == OrderSchemaExtended
}

// Attachment represents an inline image decoded from a data URI
type Attachment struct {
	Filename string
	MIMEType string
	Content  []byte
}

// Order represents a single submission relayed by mail (domain entity).
// It only lives for the duration of one request and is never persisted.
type Order struct {
	Reference       uuid.UUID
	Customer        User
	Age             string
	Description     string
	RulesAccepted   bool
	Features        string
	OptionalMessage string
	SubmittedAt     time.Time
	Attachment      *Attachment
}

const (
	dataURIPrefix      = "data:image/"
	dataURISuffix      = ";base64"
	attachmentBaseName = "order-image"
)

// ParseImageDataURI splits a "data:image/<subtype>;base64,<payload>" URI into
// an attachment. The filename is derived from the detected subtype and the
// payload is base64 decoded.
func ParseImageDataURI(uri string) (*Attachment, error) {
	header, payload, found := strings.Cut(uri, ",")
	if !found {
		return nil, ErrInvalidImageData
	}
	if !strings.HasPrefix(header, dataURIPrefix) || !strings.HasSuffix(header, dataURISuffix) {
		return nil, ErrInvalidImageData
	}

	subtype := strings.TrimSuffix(strings.TrimPrefix(header, dataURIPrefix), dataURISuffix)
	if subtype == "" {
		return nil, ErrInvalidImageData
	}

	content, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidImageData, err)
	}

	return &Attachment{
		Filename: fmt.Sprintf("%s.%s", attachmentBaseName, subtype),
		MIMEType: "image/" + subtype,
		Content:  content,
	}, nil
}
