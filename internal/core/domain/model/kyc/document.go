package kyc

import (
	"errors"
	"strings"
	"time"

	"orderwizard/internal/pkg/errs"
	"orderwizard/internal/pkg/guard"
)

var ErrDocumentIsNotConstructed = errors.New("Document must be created via NewDocument constructor")

// Document is an identity or bank proof uploaded for a customer. It is an
// entity inside the Customer aggregate and is only changed through it.
type Document struct {
	id          int
	name        string
	fileName    string
	number      string
	lastUpdated time.Time
	status      DocumentStatus
	selected    bool
	guard       guard.ConstructorGuard
}

// NewDocument creates a document awaiting review.
func NewDocument(id int, name, fileName, number string, lastUpdated time.Time) (*Document, error) {
	return RestoreDocument(id, name, fileName, number, lastUpdated, DocumentPending, false)
}

// RestoreDocument rebuilds a document from persistence.
func RestoreDocument(
	id int,
	name, fileName, number string,
	lastUpdated time.Time,
	status DocumentStatus,
	selected bool,
) (*Document, error) {
	d := &Document{
		number:      number,
		lastUpdated: lastUpdated,
		selected:    selected,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setName(name),
		d.setFileName(fileName),
		d.setStatus(status),
	); err != nil {
		return nil, err
	}

	return d, nil
}

func (d *Document) Validate() error {
	if d == nil {
		return ErrDocumentIsNotConstructed
	}
	return d.guard.Validate(ErrDocumentIsNotConstructed)
}

func (d *Document) ID() int                { return d.id }
func (d *Document) Name() string           { return d.name }
func (d *Document) FileName() string       { return d.fileName }
func (d *Document) Number() string         { return d.number }
func (d *Document) LastUpdated() time.Time { return d.lastUpdated }
func (d *Document) Status() DocumentStatus { return d.status }
func (d *Document) Selected() bool         { return d.selected }

func (d *Document) IsApproved() bool {
	return d.status == DocumentApproved
}

func (d *Document) toggle() {
	d.selected = !d.selected
}

func (d *Document) review(status DocumentStatus, at time.Time) error {
	if err := d.setStatus(status); err != nil {
		return err
	}
	d.lastUpdated = at
	return nil
}

func (d *Document) setID(id int) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("document id")
	}
	d.id = id
	return nil
}

func (d *Document) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("document name")
	}
	d.name = name
	return nil
}

func (d *Document) setFileName(fileName string) error {
	if strings.TrimSpace(fileName) == "" {
		return errs.NewValueIsRequiredError("file name")
	}
	d.fileName = fileName
	return nil
}

func (d *Document) setStatus(status DocumentStatus) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}
