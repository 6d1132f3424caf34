package request

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/poki/predicate-to-sql/filter"
	"github.com/poki/predicate-to-sql/query"
)

var ErrEmptyDocument = errors.New("empty document")

// Request describes one statement. JSON documents are accepted as well, being
// valid YAML.
//
//	table: users
//	columns: [email, name]
//	get:
//	  email__startswith: john
//	order_by: [email, -name]
type Request struct {
	Table         string     `yaml:"table"`
	Columns       []string   `yaml:"columns"`
	All           bool       `yaml:"all"`
	Get           filter.Map `yaml:"get"`
	Filter        filter.Map `yaml:"filter"`
	OrderBy       []string   `yaml:"order_by"`
	SelectRelated []string   `yaml:"select_related"`
	Limit         any        `yaml:"limit"`
	Offset        any        `yaml:"offset"`
	Delete        bool       `yaml:"delete"`
	Update        filter.Map `yaml:"update"`
	Create        filter.Map `yaml:"create"`
}

// Decode reads a request document. Unknown keys are rejected.
func Decode(r io.Reader) (*Request, error) {
	var req Request
	if err := decode(r, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

// DecodeMap reads a predicate map document, keeping its key order.
func DecodeMap(r io.Reader) (filter.Map, error) {
	var m filter.Map
	if err := decode(r, &m); err != nil {
		return nil, err
	}
	if m == nil {
		m = filter.Map{}
	}
	return m, nil
}

func decode(r io.Reader, out any) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return ErrEmptyDocument
		}
		return fmt.Errorf("failed to decode document: %w", err)
	}
	return nil
}

// Builder applies the request to a new query.Builder. Calls are made in a
// fixed order: columns, all, get, filter, order_by, select_related, limit,
// offset, delete, update, create.
func (r *Request) Builder(options ...query.Option) *query.Builder {
	b := query.New(r.Table, options...)
	if len(r.Columns) > 0 {
		b.Columns(r.Columns...)
	}
	if r.All {
		b.All()
	}
	if r.Get != nil {
		b.Get(r.Get)
	}
	if r.Filter != nil {
		b.Filter(r.Filter)
	}
	if len(r.OrderBy) > 0 {
		b.OrderBy(r.OrderBy...)
	}
	if len(r.SelectRelated) > 0 {
		b.SelectRelated(r.SelectRelated...)
	}
	if r.Limit != nil {
		b.Limit(r.Limit)
	}
	if r.Offset != nil {
		b.Offset(r.Offset)
	}
	if r.Delete {
		b.Delete()
	}
	if r.Update != nil {
		b.Update(r.Update)
	}
	if r.Create != nil {
		b.Create(r.Create)
	}
	return b
}
