// SPDX-License-Identifier: Apache-2.0
// Copyright Authors of tgrid

package model

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/tgrid/tgrid/internal/grid"
)

// Object is one listed S3 object.
type Object struct {
	Key      string
	Size     int64
	Class    string
	Modified time.Time
}

var s3Columns = []string{"KEY", "SIZE", "CLASS", "MODIFIED"}

// S3Model exposes the objects under an S3 bucket/prefix as rows. The
// grid is served synchronously from the last Refresh snapshot; Refresh
// itself lists the bucket and folds the differences against the
// previous snapshot into the most specific change event the listing
// delta allows.
type S3Model struct {
	grid.BaseModel

	client  *s3.Client
	bucket  string
	prefix  string
	objects []Object
	labels  []string
}

// NewS3 builds a model over bucket/prefix using the ambient AWS
// credential chain. The model is empty until the first Refresh.
func NewS3(ctx context.Context, bucket, prefix string) (*S3Model, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	return &S3Model{
		client: s3.NewFromConfig(cfg),
		bucket: bucket,
		prefix: prefix,
	}, nil
}

// RowCount returns the number of listed objects.
func (m *S3Model) RowCount() int { return len(m.objects) }

// ColCount returns the number of object columns.
func (m *S3Model) ColCount() int { return len(s3Columns) }

// Data writes the cell at (row, col) into out. The corner carries the
// bucket name.
func (m *S3Model) Data(row, col int, out *grid.CellData) {
	switch grid.Locate(row, col) {
	case grid.CornerCell:
		out.Value, out.Type = m.bucket, grid.TypeCorner
	case grid.ColumnHeaderCell:
		out.Value, out.Type = s3Columns[col], grid.TypeHeader
	case grid.RowHeaderCell:
		out.Value, out.Type = m.labels[row], grid.TypeHeader
	default:
		obj := m.objects[row]
		switch col {
		case 0:
			out.Value, out.Type = obj.Key, grid.TypeText
		case 1:
			out.Value, out.Type = obj.Size, grid.TypeNumber
		case 2:
			out.Value, out.Type = obj.Class, grid.TypeText
		default:
			out.Value, out.Type = obj.Modified, grid.TypeDate
		}
	}
}

// Refresh lists the bucket and publishes the delta against the previous
// listing: one contiguous run of additions or removals maps to a
// section event, in-place field changes to a bounding cells-changed
// rectangle, anything richer to a model-reset. An unchanged listing
// emits nothing.
func (m *S3Model) Refresh(ctx context.Context) error {
	fresh, err := m.list(ctx)
	if err != nil {
		return err
	}
	old := m.objects
	m.objects = fresh
	m.labels = numberLabels(len(fresh))
	if c := diffObjects(old, fresh); c != nil {
		m.Publish(c)
	}
	return nil
}

func (m *S3Model) list(ctx context.Context) ([]Object, error) {
	input := &s3.ListObjectsV2Input{Bucket: aws.String(m.bucket)}
	if m.prefix != "" {
		input.Prefix = aws.String(m.prefix)
	}

	var out []Object
	pages := s3.NewListObjectsV2Paginator(m.client, input)
	for pages.HasMorePages() {
		page, err := pages.NextPage(ctx)
		if err != nil {
			return nil, wrapAWS(err, "list objects")
		}
		for _, obj := range page.Contents {
			o := Object{
				Key:   aws.ToString(obj.Key),
				Size:  aws.ToInt64(obj.Size),
				Class: string(obj.StorageClass),
			}
			if obj.LastModified != nil {
				o.Modified = *obj.LastModified
			}
			out = append(out, o)
		}
	}
	return out, nil
}

// diffObjects maps the delta between two listings onto one change
// event, or nil when nothing changed. S3 lists objects in key order, so
// a common-prefix/common-suffix scan pins down the changed run.
func diffObjects(old, fresh []Object) grid.Change {
	shorter := min(len(old), len(fresh))

	p := 0
	for p < shorter && old[p] == fresh[p] {
		p++
	}
	if p == len(old) && p == len(fresh) {
		return nil
	}
	s := 0
	for s < shorter-p && old[len(old)-1-s] == fresh[len(fresh)-1-s] {
		s++
	}

	switch {
	case len(old) == len(fresh):
		for i := p; i < len(old)-s; i++ {
			if old[i].Key != fresh[i].Key {
				return grid.ModelReset{}
			}
		}
		return grid.CellsChanged{Row: p, Col: 0, RowSpan: len(old) - s - p, ColSpan: len(s3Columns)}
	case len(fresh) > len(old) && p+s == len(old):
		return grid.SectionsInserted{Axis: grid.Rows, Index: p, Span: len(fresh) - len(old)}
	case len(old) > len(fresh) && p+s == len(fresh):
		return grid.SectionsRemoved{Axis: grid.Rows, Index: p, Span: len(old) - len(fresh)}
	default:
		return grid.ModelReset{}
	}
}

// wrapAWS surfaces the API error code when one is present.
func wrapAWS(err error, op string) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("%s: %s: %w", op, apiErr.ErrorCode(), err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
