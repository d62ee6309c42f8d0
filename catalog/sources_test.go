package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	records []ManagedRecord
	err     error
}

func (s *stubLister) Products(ctx context.Context) ([]ManagedRecord, error) {
	return s.records, s.err
}

func TestManagedSourceNormalizes(t *testing.T) {
	source := NewManagedSource(&stubLister{records: []ManagedRecord{
		{Name: "Velvet Foundation", Category: "Face Makeup", Price: 30},
	}})

	products, err := source.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "face_makeup", products[0].Category)
	assert.Equal(t, OriginManaged, products[0].Origin)
}

func TestManagedSourcePropagatesError(t *testing.T) {
	source := NewManagedSource(&stubLister{err: errors.New("unreachable")})

	_, err := source.Fetch(context.Background())
	assert.Error(t, err)
}
