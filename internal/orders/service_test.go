package orders

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ragavibes/storefront-backend/pkg/db/models"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
	"github.com/ragavibes/storefront-backend/pkg/types"
)

type stubOrderRepo struct {
	rows    []models.Order
	listErr error
	order   *models.Order
	findErr error
}

func (s *stubOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Order, error) {
	return s.rows, s.listErr
}

func (s *stubOrderRepo) FindByIDAndUser(ctx context.Context, orderID, userID uuid.UUID) (*models.Order, error) {
	return s.order, s.findErr
}

func TestHistoryMapsRows(t *testing.T) {
	rows := []models.Order{
		{ID: uuid.New(), TotalAmount: 10000, Status: models.OrderStatusPlaced,
			OrderItems: types.OrderItems{{ProductName: "Sitar", Quantity: 2, Price: 5000}}},
	}
	svc, err := NewService(&stubOrderRepo{rows: rows})
	require.NoError(t, err)

	got, err := svc.History(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "₹10,000", got[0].TotalDisplay)
	assert.Equal(t, "placed", got[0].Status)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, "Sitar", got[0].Items[0].ProductName)
}

func TestDetailMissingOrderIsNotFound(t *testing.T) {
	svc, err := NewService(&stubOrderRepo{findErr: gorm.ErrRecordNotFound})
	require.NoError(t, err)

	_, err = svc.Detail(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestDetailNilSnapshotBecomesEmptySlice(t *testing.T) {
	svc, err := NewService(&stubOrderRepo{order: &models.Order{ID: uuid.New()}})
	require.NoError(t, err)

	got, err := svc.Detail(context.Background(), uuid.New(), uuid.New())
	require.NoError(t, err)
	assert.NotNil(t, got.Items)
	assert.Empty(t, got.Items)
}
