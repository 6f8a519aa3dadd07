package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ragavibes/storefront-backend/pkg/db/models"
	pkgerrors "github.com/ragavibes/storefront-backend/pkg/errors"
)

type stubCartRepo struct {
	quantity   int
	upsertErr  error
	lines      []LineDTO
	listErr    error
	removed    bool
	removeErr  error
	lastUpsert uuid.UUID
}

func (s *stubCartRepo) UpsertIncrement(ctx context.Context, userID, productID uuid.UUID) (int, error) {
	s.lastUpsert = productID
	return s.quantity, s.upsertErr
}

func (s *stubCartRepo) ListItems(ctx context.Context, userID uuid.UUID) ([]LineDTO, error) {
	return s.lines, s.listErr
}

func (s *stubCartRepo) RemoveItem(ctx context.Context, userID, productID uuid.UUID) (bool, error) {
	return s.removed, s.removeErr
}

type stubProductFinder struct {
	product *models.Product
	err     error
}

func (s *stubProductFinder) FindByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	return s.product, s.err
}

func TestAddItemFirstAddIsCreated(t *testing.T) {
	sitar := &models.Product{ID: uuid.New(), Name: "Sitar", Price: 5000}
	svc, err := NewService(&stubCartRepo{quantity: 1}, &stubProductFinder{product: sitar})
	require.NoError(t, err)

	result, err := svc.AddItem(context.Background(), uuid.New(), sitar.ID)
	require.NoError(t, err)
	assert.True(t, result.Created)
	assert.Equal(t, 1, result.Quantity)
	assert.Equal(t, "Sitar", result.ProductName)
}

func TestAddItemRepeatAddIsIncremented(t *testing.T) {
	sitar := &models.Product{ID: uuid.New(), Name: "Sitar", Price: 5000}
	svc, err := NewService(&stubCartRepo{quantity: 2}, &stubProductFinder{product: sitar})
	require.NoError(t, err)

	result, err := svc.AddItem(context.Background(), uuid.New(), sitar.ID)
	require.NoError(t, err)
	assert.False(t, result.Created)
	assert.Equal(t, 2, result.Quantity)
}

func TestAddItemUnknownProductIsNotFound(t *testing.T) {
	svc, err := NewService(&stubCartRepo{}, &stubProductFinder{err: gorm.ErrRecordNotFound})
	require.NoError(t, err)

	_, err = svc.AddItem(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestGetCartComputesTotal(t *testing.T) {
	lines := []LineDTO{
		{ProductName: "Sitar", Subtotal: 10000},
		{ProductName: "Tabla", Subtotal: 12000},
	}
	svc, err := NewService(&stubCartRepo{lines: lines}, &stubProductFinder{})
	require.NoError(t, err)

	dto, err := svc.GetCart(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Equal(t, int64(22000), dto.TotalAmount)
	assert.Equal(t, "₹22,000", dto.TotalDisplay)
	assert.Len(t, dto.Items, 2)
}

func TestRemoveItemMissingRowIsNotFound(t *testing.T) {
	svc, err := NewService(&stubCartRepo{removed: false}, &stubProductFinder{})
	require.NoError(t, err)

	err = svc.RemoveItem(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeNotFound, appErr.Code())
}

func TestRemoveItemWrapsRepoError(t *testing.T) {
	svc, err := NewService(&stubCartRepo{removeErr: errors.New("boom")}, &stubProductFinder{})
	require.NoError(t, err)

	err = svc.RemoveItem(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	appErr := pkgerrors.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, pkgerrors.CodeInternal, appErr.Code())
}
