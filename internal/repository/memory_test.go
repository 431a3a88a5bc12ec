package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sakhi-safety/emergency_dispatch_system/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRing_NewestFirstOrder(t *testing.T) {
	// Подготовка
	r := newRing[int](5)
	for i := 1; i <= 3; i++ {
		r.push(i)
	}

	// Проверки: записи возвращаются от новых к старым
	assert.Equal(t, []int{3, 2, 1}, r.items())
}

func TestRing_EvictsOldestBeyondCapacity(t *testing.T) {
	// Подготовка: емкость 3, вставляем 5 записей
	r := newRing[int](3)
	for i := 1; i <= 5; i++ {
		r.push(i)
	}

	// Проверки: самые старые вытеснены молча
	items := r.items()
	require.Len(t, items, 3)
	assert.Equal(t, []int{5, 4, 3}, items)
}

func TestMemoryAlertRepository_HistoryCap(t *testing.T) {
	// Подготовка: вставляем больше записей, чем вмещает история
	repo := NewMemoryAlertRepository()
	ctx := context.Background()

	for i := 0; i < AlertHistoryCap+20; i++ {
		err := repo.PushAlert(ctx, &models.EmergencyAlert{
			ID:      uuid.New(),
			UserID:  fmt.Sprintf("user-%d", i),
			Message: fmt.Sprintf("alert %d", i),
		})
		require.NoError(t, err)
	}

	// Действие
	alerts, err := repo.ListAlerts(ctx)

	// Проверки: размер не превышает емкость, новые первыми
	require.NoError(t, err)
	require.Len(t, alerts, AlertHistoryCap)
	assert.Equal(t, fmt.Sprintf("alert %d", AlertHistoryCap+19), alerts[0].Message)
	assert.Equal(t, "alert 20", alerts[AlertHistoryCap-1].Message)
}

func TestMemoryAlertRepository_SentLogCap(t *testing.T) {
	// Подготовка
	repo := NewMemoryAlertRepository()
	ctx := context.Background()

	for i := 0; i < SentLogCap+10; i++ {
		err := repo.PushSent(ctx, &models.OutboundMessageRecord{
			Timestamp: time.Now().UTC(),
			Message:   fmt.Sprintf("message %d", i),
		})
		require.NoError(t, err)
	}

	// Действие
	records, err := repo.ListSent(ctx)

	// Проверки
	require.NoError(t, err)
	require.Len(t, records, SentLogCap)
	assert.Equal(t, fmt.Sprintf("message %d", SentLogCap+9), records[0].Message)
}

func TestMemoryContactRepository_CopySemantics(t *testing.T) {
	// Подготовка
	repo := NewMemoryContactRepository()
	ctx := context.Background()
	saved := []models.Contact{
		{ID: uuid.New(), Name: "Maya", Phone: "+91 98450 00001", IsPrimary: true},
		{ID: uuid.New(), Name: "Ravi", Phone: "+91 98450 00002"},
	}
	require.NoError(t, repo.Save(ctx, saved))

	// Действие: мутируем выданный срез
	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	loaded[0].Name = "mutated"

	// Проверки: хранилище не затронуто
	reloaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Maya", reloaded[0].Name)
	assert.Equal(t, saved, reloaded)
}

func TestMemoryContactRepository_EmptyLoad(t *testing.T) {
	repo := NewMemoryContactRepository()

	contacts, err := repo.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, contacts)
}
